package libdiff

import (
	"testing"

	"github.com/signadot/jsonlit/ir"
	"github.com/signadot/jsonlit/parse"

	"github.com/google/go-cmp/cmp"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	n, err := parse.Parse([]byte(s))
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return n
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		want     []string
	}{
		{"equal", `{"a": [1, {"b": null}]}`, `{"b": null, "a": [1, {"b": null}]}`, nil},
		{"scalar", `1`, `2`, []string{`~ $: 1 -> 2`}},
		{"type", `1`, `"1"`, []string{`~ $: 1 -> "1"`}},
		{"null", `null`, `[]`, []string{`~ $: null -> []`}},
		{"fields", `{"a": 1, "b": 2}`, `{"b": 3, "c": 4}`, []string{
			`- $.a: 1`,
			`~ $.b: 2 -> 3`,
			`+ $.c: 4`,
		}},
		{"nested", `{"x": {"y": [true]}}`, `{"x": {"y": [false]}}`, []string{
			`~ $.x.y[0]: true -> false`,
		}},
		{"array insert", `[1, 2, 3]`, `[1, 9, 2, 3]`, []string{`+ $[1]: 9`}},
		{"array delete", `[1, 2, 3]`, `[1, 3]`, []string{`- $[1]: 2`}},
		{"array replace", `[1, 2, 3]`, `[1, 5, 3]`, []string{`~ $[1]: 2 -> 5`}},
		{"array objects", `[{"id": 1}, {"id": 2}]`, `[{"id": 1}, {"id": 3}]`, []string{
			`~ $[1].id: 2 -> 3`,
		}},
		{"string edit", `"hello world, how are you"`, `"hello big world, how are you"`, []string{
			`~ $: hello {+big +}world, how are you`,
		}},
		{"string replace", `"abc"`, `"xyz"`, []string{`~ $: "abc" -> "xyz"`}},
		{"quoted key", `{"a b": 1}`, `{"a b": 2}`, []string{`~ $['a b']: 1 -> 2`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changes := Diff(mustParse(t, tt.from), mustParse(t, tt.to))
			var got []string
			for i := range changes {
				got = append(got, changes[i].String())
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestReverse(t *testing.T) {
	from := mustParse(t, `{"a": 1, "s": "hello world", "xs": [1, 2]}`)
	to := mustParse(t, `{"b": 1, "s": "hello there world", "xs": [1]}`)
	got := Format(Reverse(Diff(from, to)))
	want := Format(Diff(to, from))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDiffString(t *testing.T) {
	if DiffString("same", "same") != nil {
		t.Error("equal strings have edits")
	}
	if DiffString("", "x") != nil {
		t.Error("edits for empty string")
	}
	edits := DiffString("the cat sat", "the bat sat")
	if edits == nil {
		t.Fatal("no edits")
	}
	dmp := diffpatch.New()
	if got := dmp.DiffText2(edits); got != "the bat sat" {
		t.Errorf("target text %q", got)
	}
	if got := dmp.DiffText1(reverseEdits(edits)); got != "the bat sat" {
		t.Errorf("reversed source text %q", got)
	}
}
