package libdiff

import (
	"fmt"
	"strings"

	"github.com/signadot/jsonlit/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	case Replace:
		return "~"
	}
	return fmt.Sprintf("<op %d>", int(o))
}

// Change is one difference. From is nil for an Insert and To is nil for
// a Delete. Edits is set for a Replace of one string by another.
//
// Path names the position in the source document, except for Insert
// into an array, where the index is that of the target document.
type Change struct {
	Op    Op
	Path  *ir.Path
	From  *ir.Node
	To    *ir.Node
	Edits []diffpatch.Diff
}

func (c *Change) String() string {
	switch c.Op {
	case Insert:
		return fmt.Sprintf("+ %s: %s", c.Path, c.To)
	case Delete:
		return fmt.Sprintf("- %s: %s", c.Path, c.From)
	}
	if c.Edits != nil {
		return fmt.Sprintf("~ %s: %s", c.Path, FormatEdits(c.Edits))
	}
	return fmt.Sprintf("~ %s: %s -> %s", c.Path, c.From, c.To)
}

// FormatEdits renders character edits inline, marking deletions with
// [-...-] and insertions with {+...+}.
func FormatEdits(edits []diffpatch.Diff) string {
	var sb strings.Builder
	for _, e := range edits {
		switch e.Type {
		case diffpatch.DiffEqual:
			sb.WriteString(e.Text)
		case diffpatch.DiffDelete:
			sb.WriteString("[-" + e.Text + "-]")
		case diffpatch.DiffInsert:
			sb.WriteString("{+" + e.Text + "+}")
		}
	}
	return sb.String()
}

// Format writes one change per line.
func Format(changes []Change) string {
	var sb strings.Builder
	for i := range changes {
		sb.WriteString(changes[i].String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Reverse returns the changes which turn the target of changes back
// into its source.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i, c := range changes {
		r := Change{Path: c.Path, From: c.To, To: c.From}
		switch c.Op {
		case Insert:
			r.Op = Delete
		case Delete:
			r.Op = Insert
		default:
			r.Op = Replace
			if c.Edits != nil {
				r.Edits = reverseEdits(c.Edits)
			}
		}
		res[i] = r
	}
	return res
}

func reverseEdits(edits []diffpatch.Diff) []diffpatch.Diff {
	res := make([]diffpatch.Diff, len(edits))
	for i, e := range edits {
		switch e.Type {
		case diffpatch.DiffDelete:
			e.Type = diffpatch.DiffInsert
		case diffpatch.DiffInsert:
			e.Type = diffpatch.DiffDelete
		}
		res[i] = e
	}
	return res
}
