package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffString returns the character edits turning from into to, or nil
// when the strings are equal or the edits touch more than half of the
// shorter string.
func DiffString(from, to string) []diffpatch.Diff {
	if from == to {
		return nil
	}
	dmp := diffpatch.New()
	multiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(from, to, multiLine))
	size := 0
	for _, d := range diffs {
		if d.Type != diffpatch.DiffEqual {
			size += len(d.Text)
		}
	}
	if size > min(len(from), len(to))/2 {
		return nil
	}
	return diffs
}
