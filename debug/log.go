package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/jsonlit/ir"
)

// Logf writes a debug message to stderr. *ir.Node arguments are rendered
// in literal form and plain JSON values are indented.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			args[i] = x.String()
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
