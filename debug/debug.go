package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Build  bool
	Coerce bool
	Parse  bool
	Tokens bool
	Eval   bool
	Diff   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Build = boolEnv("JSONLIT_DEBUG_BUILD")
	d.Coerce = boolEnv("JSONLIT_DEBUG_COERCE")
	d.Parse = boolEnv("JSONLIT_DEBUG_PARSE")
	d.Tokens = boolEnv("JSONLIT_DEBUG_TOKENS")
	d.Eval = boolEnv("JSONLIT_DEBUG_EVAL")
	d.Diff = boolEnv("JSONLIT_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Build() bool {
	return d.Build
}
func Coerce() bool {
	return d.Coerce
}
func Parse() bool {
	return d.Parse
}
func Tokens() bool {
	return d.Tokens
}
func Eval() bool {
	return d.Eval
}
func Diff() bool {
	return d.Diff
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
	os.Stderr.Write([]byte{'\n'})
}
