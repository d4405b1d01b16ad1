package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/jsonlit/ir"
	"github.com/signadot/jsonlit/libdiff"
	"github.com/signadot/jsonlit/parse"

	"github.com/scott-cotton/cli"
)

func eq(cfg *EqConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eq.Parse(cc, args)
	if err != nil {
		cfg.Eq.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: eq requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := cfg.eqInput(cc.In, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := cfg.eqInput(cc.In, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	differs, err := eqNodes(cc.Out, a, b, cfg.Reverse)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func (cfg *EqConfig) eqInput(stdin io.Reader, arg string) (*ir.Node, error) {
	if cfg.String {
		return parse.Parse([]byte(arg), cfg.parseOpts(nil)...)
	}
	var (
		d   []byte
		err error
	)
	if arg == "-" {
		d, err = io.ReadAll(stdin)
	} else {
		d, err = os.ReadFile(arg)
	}
	if err != nil {
		return nil, err
	}
	nodes, err := cfg.decodeDocs(d, inputFormat(arg))
	if err != nil {
		return nil, err
	}
	if len(nodes) != 1 {
		return nil, fmt.Errorf("expected 1 document, got %d", len(nodes))
	}
	return nodes[0], nil
}

// eqNodes writes the differences between a and b to w and reports
// whether there are any.
func eqNodes(w io.Writer, a, b *ir.Node, reverse bool) (bool, error) {
	if ir.Equal(a, b) {
		return false, nil
	}
	changes := libdiff.Diff(a, b)
	if reverse {
		changes = libdiff.Reverse(changes)
	}
	if _, err := io.WriteString(w, libdiff.Format(changes)); err != nil {
		return true, err
	}
	return true, nil
}
