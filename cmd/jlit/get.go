package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/jsonlit/encode"
	"github.com/signadot/jsonlit/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	p, err := ir.ParsePath(path)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := getArg(cfg, cc.Out, cc.In, arg, p); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, path, err)
		}
	}
	return nil
}

func getArg(cfg *GetConfig, w io.Writer, stdin io.Reader, arg string, p *ir.Path) error {
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
		return err
	}
	nodes, err := cfg.decodeDocs(d, inputFormat(arg))
	if err != nil {
		return err
	}
	encOpts := cfg.encOpts(w)
	for _, node := range nodes {
		res, err := node.Lookup(p)
		if err != nil {
			return err
		}
		if err := encode.Encode(res, w, encOpts...); err != nil {
			return err
		}
	}
	return nil
}
