package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/jsonlit/encode"
	"github.com/signadot/jsonlit/parse"

	"github.com/scott-cotton/cli"
)

func buildMain(cfg *BuildConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Build.Parse(cc, args)
	if err != nil {
		return err
	}
	inputs := make([][]byte, 0, len(args)+1)
	switch {
	case cfg.File == "-" || (cfg.File == "" && len(args) == 0):
		d, err := io.ReadAll(cc.In)
		if err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
		inputs = append(inputs, d)
	case cfg.File != "":
		d, err := os.ReadFile(cfg.File)
		if err != nil {
			return fmt.Errorf("could not read %q: %w", cfg.File, err)
		}
		inputs = append(inputs, d)
	}
	for _, arg := range args {
		inputs = append(inputs, []byte(arg))
	}
	return buildLiterals(cfg, cc.Out, inputs)
}

func buildLiterals(cfg *BuildConfig, w io.Writer, inputs [][]byte) error {
	pOpts := cfg.parseOpts(cfg.Env)
	encOpts := cfg.encOpts(w)
	for i, in := range inputs {
		node, err := parse.Parse(in, pOpts...)
		if err != nil {
			return fmt.Errorf("error building literal %d: %w", i, err)
		}
		if err := encode.Encode(node, w, encOpts...); err != nil {
			return fmt.Errorf("error encoding result %d: %w", i, err)
		}
	}
	return nil
}
