package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/jsonlit/encode"

	"github.com/scott-cotton/cli"
)

func load(cfg *LoadConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Load.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return loadReader(cfg, cc.Out, cc.In, encode.YAMLFormat)
	}
	return loadFiles(cfg, cc.Out, args)
}

func loadFiles(cfg *LoadConfig, w io.Writer, files []string) error {
	for i, file := range files {
		if err := loadFile(cfg, w, file); err != nil {
			return err
		}
		if i < len(files)-1 {
			if _, err := w.Write([]byte("---\n")); err != nil {
				return err
			}
		}
	}
	return nil
}

func loadFile(cfg *LoadConfig, w io.Writer, file string) error {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	if err := loadReader(cfg, w, f, inputFormat(file)); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func loadReader(cfg *LoadConfig, w io.Writer, r io.Reader, f encode.Format) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	nodes, err := cfg.decodeDocs(in, f)
	if err != nil {
		return err
	}
	encOpts := cfg.encOpts(w)
	for i, node := range nodes {
		if err := encode.Encode(node, w, encOpts...); err != nil {
			return fmt.Errorf("error encoding result %d: %w", i, err)
		}
		if i < len(nodes)-1 {
			if _, err := w.Write([]byte("---\n")); err != nil {
				return fmt.Errorf("error writing document %d: %w", i, err)
			}
		}
	}
	return nil
}
