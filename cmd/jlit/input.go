package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/signadot/jsonlit/build"
	"github.com/signadot/jsonlit/debug"
	"github.com/signadot/jsonlit/encode"
	"github.com/signadot/jsonlit/ir"
	"github.com/signadot/jsonlit/parse"

	"github.com/goccy/go-yaml"
)

// inputFormat chooses the decoding of a named input by its suffix.
// Unknown suffixes and stdin are read as yaml, which also covers json.
func inputFormat(name string) encode.Format {
	f, ok := encode.FormatForSuffix(filepath.Ext(name))
	if !ok {
		return encode.YAMLFormat
	}
	return f
}

// decodeDocs decodes every document in d and builds it.
func (cfg *MainConfig) decodeDocs(d []byte, f encode.Format) ([]*ir.Node, error) {
	switch f {
	case encode.LiteralFormat:
		n, err := parse.Parse(d, cfg.parseOpts(nil)...)
		if err != nil {
			return nil, err
		}
		return []*ir.Node{n}, nil
	case encode.JSONFormat:
		return decodeJSON(d)
	}
	return decodeYAML(d)
}

func decodeJSON(d []byte) ([]*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var res []*ir.Node
	for i := 0; ; i++ {
		var v any
		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		if err != nil {
			return nil, fmt.Errorf("error decoding document %d: %w", i, err)
		}
		n, err := buildDoc(v)
		if err != nil {
			return nil, fmt.Errorf("error building document %d: %w", i, err)
		}
		res = append(res, n)
	}
}

func decodeYAML(d []byte) ([]*ir.Node, error) {
	dec := yaml.NewDecoder(bytes.NewReader(d))
	var res []*ir.Node
	for i := 0; ; i++ {
		var v any
		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		if err != nil {
			return nil, fmt.Errorf("error decoding document %d: %w", i, err)
		}
		n, err := buildDoc(v)
		if err != nil {
			return nil, fmt.Errorf("error building document %d: %w", i, err)
		}
		res = append(res, n)
	}
}

func buildDoc(v any) (*ir.Node, error) {
	if debug.Build() {
		debug.LogAny(v)
	}
	return build.Build(v)
}
