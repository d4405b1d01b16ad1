package encode

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/jsonlit/ir"

	"github.com/goccy/go-yaml"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	format Format
	indent int

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w followed by a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case LiteralFormat:
		if err := encodeLiteral(node, w, es); err != nil {
			return err
		}
		return writeString(w, "\n")
	case JSONFormat:
		return encodeJSON(node, w, es)
	case YAMLFormat:
		return encodeYAML(node, w, es)
	}
	return fmt.Errorf("%w: %w: %d", ErrEncoding, ErrBadFormat, es.format)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func encodeLiteral(node *ir.Node, w io.Writer, es *EncState) error {
	t := node.Type()
	switch t {
	case ir.NullType, ir.BoolType, ir.NumberType, ir.StringType:
		return writeString(w, es.color(t, ValueColor, node.String()))
	case ir.ArrayType:
		if err := writeString(w, es.color(t, SepColor, "[")); err != nil {
			return err
		}
		for i, v := range node.Elements() {
			if i > 0 {
				if err := writeString(w, es.color(t, SepColor, ",")+" "); err != nil {
					return err
				}
			}
			if err := encodeLiteral(v, w, es); err != nil {
				return err
			}
		}
		return writeString(w, es.color(t, SepColor, "]"))
	case ir.ObjectType:
		if err := writeString(w, es.color(t, SepColor, "{")); err != nil {
			return err
		}
		i := 0
		for k, v := range node.Fields() {
			if i > 0 {
				if err := writeString(w, es.color(t, SepColor, ",")+" "); err != nil {
					return err
				}
			}
			i++
			field := es.color(t, FieldColor, strconv.Quote(k)) + es.color(t, SepColor, ":") + " "
			if err := writeString(w, field); err != nil {
				return err
			}
			if err := encodeLiteral(v, w, es); err != nil {
				return err
			}
		}
		return writeString(w, es.color(t, SepColor, "}"))
	}
	return fmt.Errorf("%w: unknown type %s", ErrEncoding, t)
}

// checkFinite reports the first NaN or infinite number in node, which
// JSON and YAML readers do not share a spelling for.
func checkFinite(node *ir.Node, f Format) error {
	return node.Visit(func(p *ir.Path, y *ir.Node, isPost bool) (bool, error) {
		if isPost || y.Type() != ir.NumberType {
			return true, nil
		}
		if n := y.Number(); math.IsNaN(n) || math.IsInf(n, 0) {
			return false, fmt.Errorf("%w: cannot encode %s in %s at %s", ErrEncoding, y, f, p)
		}
		return true, nil
	})
}

func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	if err := checkFinite(node, JSONFormat); err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if es.indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", es.indent))
	}
	if err := enc.Encode(node); err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return nil
}

func encodeYAML(node *ir.Node, w io.Writer, es *EncState) error {
	if err := checkFinite(node, YAMLFormat); err != nil {
		return err
	}
	yOpts := []yaml.EncodeOption{}
	if es.indent > 0 {
		yOpts = append(yOpts, yaml.Indent(es.indent))
	}
	d, err := yaml.MarshalWithOptions(yamlValue(node), yOpts...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	_, err = w.Write(d)
	return err
}

// yamlValue converts node to values go-yaml encodes with object keys in
// sorted order.
func yamlValue(node *ir.Node) any {
	switch node.Type() {
	case ir.BoolType:
		return node.Bool()
	case ir.NumberType:
		n := node.Number()
		if n == math.Trunc(n) && math.Abs(n) < 1<<53 {
			return int64(n)
		}
		return n
	case ir.StringType:
		return node.Str()
	case ir.ArrayType:
		res := make([]any, 0, node.Len())
		for _, v := range node.Elements() {
			res = append(res, yamlValue(v))
		}
		return res
	case ir.ObjectType:
		res := make(yaml.MapSlice, 0, node.Len())
		for k, v := range node.Fields() {
			res = append(res, yaml.MapItem{Key: k, Value: yamlValue(v)})
		}
		return res
	}
	return nil
}
