package parse

import (
	"fmt"
	"os"

	"github.com/signadot/jsonlit/build"
	"github.com/signadot/jsonlit/debug"
	"github.com/signadot/jsonlit/eval"
	"github.com/signadot/jsonlit/ir"
	"github.com/signadot/jsonlit/token"
)

// Parse parses and builds the single value in d.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := newOpts(opts)
	lit, err := parseLiteral(d, pOpts)
	if err != nil {
		return nil, err
	}
	return build.New(pOpts.buildOpts()...).Build(lit)
}

// ParseLiteral parses d into a build literal with every leaf evaluated,
// without building it.
func ParseLiteral(d []byte, opts ...ParseOption) (any, error) {
	return parseLiteral(d, newOpts(opts))
}

func parseLiteral(d []byte, pOpts *parseOpts) (any, error) {
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if debug.Tokens() {
		token.PrintTokens(os.Stderr, toks, "parse")
	}
	if len(toks) == 0 {
		return nil, ErrEmpty
	}
	p := &parser{toks: toks, opts: pOpts}
	lit, err := p.value(0)
	if err != nil {
		return nil, err
	}
	if p.i < len(toks) {
		t := &toks[p.i]
		return nil, parseErr(t.Pos, "trailing %q", t.String())
	}
	if debug.Parse() {
		debug.Logf("parsed %q -> %#v\n", d, lit)
	}
	return lit, nil
}

type parser struct {
	toks []token.Token
	i    int
	opts *parseOpts
}

func (p *parser) peek() *token.Token {
	if p.i >= len(p.toks) {
		return nil
	}
	return &p.toks[p.i]
}

func (p *parser) value(depth int) (any, error) {
	t := p.peek()
	if t == nil {
		last := &p.toks[len(p.toks)-1]
		return nil, parseErr(last.Pos, "missing value after %q", last.String())
	}
	switch t.Type {
	case token.TNull:
		p.i++
		return build.Null, nil
	case token.TLSquare:
		if err := p.checkDepth(t, depth); err != nil {
			return nil, err
		}
		p.i++
		return p.array(depth + 1)
	case token.TLCurl:
		if err := p.checkDepth(t, depth); err != nil {
			return nil, err
		}
		p.i++
		return p.object(depth + 1)
	case token.TExpr:
		p.i++
		return p.leaf(t)
	case token.TColon:
		return nil, parseErr(t.Pos, "unexpected ':' outside of an object")
	}
	return nil, parseErr(t.Pos, "empty element before %q", t.String())
}

func (p *parser) checkDepth(t *token.Token, depth int) error {
	if p.opts.maxDepth > 0 && depth >= p.opts.maxDepth {
		return fmt.Errorf("%w (%d) at %s", ErrDepthExceeded, p.opts.maxDepth, t.Pos)
	}
	return nil
}

func (p *parser) leaf(t *token.Token) (any, error) {
	v, err := eval.Eval(t.String(), p.opts.env)
	if err != nil {
		return nil, fmt.Errorf("%w: %w at %s", ErrParse, err, t.Pos)
	}
	return v, nil
}

// array parses the elements following '['.
func (p *parser) array(depth int) (any, error) {
	res := build.Arr{}
	for {
		t := p.peek()
		if t.Type == token.TRSquare {
			p.i++
			return res, nil
		}
		v, err := p.value(depth)
		if err != nil {
			return nil, err
		}
		res = append(res, v)
		if err := p.separator(token.TRSquare); err != nil {
			return nil, err
		}
	}
}

// object parses the entries following '{'.
func (p *parser) object(depth int) (any, error) {
	res := build.Obj{}
	for {
		t := p.peek()
		var k any
		switch t.Type {
		case token.TRCurl:
			p.i++
			return res, nil
		case token.TExpr:
			p.i++
			v, err := p.leaf(t)
			if err != nil {
				return nil, err
			}
			k = v
		case token.TNull:
			p.i++
			k = build.Null
		default:
			return nil, parseErr(t.Pos, "expected key, got %q", t.String())
		}
		c := p.peek()
		if c.Type != token.TColon {
			return nil, parseErr(c.Pos, "missing ':' after key %q", t.String())
		}
		p.i++
		v, err := p.value(depth)
		if err != nil {
			return nil, err
		}
		res = append(res, build.KV(k, v))
		if err := p.separator(token.TRCurl); err != nil {
			return nil, err
		}
	}
}

// separator consumes the ',' after an element, or checks that the
// element is followed by the closer.
func (p *parser) separator(closer token.TokenType) error {
	t := p.peek()
	switch t.Type {
	case token.TComma:
		p.i++
		return nil
	case closer:
		return nil
	case token.TColon:
		return parseErr(t.Pos, "unexpected ':'")
	}
	return parseErr(t.Pos, "expected ',' before %q", t.String())
}
