package token

import (
	"bytes"
	"unicode"
	"unicode/utf8"
)

var structural = map[byte]TokenType{
	'[': TLSquare,
	']': TRSquare,
	'{': TLCurl,
	'}': TRCurl,
	',': TComma,
	':': TColon,
}

// Tokenize appends the tokens of src to dst.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	if !utf8.Valid(src) {
		return nil, ErrBadUTF8
	}
	pd := NewPosDoc(src)
	var open []*Token
	i, n := 0, len(src)
	for i < n {
		r, sz := utf8.DecodeRune(src[i:])
		if unicode.IsSpace(r) {
			i += sz
			continue
		}
		if tt, ok := structural[src[i]]; ok {
			tok := Token{Type: tt, Pos: pd.Pos(i), Bytes: src[i : i+1]}
			switch tt {
			case TLSquare, TLCurl:
				open = append(open, &tok)
			case TRSquare, TRCurl:
				if len(open) == 0 {
					return nil, &ErrImbalancedStructure{Close: &tok}
				}
				o := open[len(open)-1]
				if (o.Type == TLSquare) != (tt == TRSquare) {
					return nil, &ErrImbalancedStructure{Open: o, Close: &tok}
				}
				open = open[:len(open)-1]
			}
			dst = append(dst, tok)
			i++
			continue
		}
		j, err := scanExpr(src, i, pd)
		if err != nil {
			return nil, err
		}
		lit := bytes.TrimRightFunc(src[i:j], unicode.IsSpace)
		tok := Token{Type: TExpr, Pos: pd.Pos(i), Bytes: lit}
		if string(lit) == "null" {
			tok.Type = TNull
		}
		dst = append(dst, tok)
		i = j
	}
	if len(open) != 0 {
		return nil, &ErrImbalancedStructure{Open: open[len(open)-1]}
	}
	return dst, nil
}

// scanExpr returns the offset just past the leaf expression starting at
// i: the next structural byte outside quotes and grouping, or len(d).
func scanExpr(d []byte, i int, pd *PosDoc) (int, error) {
	var groups []byte
	n := len(d)
	for i < n {
		c := d[i]
		switch c {
		case '"', '\'', '`':
			j, err := scanQuoted(d, i, pd)
			if err != nil {
				return 0, err
			}
			i = j
			continue
		case '(':
			groups = append(groups, ')')
		case '[':
			if len(groups) == 0 {
				return i, nil
			}
			groups = append(groups, ']')
		case '{':
			if len(groups) == 0 {
				return i, nil
			}
			groups = append(groups, '}')
		case ')', ']', '}':
			if len(groups) == 0 {
				if c == ')' {
					return 0, UnexpectedErr(")", pd.Pos(i))
				}
				return i, nil
			}
			if groups[len(groups)-1] != c {
				return 0, UnexpectedErr(string(c), pd.Pos(i))
			}
			groups = groups[:len(groups)-1]
		case ',', ':':
			if len(groups) == 0 {
				return i, nil
			}
		}
		i++
	}
	if len(groups) != 0 {
		return 0, NewTokenizeErr(ErrUnterminated, pd.end())
	}
	return i, nil
}

// scanQuoted returns the offset just past the quoted string starting at
// i. Backslash escapes are skipped in '"' and '\'' strings; '`' strings
// are raw.
func scanQuoted(d []byte, i int, pd *PosDoc) (int, error) {
	q := d[i]
	start := i
	i++
	for i < len(d) {
		c := d[i]
		switch {
		case c == '\\' && q != '`':
			i += 2
			continue
		case c == q:
			return i + 1, nil
		case c == '\n' && q != '`':
			return 0, NewTokenizeErr(ErrUnterminated, pd.Pos(start))
		}
		i++
	}
	return 0, NewTokenizeErr(ErrUnterminated, pd.Pos(start))
}
