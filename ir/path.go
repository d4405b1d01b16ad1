package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// Path locates a node within a document. The nil *Path is the root and
// renders as "$".
type Path struct {
	parent *Path
	field  *string
	index  int
}

func (p *Path) Field(f string) *Path {
	return &Path{parent: p, field: &f}
}

func (p *Path) Index(i int) *Path {
	return &Path{parent: p, index: i}
}

func (p *Path) Parent() *Path {
	if p == nil {
		return nil
	}
	return p.parent
}

func (p *Path) Depth() int {
	n := 0
	for x := p; x != nil; x = x.parent {
		n++
	}
	return n
}

func (p *Path) String() string {
	if p == nil {
		return "$"
	}
	prefix := p.parent.String()
	if p.field == nil {
		return prefix + "[" + strconv.Itoa(p.index) + "]"
	}
	f := *p.field
	if f != "" && strings.IndexAny(f, "'.*$[] \\") == -1 {
		return prefix + "." + f
	}
	return prefix + "['" + fieldEscaper.Replace(f) + "']"
}

var fieldEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// Lookup returns the node at p within y.
func (y *Node) Lookup(p *Path) (*Node, error) {
	if p == nil {
		return y, nil
	}
	parent, err := y.Lookup(p.parent)
	if err != nil {
		return nil, err
	}
	if p.field != nil {
		if parent.Type() != ObjectType {
			return nil, fmt.Errorf("%w: %s is %s, not Object", ErrType, p.parent, parent.Type())
		}
		v, ok := parent.Get(*p.field)
		if !ok {
			return nil, fmt.Errorf("%w: no field %q at %s", ErrIndex, *p.field, p.parent)
		}
		return v, nil
	}
	if parent.Type() != ArrayType {
		return nil, fmt.Errorf("%w: %s is %s, not Array", ErrType, p.parent, parent.Type())
	}
	v := parent.Index(p.index)
	if v == nil {
		return nil, fmt.Errorf("%w: %d at %s (len %d)", ErrIndex, p.index, p.parent, parent.Len())
	}
	return v, nil
}

// ParsePath parses the String form of a path: "$" followed by any
// number of ".field", "['quoted field']" and "[index]" selectors.
func ParsePath(s string) (*Path, error) {
	if s == "" || s[0] != '$' {
		return nil, fmt.Errorf("%w: path %q must start with $", ErrPath, s)
	}
	var p *Path
	i, n := 1, len(s)
	for i < n {
		switch s[i] {
		case '.':
			j := i + 1
			for j < n && s[j] != '.' && s[j] != '[' {
				j++
			}
			if j == i+1 {
				return nil, fmt.Errorf("%w: empty field at %d in %q", ErrPath, i, s)
			}
			p = p.Field(s[i+1 : j])
			i = j
		case '[':
			if i+1 < n && s[i+1] == '\'' {
				f, j, err := scanQuotedField(s, i+2)
				if err != nil {
					return nil, err
				}
				p = p.Field(f)
				i = j
				continue
			}
			j := strings.IndexByte(s[i:], ']')
			if j == -1 {
				return nil, fmt.Errorf("%w: unterminated index at %d in %q", ErrPath, i, s)
			}
			idx, err := strconv.Atoi(s[i+1 : i+j])
			if err != nil || idx < 0 {
				return nil, fmt.Errorf("%w: bad index %q in %q", ErrPath, s[i+1:i+j], s)
			}
			p = p.Index(idx)
			i += j + 1
		default:
			return nil, fmt.Errorf("%w: unexpected %q at %d in %q", ErrPath, s[i], i, s)
		}
	}
	return p, nil
}

// scanQuotedField scans a field ending in "']" from i, returning the
// unescaped field and the offset after the "]".
func scanQuotedField(s string, i int) (string, int, error) {
	var sb strings.Builder
	for i < len(s) {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s):
			sb.WriteByte(s[i+1])
			i += 2
			continue
		case c == '\'':
			if i+1 >= len(s) || s[i+1] != ']' {
				return "", 0, fmt.Errorf("%w: expected ] after quoted field in %q", ErrPath, s)
			}
			return sb.String(), i + 2, nil
		}
		sb.WriteByte(c)
		i++
	}
	return "", 0, fmt.Errorf("%w: unterminated quoted field in %q", ErrPath, s)
}

// GetPath is Lookup with a path in String form.
func (y *Node) GetPath(s string) (*Node, error) {
	p, err := ParsePath(s)
	if err != nil {
		return nil, err
	}
	return y.Lookup(p)
}
