package encode

import (
	"errors"
	"fmt"
)

type Format int

const (
	LiteralFormat Format = iota
	YAMLFormat
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"l":       LiteralFormat,
		"lit":     LiteralFormat,
		"literal": LiteralFormat,
		"y":       YAMLFormat,
		"yaml":    YAMLFormat,
		"j":       JSONFormat,
		"json":    JSONFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case LiteralFormat:
		return []byte("literal"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case JSONFormat:
		return []byte("json"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case LiteralFormat:
		return ".jlit"
	case YAMLFormat:
		return ".yaml"
	case JSONFormat:
		return ".json"
	default:
		return ""
	}
}

// FormatForSuffix returns the format whose Suffix is s. ".yml" is
// accepted for YAML.
func FormatForSuffix(s string) (Format, bool) {
	if s == ".yml" {
		return YAMLFormat, true
	}
	for _, f := range AllFormats() {
		if f.Suffix() == s {
			return f, true
		}
	}
	return 0, false
}

func AllFormats() []Format {
	return []Format{LiteralFormat, YAMLFormat, JSONFormat}
}
