package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/jsonlit/token"
)

var (
	ErrParse         = errors.New("parse error")
	ErrEmpty         = fmt.Errorf("%w: empty document", ErrParse)
	ErrDepthExceeded = fmt.Errorf("%w: maximum depth exceeded", ErrParse)
)

func parseErr(pos *token.Pos, format string, args ...any) error {
	return fmt.Errorf("%w: %s at %s", ErrParse, fmt.Sprintf(format, args...), pos)
}
