package coerce

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrUnsupported    = errors.New("unsupported leaf type")
	ErrUnsupportedKey = errors.New("unsupported key type")
)

// UnsupportedError reports a value whose type has no registered coercion.
type UnsupportedError struct {
	Type reflect.Type
	Key  bool
}

func (e *UnsupportedError) Unwrap() error {
	if e.Key {
		return ErrUnsupportedKey
	}
	return ErrUnsupported
}

func (e *UnsupportedError) Error() string {
	t := "<nil>"
	if e.Type != nil {
		t = e.Type.String()
	}
	return fmt.Sprintf("%s %s", e.Unwrap(), t)
}
