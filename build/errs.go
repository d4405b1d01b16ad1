package build

import "errors"

var ErrShape = errors.New("malformed literal")
