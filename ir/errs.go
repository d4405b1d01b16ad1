package ir

import "errors"

var (
	ErrType  = errors.New("type error")
	ErrJSON  = errors.New("json error")
	ErrIndex = errors.New("index out of range")
	ErrPath  = errors.New("bad path")
)
