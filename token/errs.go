package token

import (
	"errors"
	"fmt"
)

var (
	ErrBadUTF8      = errors.New("bad utf8")
	ErrUnterminated = errors.New("unterminated")
	ErrImbalance    = errors.New("imbalanced document")
)

type TokenizeErr struct {
	Err error
	Pos *Pos
}

func NewTokenizeErr(e error, pos *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: pos}
}

func (e *TokenizeErr) Unwrap() error {
	return e.Err
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err, e.Pos)
}

func UnexpectedErr(what string, pos *Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w: unexpected %q", ErrImbalance, what), pos)
}

// ErrImbalancedStructure reports an unmatched or mismatched bracket or
// brace. Open is nil for a stray closer and Close is nil for an opener
// which is never closed.
type ErrImbalancedStructure struct {
	Open, Close *Token
}

func (i *ErrImbalancedStructure) Unwrap() error {
	return ErrImbalance
}

func (i *ErrImbalancedStructure) Error() string {
	if i.Open == nil {
		return UnexpectedErr(string(i.Close.Bytes), i.Close.Pos).Error()
	}
	if i.Close == nil {
		return ErrImbalance.Error() + ": " + fmt.Sprintf("unmatched %s at %s", string(i.Open.Bytes),
			i.Open.Pos.String())
	}
	return fmt.Sprintf("%s: %s at %s closed by %s at %s",
		ErrImbalance.Error(),
		string(i.Open.Bytes), i.Open.Pos.String(),
		string(i.Close.Bytes), i.Close.Pos.String())
}
