package query

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyConditions = errors.New("condition list is empty")
	ErrBlankValue      = errors.New("condition value is blank")
	ErrInvalidKind     = errors.New("unknown condition kind")
	ErrInvalidValue    = errors.New("condition value contains characters reserved by the query syntax")
	ErrInvalidJoiner   = errors.New("unknown joiner")
)

// CompileError reports which condition made compilation fail. Surfaced
// synchronously at edit time; a compiled query never fails to evaluate.
type CompileError struct {
	Index int
	Err   error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("condition %d: %v", e.Index, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// ParseError reports where re-parsing a serialized query failed. Since the
// compiler only emits well-formed text, hitting this on stored queries is
// an invariant violation.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d: %s", e.Pos, e.Msg)
}
