package msgpack

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedEndOfBuffer reports a tag whose inline fields or
	// payload would read past the end of the input.
	ErrUnexpectedEndOfBuffer = errors.New("msgpack: unexpected end of buffer")

	// ErrUnterminatedContainer reports input that ended while one or
	// more containers still expected children.
	ErrUnterminatedContainer = errors.New("msgpack: unterminated container")
)

// DecodeError is a structural decode failure pinned to a byte offset.
// It wraps one of the sentinel errors above.
type DecodeError struct {
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v at offset %d", e.Err, e.Offset)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func errAt(off int, err error) error {
	return &DecodeError{Offset: off, Err: err}
}
