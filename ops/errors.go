package ops

import (
	"errors"
	"strconv"
)

// Translation failures, reported before any container is touched
var (
	// ErrNoop marks an empty input array, callers may silently ignore it
	// instead of replying with a protocol error
	ErrNoop = errors.New("no-op")
	// ErrUnknownOp means no command with this name exists
	ErrUnknownOp = errors.New("unknown operation")
	// ErrInvalidType means an argument had the wrong wire-value shape
	ErrInvalidType = errors.New("invalid argument type")
	// ErrSyntax means the arguments were well-typed but malformed,
	// e.g. an odd number of field-value pairs
	ErrSyntax = errors.New("syntax error")
)

// ArityError reports a tail that does not match the command's arity
type ArityError struct {
	Required int
	// Exact distinguishes a fixed arity from a minimum one
	Exact bool
}

func (e *ArityError) Error() string {
	if e.Exact {
		return "wrong number of arguments(" + strconv.Itoa(e.Required) + ")"
	}
	return "not enough arguments(" + strconv.Itoa(e.Required) + ")"
}

func wrongNumberOfArgs(n int) *ArityError {
	return &ArityError{Required: n, Exact: true}
}

func notEnoughArgs(n int) *ArityError {
	return &ArityError{Required: n}
}
