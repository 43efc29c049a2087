package engine

import (
	"github.com/fluffysquirrels/redis-oxide/ops"
)

// ReturnValue is the typed outcome of executing one op, independent of
// wire formatting. The set of variants is closed.
type ReturnValue interface {
	isReturnValue()
}

// OkRes is the no-payload success marker
type OkRes struct{}

// NilRes marks an absent value
type NilRes struct{}

// StringRes carries a single value
type StringRes struct {
	Val ops.Value
}

// MultiStringRes carries a flat list of values
type MultiStringRes struct {
	Vals []ops.Value
}

// ArrayRes carries nested per-element results, e.g. one slot per
// requested field of a multi-get
type ArrayRes struct {
	Elems []ReturnValue
}

// IntRes carries an integer result
type IntRes struct {
	Val ops.Count
}

// ErrRes carries a fixed error payload for the one fallible execution
// path per engine
type ErrRes struct {
	Msg string
}

func (OkRes) isReturnValue() {}
func (NilRes) isReturnValue() {}
func (StringRes) isReturnValue() {}
func (MultiStringRes) isReturnValue() {}
func (ArrayRes) isReturnValue() {}
func (IntRes) isReturnValue() {}
func (ErrRes) isReturnValue() {}
