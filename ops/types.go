package ops

import (
	"strconv"

	"github.com/fluffysquirrels/redis-oxide/interface/redis"
	"github.com/fluffysquirrels/redis-oxide/protocol"
)

// Key is the standard type to index our structures
type Key = string

// Value is the unit of storage
type Value = []byte

// Count is used for commands that count
type Count = int64

// FieldValue is one (field, value) pair of a multi-set hash command
type FieldValue struct {
	Field Key
	Value Value
}

// asString coerces a wire value into a string, only simple and bulk
// strings qualify
func asString(r redis.Reply) (string, error) {
	switch v := r.(type) {
	case *protocol.StatusReply:
		return v.Status, nil
	case *protocol.BulkReply:
		if v.Arg == nil {
			return "", ErrInvalidType
		}
		return string(v.Arg), nil
	default:
		return "", ErrInvalidType
	}
}

// asInt coerces a wire value into a signed count, accepting a native
// integer or a base-10 string
func asInt(r redis.Reply) (Count, error) {
	if v, ok := r.(*protocol.IntReply); ok {
		return v.Code, nil
	}
	s, err := asString(r)
	if err != nil {
		return 0, ErrInvalidType
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidType
	}
	return i, nil
}

// asCount is asInt restricted to non-negative counts
func asCount(r redis.Reply) (Count, error) {
	i, err := asInt(r)
	if err != nil {
		return 0, err
	}
	if i < 0 {
		return 0, ErrInvalidType
	}
	return i, nil
}

func allStrings(v []redis.Reply) bool {
	for _, x := range v {
		switch r := x.(type) {
		case *protocol.StatusReply:
		case *protocol.BulkReply:
			if r.Arg == nil {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// tailAsStrings converts every element of the tail, failing if any of
// them is not a string
func tailAsStrings(tail []redis.Reply) ([]string, error) {
	if !allStrings(tail) {
		return nil, ErrInvalidType
	}
	keys := make([]string, len(tail))
	for i, x := range tail {
		keys[i], _ = asString(x)
	}
	return keys, nil
}

// tailAsValues is tailAsStrings for commands that store opaque values
func tailAsValues(tail []redis.Reply) ([]Value, error) {
	strs, err := tailAsStrings(tail)
	if err != nil {
		return nil, err
	}
	vals := make([]Value, len(strs))
	for i, s := range strs {
		vals[i] = Value(s)
	}
	return vals, nil
}
