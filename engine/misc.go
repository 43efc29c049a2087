package engine

import (
	"github.com/fluffysquirrels/redis-oxide/ops"
)

// MiscInteract executes the ops that do not target a single container.
func MiscInteract(op ops.MiscOp, s *State) ReturnValue {
	switch op.(type) {
	case ops.Ping:
		return StringRes{Val: ops.Value("PONG")}
	case ops.Keys:
		return s.allKeys()
	case ops.Info:
		return s.info()
	default:
		panic("unhandled misc op")
	}
}

// allKeys walks the registry in key order, covering the keys of every
// container class
func (s *State) allKeys() ReturnValue {
	it := s.registry.Iterator(false)
	if it == nil {
		return MultiStringRes{Vals: []ops.Value{}}
	}
	defer it.Close()
	ret := make([]ops.Value, 0, s.registry.Size())
	for it.Rewind(); it.Valid(); it.Next() {
		ret = append(ret, it.Key())
	}
	return MultiStringRes{Vals: ret}
}
