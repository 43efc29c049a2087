package engine

import (
	"github.com/fluffysquirrels/redis-oxide/ops"
)

// Interact routes one typed op to the engine owning its container.
// The op families are disjoint, so the first match is the only match.
func Interact(op ops.Op, s *State) ReturnValue {
	switch o := op.(type) {
	case ops.KeyOp:
		return KeyInteract(o, s)
	case ops.HashOp:
		return HashInteract(o, s)
	case ops.SetOp:
		return SetInteract(o, s)
	case ops.ListOp:
		return ListInteract(o, s)
	case ops.MiscOp:
		return MiscInteract(o, s)
	default:
		panic("unhandled op family")
	}
}
