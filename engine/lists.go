package engine

import (
	"github.com/fluffysquirrels/redis-oxide/ops"
)

// ListInteract executes one list op against the shared list container.
func ListInteract(op ops.ListOp, s *State) ReturnValue {
	switch o := op.(type) {
	case ops.LPush:
		return s.lPush(o.Key, o.Values)
	case ops.LPushX:
		return s.lPushX(o.Key, o.Value)
	case ops.RPush:
		return s.rPush(o.Key, o.Values)
	case ops.RPushX:
		return s.rPushX(o.Key, o.Value)
	case ops.LLen:
		return s.lLen(o.Key)
	case ops.LPop:
		return s.lPop(o.Key)
	case ops.RPop:
		return s.rPop(o.Key)
	default:
		panic("unhandled list op")
	}
}

// lPush pushes each value to the front in argument order, so the last
// argument ends up at the head
func (s *State) lPush(key ops.Key, values []ops.Value) ReturnValue {
	s.listMu.Lock()
	defer s.listMu.Unlock()
	s.touchList(key)
	list := s.lists[key]
	for _, v := range values {
		list = append([]ops.Value{v}, list...)
	}
	s.lists[key] = list
	return IntRes{Val: ops.Count(len(list))}
}

func (s *State) lPushX(key ops.Key, value ops.Value) ReturnValue {
	s.listMu.Lock()
	defer s.listMu.Unlock()
	list, ok := s.lists[key]
	if !ok {
		// 不存在的key不会被创建
		return IntRes{Val: 0}
	}
	list = append([]ops.Value{value}, list...)
	s.lists[key] = list
	return IntRes{Val: ops.Count(len(list))}
}

func (s *State) rPush(key ops.Key, values []ops.Value) ReturnValue {
	s.listMu.Lock()
	defer s.listMu.Unlock()
	s.touchList(key)
	list := append(s.lists[key], values...)
	s.lists[key] = list
	return IntRes{Val: ops.Count(len(list))}
}

func (s *State) rPushX(key ops.Key, value ops.Value) ReturnValue {
	s.listMu.Lock()
	defer s.listMu.Unlock()
	list, ok := s.lists[key]
	if !ok {
		return IntRes{Val: 0}
	}
	list = append(list, value)
	s.lists[key] = list
	return IntRes{Val: ops.Count(len(list))}
}

func (s *State) lLen(key ops.Key) ReturnValue {
	s.listMu.RLock()
	defer s.listMu.RUnlock()
	return IntRes{Val: ops.Count(len(s.lists[key]))}
}

func (s *State) lPop(key ops.Key) ReturnValue {
	s.listMu.Lock()
	defer s.listMu.Unlock()
	list := s.lists[key]
	if len(list) == 0 {
		return NilRes{}
	}
	head := list[0]
	s.lists[key] = list[1:]
	return StringRes{Val: head}
}

func (s *State) rPop(key ops.Key) ReturnValue {
	s.listMu.Lock()
	defer s.listMu.Unlock()
	list := s.lists[key]
	if len(list) == 0 {
		return NilRes{}
	}
	tail := list[len(list)-1]
	s.lists[key] = list[:len(list)-1]
	return StringRes{Val: tail}
}
