package engine

import (
	"github.com/fluffysquirrels/redis-oxide/index"
	"github.com/fluffysquirrels/redis-oxide/ops"
)

// noSuchKeyErr is the payload for renaming a key that does not exist
const noSuchKeyErr = "no such key"

// KeyInteract executes one scalar string op against the shared
// key-value container.
func KeyInteract(op ops.KeyOp, s *State) ReturnValue {
	switch o := op.(type) {
	case ops.Set:
		return s.kvSet(o.Key, o.Value)
	case ops.Get:
		return s.kvGet(o.Key)
	case ops.Del:
		return s.kvDel(o.Keys)
	case ops.Rename:
		return s.kvRename(o.Key, o.NewKey)
	case ops.Exists:
		return s.kvExists(o.Keys)
	default:
		panic("unhandled key op")
	}
}

func (s *State) kvSet(key ops.Key, value ops.Value) ReturnValue {
	s.kvMu.Lock()
	defer s.kvMu.Unlock()
	s.kv[key] = value
	s.registry.Put([]byte(key), index.String)
	return OkRes{}
}

func (s *State) kvGet(key ops.Key) ReturnValue {
	s.kvMu.RLock()
	defer s.kvMu.RUnlock()
	if v, ok := s.kv[key]; ok {
		return StringRes{Val: v}
	}
	return NilRes{}
}

func (s *State) kvDel(keys []ops.Key) ReturnValue {
	s.kvMu.Lock()
	defer s.kvMu.Unlock()
	var deleted ops.Count
	for _, key := range keys {
		if _, ok := s.kv[key]; ok {
			delete(s.kv, key)
			s.registry.Delete([]byte(key))
			deleted++
		}
	}
	return IntRes{Val: deleted}
}

// kvRename moves a value to a new key under a single write-lock
// acquisition. Both keys live in the same container, so no lock
// ordering question arises.
func (s *State) kvRename(key, newKey ops.Key) ReturnValue {
	s.kvMu.Lock()
	defer s.kvMu.Unlock()
	v, ok := s.kv[key]
	if !ok {
		return ErrRes{Msg: noSuchKeyErr}
	}
	delete(s.kv, key)
	s.kv[newKey] = v
	s.registry.Delete([]byte(key))
	s.registry.Put([]byte(newKey), index.String)
	return OkRes{}
}

func (s *State) kvExists(keys []ops.Key) ReturnValue {
	s.kvMu.RLock()
	defer s.kvMu.RUnlock()
	var n ops.Count
	for _, key := range keys {
		if _, ok := s.kv[key]; ok {
			n++
		}
	}
	return IntRes{Val: n}
}
