package engine

import (
	"strconv"

	"github.com/fluffysquirrels/redis-oxide/ops"
)

// badTypeErr is the payload returned when an increment meets a
// non-numeric stored value
const badTypeErr = "Bad Type!"

// HashInteract executes one hash op against the shared hash container.
// The switch is exhaustive over the HashOp variants.
func HashInteract(op ops.HashOp, s *State) ReturnValue {
	switch o := op.(type) {
	case ops.HGet:
		return s.hGet(o.Key, o.Field)
	case ops.HSet:
		return s.hSet(o.Key, o.Field, o.Value)
	case ops.HExists:
		return s.hExists(o.Key, o.Field)
	case ops.HGetAll:
		return s.hGetAll(o.Key)
	case ops.HMGet:
		return s.hMGet(o.Key, o.Fields)
	case ops.HKeys:
		return s.hKeys(o.Key)
	case ops.HMSet:
		return s.hMSet(o.Key, o.Pairs)
	case ops.HIncrBy:
		return s.hIncrBy(o.Key, o.Field, o.Amount)
	case ops.HLen:
		return s.hLen(o.Key)
	case ops.HDel:
		return s.hDel(o.Key, o.Fields)
	case ops.HVals:
		return s.hVals(o.Key)
	case ops.HStrLen:
		return s.hStrLen(o.Key, o.Field)
	case ops.HSetNX:
		return s.hSetNX(o.Key, o.Field, o.Value)
	default:
		panic("unhandled hash op")
	}
}

func (s *State) hGet(key, field ops.Key) ReturnValue {
	s.hashMu.RLock()
	defer s.hashMu.RUnlock()
	if v, ok := s.hashes[key][field]; ok {
		return StringRes{Val: v}
	}
	return NilRes{}
}

func (s *State) hSet(key, field ops.Key, value ops.Value) ReturnValue {
	s.hashMu.Lock()
	defer s.hashMu.Unlock()
	s.hashFor(key)[field] = value
	return OkRes{}
}

func (s *State) hExists(key, field ops.Key) ReturnValue {
	s.hashMu.RLock()
	defer s.hashMu.RUnlock()
	if _, ok := s.hashes[key][field]; ok {
		return IntRes{Val: 1}
	}
	return IntRes{Val: 0}
}

func (s *State) hGetAll(key ops.Key) ReturnValue {
	s.hashMu.RLock()
	defer s.hashMu.RUnlock()
	hash, ok := s.hashes[key]
	if !ok {
		return MultiStringRes{Vals: []ops.Value{}}
	}
	ret := make([]ops.Value, 0, len(hash)*2)
	for field, val := range hash {
		ret = append(ret, ops.Value(field), val)
	}
	return MultiStringRes{Vals: ret}
}

func (s *State) hMGet(key ops.Key, fields []ops.Key) ReturnValue {
	s.hashMu.RLock()
	defer s.hashMu.RUnlock()
	elems := make([]ReturnValue, len(fields))
	hash := s.hashes[key]
	// 无论key是否存在，都保持每个field请求顺序
	for i, field := range fields {
		if v, ok := hash[field]; ok {
			elems[i] = StringRes{Val: v}
		} else {
			elems[i] = NilRes{}
		}
	}
	return ArrayRes{Elems: elems}
}

func (s *State) hKeys(key ops.Key) ReturnValue {
	s.hashMu.RLock()
	defer s.hashMu.RUnlock()
	hash := s.hashes[key]
	ret := make([]ops.Value, 0, len(hash))
	for field := range hash {
		ret = append(ret, ops.Value(field))
	}
	return MultiStringRes{Vals: ret}
}

func (s *State) hMSet(key ops.Key, pairs []ops.FieldValue) ReturnValue {
	s.hashMu.Lock()
	defer s.hashMu.Unlock()
	hash := s.hashFor(key)
	// 后面的pair会覆盖前面的同名field
	for _, pair := range pairs {
		hash[pair.Field] = pair.Value
	}
	return OkRes{}
}

// hIncrBy performs the whole read-parse-add-store sequence under one
// write-lock acquisition so concurrent increments on the same field
// never lose updates. Overflow wraps around in two's complement, there
// is no saturation and no overflow error.
func (s *State) hIncrBy(key, field ops.Key, amount ops.Count) ReturnValue {
	s.hashMu.Lock()
	defer s.hashMu.Unlock()
	hash := s.hashFor(key)
	var curr int64
	if v, ok := hash[field]; ok {
		n, err := strconv.ParseInt(string(v), 10, 64)
		if err != nil {
			// 解析失败时字段保持原值不变
			return ErrRes{Msg: badTypeErr}
		}
		curr = n
	}
	curr += amount
	hash[field] = ops.Value(strconv.FormatInt(curr, 10))
	return OkRes{}
}

func (s *State) hLen(key ops.Key) ReturnValue {
	s.hashMu.RLock()
	defer s.hashMu.RUnlock()
	return IntRes{Val: ops.Count(len(s.hashes[key]))}
}

func (s *State) hDel(key ops.Key, fields []ops.Key) ReturnValue {
	s.hashMu.Lock()
	defer s.hashMu.Unlock()
	hash, ok := s.hashes[key]
	if !ok {
		return IntRes{Val: 0}
	}
	var removed ops.Count
	for _, field := range fields {
		if _, ok := hash[field]; ok {
			delete(hash, field)
			removed++
		}
	}
	return IntRes{Val: removed}
}

func (s *State) hVals(key ops.Key) ReturnValue {
	s.hashMu.RLock()
	defer s.hashMu.RUnlock()
	hash := s.hashes[key]
	ret := make([]ops.Value, 0, len(hash))
	for _, val := range hash {
		ret = append(ret, val)
	}
	return MultiStringRes{Vals: ret}
}

func (s *State) hStrLen(key, field ops.Key) ReturnValue {
	s.hashMu.RLock()
	defer s.hashMu.RUnlock()
	if v, ok := s.hashes[key][field]; ok {
		return IntRes{Val: ops.Count(len(v))}
	}
	return IntRes{Val: 0}
}

func (s *State) hSetNX(key, field ops.Key, value ops.Value) ReturnValue {
	s.hashMu.Lock()
	defer s.hashMu.Unlock()
	hash := s.hashFor(key)
	if _, ok := hash[field]; ok {
		return IntRes{Val: 0}
	}
	hash[field] = value
	return IntRes{Val: 1}
}
