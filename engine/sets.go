package engine

import (
	"github.com/fluffysquirrels/redis-oxide/ops"
	"golang.org/x/exp/rand"
)

// SetInteract executes one set op against the shared set container.
// The algebra commands (diff/union/inter) read every operand under a
// single read-lock acquisition; the store variants do the whole
// compute-and-store under one write lock.
func SetInteract(op ops.SetOp, s *State) ReturnValue {
	switch o := op.(type) {
	case ops.SAdd:
		return s.sAdd(o.Key, o.Members)
	case ops.SRem:
		return s.sRem(o.Key, o.Members)
	case ops.SMembers:
		return s.sMembers(o.Key)
	case ops.SIsMember:
		return s.sIsMember(o.Key, o.Member)
	case ops.SCard:
		return s.sCard(o.Key)
	case ops.SDiff:
		return s.sAlgebra(o.Keys, diff)
	case ops.SUnion:
		return s.sAlgebra(o.Keys, union)
	case ops.SInter:
		return s.sAlgebra(o.Keys, inter)
	case ops.SDiffStore:
		return s.sAlgebraStore(o.Dest, o.Keys, diff)
	case ops.SUnionStore:
		return s.sAlgebraStore(o.Dest, o.Keys, union)
	case ops.SInterStore:
		return s.sAlgebraStore(o.Dest, o.Keys, inter)
	case ops.SPop:
		return s.sPop(o.Key, o.Count)
	case ops.SMove:
		return s.sMove(o.Src, o.Dest, o.Member)
	case ops.SRandMember:
		return s.sRandMember(o.Key, o.Count)
	default:
		panic("unhandled set op")
	}
}

func (s *State) sAdd(key ops.Key, members []string) ReturnValue {
	s.setMu.Lock()
	defer s.setMu.Unlock()
	set := s.setFor(key)
	var added ops.Count
	for _, m := range members {
		if _, ok := set[m]; !ok {
			set[m] = struct{}{}
			added++
		}
	}
	return IntRes{Val: added}
}

func (s *State) sRem(key ops.Key, members []string) ReturnValue {
	s.setMu.Lock()
	defer s.setMu.Unlock()
	set, ok := s.sets[key]
	if !ok {
		return IntRes{Val: 0}
	}
	var removed ops.Count
	for _, m := range members {
		if _, ok := set[m]; ok {
			delete(set, m)
			removed++
		}
	}
	return IntRes{Val: removed}
}

func (s *State) sMembers(key ops.Key) ReturnValue {
	s.setMu.RLock()
	defer s.setMu.RUnlock()
	set := s.sets[key]
	ret := make([]ops.Value, 0, len(set))
	for m := range set {
		ret = append(ret, ops.Value(m))
	}
	return MultiStringRes{Vals: ret}
}

func (s *State) sIsMember(key ops.Key, member string) ReturnValue {
	s.setMu.RLock()
	defer s.setMu.RUnlock()
	if _, ok := s.sets[key][member]; ok {
		return IntRes{Val: 1}
	}
	return IntRes{Val: 0}
}

func (s *State) sCard(key ops.Key) ReturnValue {
	s.setMu.RLock()
	defer s.setMu.RUnlock()
	return IntRes{Val: ops.Count(len(s.sets[key]))}
}

type algebraFunc func(sets []map[string]struct{}) map[string]struct{}

// diff keeps the members of the first operand that appear in no other
// operand
func diff(sets []map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	if len(sets) == 0 {
		return out
	}
	for m := range sets[0] {
		keep := true
		for _, other := range sets[1:] {
			if _, ok := other[m]; ok {
				keep = false
				break
			}
		}
		if keep {
			out[m] = struct{}{}
		}
	}
	return out
}

func union(sets []map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for _, set := range sets {
		for m := range set {
			out[m] = struct{}{}
		}
	}
	return out
}

func inter(sets []map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	if len(sets) == 0 {
		return out
	}
	for m := range sets[0] {
		in := true
		for _, other := range sets[1:] {
			if _, ok := other[m]; !ok {
				in = false
				break
			}
		}
		if in {
			out[m] = struct{}{}
		}
	}
	return out
}

// operands resolves keys to their sets, absent keys read as empty.
// Caller must hold at least the read lock.
func (s *State) operands(keys []ops.Key) []map[string]struct{} {
	sets := make([]map[string]struct{}, len(keys))
	for i, key := range keys {
		sets[i] = s.sets[key]
	}
	return sets
}

func (s *State) sAlgebra(keys []ops.Key, f algebraFunc) ReturnValue {
	s.setMu.RLock()
	defer s.setMu.RUnlock()
	result := f(s.operands(keys))
	ret := make([]ops.Value, 0, len(result))
	for m := range result {
		ret = append(ret, ops.Value(m))
	}
	return MultiStringRes{Vals: ret}
}

func (s *State) sAlgebraStore(dest ops.Key, keys []ops.Key, f algebraFunc) ReturnValue {
	s.setMu.Lock()
	defer s.setMu.Unlock()
	result := f(s.operands(keys))
	s.setFor(dest)
	s.sets[dest] = result
	return IntRes{Val: ops.Count(len(result))}
}

func (s *State) sPop(key ops.Key, count *ops.Count) ReturnValue {
	s.setMu.Lock()
	defer s.setMu.Unlock()
	set, ok := s.sets[key]
	if !ok {
		if count == nil {
			return NilRes{}
		}
		return MultiStringRes{Vals: []ops.Value{}}
	}
	if count == nil {
		if len(set) == 0 {
			return NilRes{}
		}
		m := randomMembers(set, 1)[0]
		delete(set, string(m))
		return StringRes{Val: m}
	}
	n := int(*count)
	if n > len(set) {
		n = len(set)
	}
	popped := randomMembers(set, n)
	for _, m := range popped {
		delete(set, string(m))
	}
	return MultiStringRes{Vals: popped}
}

// sMove removes the member from src and adds it to dest under a single
// write-lock acquisition, so readers never observe the member in
// neither set
func (s *State) sMove(src, dest ops.Key, member string) ReturnValue {
	s.setMu.Lock()
	defer s.setMu.Unlock()
	srcSet, ok := s.sets[src]
	if !ok {
		return IntRes{Val: 0}
	}
	if _, ok := srcSet[member]; !ok {
		return IntRes{Val: 0}
	}
	delete(srcSet, member)
	s.setFor(dest)[member] = struct{}{}
	return IntRes{Val: 1}
}

func (s *State) sRandMember(key ops.Key, count *ops.Count) ReturnValue {
	s.setMu.RLock()
	defer s.setMu.RUnlock()
	set, ok := s.sets[key]
	if !ok || len(set) == 0 {
		if count == nil {
			return NilRes{}
		}
		return MultiStringRes{Vals: []ops.Value{}}
	}
	if count == nil {
		return StringRes{Val: randomMembers(set, 1)[0]}
	}
	n := *count
	if n >= 0 {
		// 非负数返回不重复的成员
		k := int(n)
		if k > len(set) {
			k = len(set)
		}
		return MultiStringRes{Vals: randomMembers(set, k)}
	}
	// 负数允许重复
	members := randomMembers(set, len(set))
	ret := make([]ops.Value, -n)
	for i := range ret {
		ret[i] = members[rand.Intn(len(members))]
	}
	return MultiStringRes{Vals: ret}
}

// randomMembers picks n distinct members in random order,
// n must not exceed len(set)
func randomMembers(set map[string]struct{}, n int) []ops.Value {
	all := make([]ops.Value, 0, len(set))
	for m := range set {
		all = append(all, ops.Value(m))
	}
	rand.Shuffle(len(all), func(i, j int) {
		all[i], all[j] = all[j], all[i]
	})
	return all[:n]
}
