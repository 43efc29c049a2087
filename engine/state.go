package engine

import (
	"sync"

	"github.com/fluffysquirrels/redis-oxide/index"
	"github.com/fluffysquirrels/redis-oxide/ops"
)

// State owns the four typed containers. Each container has its own
// reader/writer lock, so commands against different data types never
// serialize with each other. The registry records every live top-level
// key; it has its own lock and is only ever taken while holding the
// owning container's lock, never the other way around.
type State struct {
	kvMu sync.RWMutex
	kv   map[ops.Key]ops.Value

	hashMu sync.RWMutex
	hashes map[ops.Key]map[ops.Key]ops.Value

	setMu sync.RWMutex
	sets  map[ops.Key]map[string]struct{}

	listMu sync.RWMutex
	lists  map[ops.Key][]ops.Value

	registry index.Indexer
}

// NewState creates an empty store backed by the given key registry
func NewState(registry index.Indexer) *State {
	return &State{
		kv:       make(map[ops.Key]ops.Value),
		hashes:   make(map[ops.Key]map[ops.Key]ops.Value),
		sets:     make(map[ops.Key]map[string]struct{}),
		lists:    make(map[ops.Key][]ops.Value),
		registry: registry,
	}
}

// hashFor returns the hash for key, materializing an empty one on
// first touch. Caller must hold the hash write lock.
func (s *State) hashFor(key ops.Key) map[ops.Key]ops.Value {
	hash, ok := s.hashes[key]
	if !ok {
		hash = make(map[ops.Key]ops.Value)
		s.hashes[key] = hash
		s.registry.Put([]byte(key), index.Hash)
	}
	return hash
}

// setFor returns the set for key, materializing an empty one on first
// touch. Caller must hold the set write lock.
func (s *State) setFor(key ops.Key) map[string]struct{} {
	set, ok := s.sets[key]
	if !ok {
		set = make(map[string]struct{})
		s.sets[key] = set
		s.registry.Put([]byte(key), index.Set)
	}
	return set
}

// touchList registers a list key on first materialization. Caller must
// hold the list write lock.
func (s *State) touchList(key ops.Key) {
	if _, ok := s.lists[key]; !ok {
		s.registry.Put([]byte(key), index.List)
	}
}
