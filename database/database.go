package database

import (
	"errors"

	"github.com/fluffysquirrels/redis-oxide/config"
	"github.com/fluffysquirrels/redis-oxide/engine"
	"github.com/fluffysquirrels/redis-oxide/index"
	"github.com/fluffysquirrels/redis-oxide/interface/redis"
	"github.com/fluffysquirrels/redis-oxide/ops"
	"github.com/fluffysquirrels/redis-oxide/protocol"
)

// Server is the standalone in-memory database, it owns the engine
// state shared by every connection
type Server struct {
	state *engine.State
}

// NewStandaloneServer creates a standalone redis server over a fresh
// engine state
func NewStandaloneServer() *Server {
	indexType := index.Btree
	if config.Properties.IndexType == "art" {
		indexType = index.Art
	}
	return &Server{
		state: engine.NewState(index.NewIndexer(indexType)),
	}
}

// Exec translates one parsed protocol value and executes it. A no-op
// payload is silently ignored; every other failure becomes an error
// reply.
func (s *Server) Exec(client redis.Connection, data redis.Reply) redis.Reply {
	op, err := ops.Translate(data)
	if err != nil {
		if errors.Is(err, ops.ErrNoop) {
			return &protocol.NoReply{}
		}
		return protocol.MakeErrReply("ERR " + err.Error())
	}
	if _, ok := op.(ops.Ping); ok {
		return &protocol.PongReply{}
	}
	return asReply(engine.Interact(op, s.state))
}

func (s *Server) AfterClientClose(c redis.Connection) {
}

func (s *Server) Close() error {
	return nil
}

// asReply maps a typed engine result onto its wire encoding
func asReply(rv engine.ReturnValue) redis.Reply {
	switch r := rv.(type) {
	case engine.OkRes:
		return protocol.MakeOkReply()
	case engine.NilRes:
		return protocol.MakeNullBulkReply()
	case engine.StringRes:
		return protocol.MakeBulkReply(r.Val)
	case engine.MultiStringRes:
		if len(r.Vals) == 0 {
			// key不存在时返回空数组而不是null array
			return protocol.MakeEmptyMultiBulkReply()
		}
		return protocol.MakeMultiBulkReply(r.Vals)
	case engine.ArrayRes:
		replies := make([]redis.Reply, len(r.Elems))
		for i, elem := range r.Elems {
			replies[i] = asReply(elem)
		}
		return protocol.MakeMultiRawReply(replies)
	case engine.IntRes:
		return protocol.MakeIntReply(r.Val)
	case engine.ErrRes:
		return protocol.MakeErrReply(r.Msg)
	default:
		panic("unhandled return value")
	}
}
