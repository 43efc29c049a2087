package database

import (
	"testing"

	"github.com/fluffysquirrels/redis-oxide/protocol"
	"github.com/stretchr/testify/assert"
)

func cmd(args ...string) *protocol.MultiBulkReply {
	raw := make([][]byte, len(args))
	for i, a := range args {
		raw[i] = []byte(a)
	}
	return protocol.MakeMultiBulkReply(raw)
}

func exec(t *testing.T, s *Server, args ...string) []byte {
	t.Helper()
	return s.Exec(nil, cmd(args...)).ToBytes()
}

func TestExec_Ping(t *testing.T) {
	s := NewStandaloneServer()
	assert.Equal(t, []byte("+PONG\r\n"), exec(t, s, "ping"))
}

func TestExec_SetGet(t *testing.T) {
	s := NewStandaloneServer()

	assert.Equal(t, []byte("+OK\r\n"), exec(t, s, "set", "k", "v"))
	assert.Equal(t, []byte("$1\r\nv\r\n"), exec(t, s, "get", "k"))
	assert.Equal(t, []byte("$-1\r\n"), exec(t, s, "get", "absent"))
}

func TestExec_UnknownCommand(t *testing.T) {
	s := NewStandaloneServer()
	assert.Equal(t, []byte("-ERR unknown operation\r\n"), exec(t, s, "flurb"))
}

func TestExec_ArityError(t *testing.T) {
	s := NewStandaloneServer()
	assert.Equal(t, []byte("-ERR wrong number of arguments(1)\r\n"), exec(t, s, "get"))
}

// 空数组静默忽略，不返回任何字节
func TestExec_EmptyPayloadIsIgnored(t *testing.T) {
	s := NewStandaloneServer()
	reply := s.Exec(nil, protocol.MakeEmptyMultiBulkReply())
	assert.Equal(t, []byte(""), reply.ToBytes())
}

func TestExec_BareStatusCommand(t *testing.T) {
	s := NewStandaloneServer()
	reply := s.Exec(nil, protocol.MakeStatusReply("ping"))
	assert.Equal(t, []byte("+PONG\r\n"), reply.ToBytes())
}

func TestExec_HashRoundtrip(t *testing.T) {
	s := NewStandaloneServer()

	assert.Equal(t, []byte("+OK\r\n"), exec(t, s, "hset", "h", "f1", "v1"))
	assert.Equal(t, []byte("$2\r\nv1\r\n"), exec(t, s, "hget", "h", "f1"))
	assert.Equal(t, []byte(":1\r\n"), exec(t, s, "hlen", "h"))

	// HMGET 保持请求顺序，缺失的field编码为 $-1
	assert.Equal(t, []byte("*2\r\n$2\r\nv1\r\n$-1\r\n"), exec(t, s, "hmget", "h", "f1", "f2"))
}

// 执行期错误原样返回，不带 ERR 前缀
func TestExec_ExecutionError(t *testing.T) {
	s := NewStandaloneServer()
	exec(t, s, "hset", "h", "f", "oops")
	assert.Equal(t, []byte("-Bad Type!\r\n"), exec(t, s, "hincrby", "h", "f", "1"))
}

func TestExec_RenameMissing(t *testing.T) {
	s := NewStandaloneServer()
	assert.Equal(t, []byte("-no such key\r\n"), exec(t, s, "rename", "a", "b"))
}

func TestExec_SetCommands(t *testing.T) {
	s := NewStandaloneServer()

	assert.Equal(t, []byte(":2\r\n"), exec(t, s, "sadd", "s", "a", "b"))
	assert.Equal(t, []byte(":1\r\n"), exec(t, s, "sismember", "s", "a"))
	assert.Equal(t, []byte(":2\r\n"), exec(t, s, "scard", "s"))
	assert.Equal(t, []byte("*0\r\n"), exec(t, s, "smembers", "absent"))
}

func TestExec_ListCommands(t *testing.T) {
	s := NewStandaloneServer()

	assert.Equal(t, []byte(":2\r\n"), exec(t, s, "rpush", "l", "a", "b"))
	assert.Equal(t, []byte("$1\r\na\r\n"), exec(t, s, "lpop", "l"))
	assert.Equal(t, []byte("$1\r\nb\r\n"), exec(t, s, "rpop", "l"))
	assert.Equal(t, []byte("$-1\r\n"), exec(t, s, "lpop", "l"))
}

func TestExec_Keys(t *testing.T) {
	s := NewStandaloneServer()
	exec(t, s, "set", "b", "1")
	exec(t, s, "sadd", "a", "m")

	assert.Equal(t, []byte("*2\r\n$1\r\na\r\n$1\r\nb\r\n"), exec(t, s, "keys"))
}
