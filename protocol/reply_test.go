package protocol

import (
	"testing"

	"github.com/fluffysquirrels/redis-oxide/interface/redis"
	"github.com/stretchr/testify/assert"
)

func TestBulkReply_ToBytes(t *testing.T) {
	assert.Equal(t, []byte("$5\r\nhello\r\n"), MakeBulkReply([]byte("hello")).ToBytes())
	assert.Equal(t, []byte("$0\r\n\r\n"), MakeBulkReply([]byte("")).ToBytes())
	// nil Arg 序列化为 null bulk
	assert.Equal(t, []byte("$-1\r\n"), MakeBulkReply(nil).ToBytes())
}

func TestMultiBulkReply_ToBytes(t *testing.T) {
	reply := MakeMultiBulkReply([][]byte{[]byte("SET"), []byte("key"), []byte("value")})
	assert.Equal(t, []byte("*3\r\n$3\r\nSET\r\n$3\r\nkey\r\n$5\r\nvalue\r\n"), reply.ToBytes())

	// nil 元素序列化为 $-1
	reply = MakeMultiBulkReply([][]byte{[]byte("a"), nil})
	assert.Equal(t, []byte("*2\r\n$1\r\na\r\n$-1\r\n"), reply.ToBytes())
}

func TestMultiRawReply_ToBytes(t *testing.T) {
	reply := MakeMultiRawReply([]redis.Reply{
		MakeBulkReply([]byte("v1")),
		MakeNullBulkReply(),
		MakeIntReply(3),
	})
	assert.Equal(t, []byte("*3\r\n$2\r\nv1\r\n$-1\r\n:3\r\n"), reply.ToBytes())
}

func TestStatusReply_ToBytes(t *testing.T) {
	assert.Equal(t, []byte("+OK\r\n"), MakeStatusReply("OK").ToBytes())
}

func TestIntReply_ToBytes(t *testing.T) {
	assert.Equal(t, []byte(":42\r\n"), MakeIntReply(42).ToBytes())
	assert.Equal(t, []byte(":-1\r\n"), MakeIntReply(-1).ToBytes())
}

func TestErrReply(t *testing.T) {
	reply := MakeErrReply("ERR unknown operation")
	assert.Equal(t, []byte("-ERR unknown operation\r\n"), reply.ToBytes())
	assert.Equal(t, "ERR unknown operation", reply.Error())
}

func TestConsts_ToBytes(t *testing.T) {
	assert.Equal(t, []byte("+PONG\r\n"), new(PongReply).ToBytes())
	assert.Equal(t, []byte("+OK\r\n"), MakeOkReply().ToBytes())
	assert.Equal(t, []byte("$-1\r\n"), MakeNullBulkReply().ToBytes())
	assert.Equal(t, []byte("*0\r\n"), MakeEmptyMultiBulkReply().ToBytes())
	assert.Equal(t, []byte("*-1\r\n"), MakeNullMultiBulkReply().ToBytes())
	assert.Equal(t, []byte(""), new(NoReply).ToBytes())
}

func TestIsErrorReply(t *testing.T) {
	assert.True(t, IsErrorReply(MakeErrReply("ERR boom")))
	assert.False(t, IsErrorReply(MakeOkReply()))
}
