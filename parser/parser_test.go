package parser

import (
	"bytes"
	"io"
	"testing"

	"github.com/fluffysquirrels/redis-oxide/protocol"
	"github.com/stretchr/testify/assert"
)

func TestParseOne_Array(t *testing.T) {
	data := []byte("*3\r\n$3\r\nSET\r\n$3\r\nkey\r\n$5\r\nvalue\r\n")
	result, err := ParseOne(data)
	assert.Nil(t, err)

	mbr, ok := result.(*protocol.MultiBulkReply)
	assert.True(t, ok)
	assert.Equal(t, [][]byte{[]byte("SET"), []byte("key"), []byte("value")}, mbr.Args)
}

func TestParseOne_Status(t *testing.T) {
	result, err := ParseOne([]byte("+OK\r\n"))
	assert.Nil(t, err)
	assert.Equal(t, protocol.MakeStatusReply("OK"), result)
}

func TestParseOne_Error(t *testing.T) {
	result, err := ParseOne([]byte("-ERR unknown command\r\n"))
	assert.Nil(t, err)
	assert.Equal(t, protocol.MakeErrReply("ERR unknown command"), result)
}

func TestParseOne_Int(t *testing.T) {
	result, err := ParseOne([]byte(":42\r\n"))
	assert.Nil(t, err)
	assert.Equal(t, protocol.MakeIntReply(42), result)
}

func TestParseOne_BulkString(t *testing.T) {
	result, err := ParseOne([]byte("$5\r\nhello\r\n"))
	assert.Nil(t, err)
	assert.Equal(t, protocol.MakeBulkReply([]byte("hello")), result)
}

func TestParseOne_NullBulkString(t *testing.T) {
	result, err := ParseOne([]byte("$-1\r\n"))
	assert.Nil(t, err)
	assert.Equal(t, protocol.MakeNullBulkReply(), result)
}

func TestParseOne_EmptyArray(t *testing.T) {
	result, err := ParseOne([]byte("*0\r\n"))
	assert.Nil(t, err)
	assert.Equal(t, protocol.MakeEmptyMultiBulkReply(), result)
}

func TestParseOne_NullArray(t *testing.T) {
	result, err := ParseOne([]byte("*-1\r\n"))
	assert.Nil(t, err)
	assert.Equal(t, protocol.MakeNullMultiBulkReply(), result)
}

// 数组内的 $-1 解析为 nil 元素
func TestParseOne_ArrayWithNilElement(t *testing.T) {
	data := []byte("*2\r\n$1\r\na\r\n$-1\r\n")
	result, err := ParseOne(data)
	assert.Nil(t, err)

	mbr, ok := result.(*protocol.MultiBulkReply)
	assert.True(t, ok)
	assert.Equal(t, [][]byte{[]byte("a"), nil}, mbr.Args)
}

// inline command: 不以类型前缀开头的行按空格切分
func TestParseOne_InlineCommand(t *testing.T) {
	result, err := ParseOne([]byte("PING\r\n"))
	assert.Nil(t, err)

	mbr, ok := result.(*protocol.MultiBulkReply)
	assert.True(t, ok)
	assert.Equal(t, [][]byte{[]byte("PING")}, mbr.Args)
}

func TestParseBytes_Pipeline(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("+OK\r\n")
	buf.WriteString(":7\r\n")
	buf.WriteString("*1\r\n$4\r\nPING\r\n")

	results, err := ParseBytes(buf.Bytes())
	assert.Nil(t, err)
	assert.Equal(t, 3, len(results))
	assert.Equal(t, []byte("+OK\r\n"), results[0].ToBytes())
	assert.Equal(t, []byte(":7\r\n"), results[1].ToBytes())
	assert.Equal(t, []byte("*1\r\n$4\r\nPING\r\n"), results[2].ToBytes())
}

func TestParseStream_ReportsEOF(t *testing.T) {
	ch := ParseStream(bytes.NewReader([]byte("+OK\r\n")))

	payload := <-ch
	assert.Nil(t, payload.Err)
	assert.Equal(t, []byte("+OK\r\n"), payload.Data.ToBytes())

	payload = <-ch
	assert.Equal(t, io.EOF, payload.Err)
}

func TestParseOne_IllegalHeader(t *testing.T) {
	_, err := ParseOne([]byte("$abc\r\n"))
	assert.NotNil(t, err)

	_, err = ParseOne([]byte(":notanumber\r\n"))
	assert.NotNil(t, err)
}

// roundtrip: 序列化后再解析应得到等价的结构
func TestParse_Roundtrip(t *testing.T) {
	replies := []struct {
		bytes []byte
	}{
		{protocol.MakeMultiBulkReply([][]byte{[]byte("HSET"), []byte("h"), []byte("f"), []byte("v")}).ToBytes()},
		{protocol.MakeStatusReply("PONG").ToBytes()},
		{protocol.MakeIntReply(-3).ToBytes()},
		{protocol.MakeBulkReply([]byte("")).ToBytes()},
	}
	for _, r := range replies {
		parsed, err := ParseOne(r.bytes)
		assert.Nil(t, err)
		assert.Equal(t, r.bytes, parsed.ToBytes())
	}
}
