package client

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/fluffysquirrels/redis-oxide/server"
	"github.com/fluffysquirrels/redis-oxide/tcp"
	"github.com/stretchr/testify/assert"
)

// startServer runs a full server on an ephemeral port and returns its
// address
func startServer(t *testing.T) string {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	assert.Nil(t, err)

	closeChan := make(chan struct{})
	go tcp.ListenAndServe(listener, server.MakeHandler(), closeChan)
	t.Cleanup(func() {
		close(closeChan)
	})
	return listener.Addr().String()
}

func TestClient_SendReceive(t *testing.T) {
	addr := startServer(t)

	client, err := MakeClient(addr)
	assert.Nil(t, err)
	client.Start()
	defer client.Close()

	result := client.Send([][]byte{[]byte("PING")})
	assert.Equal(t, []byte("+PONG\r\n"), result.ToBytes())

	result = client.Send([][]byte{[]byte("SET"), []byte("k"), []byte("v")})
	assert.Equal(t, []byte("+OK\r\n"), result.ToBytes())

	result = client.Send([][]byte{[]byte("GET"), []byte("k")})
	assert.Equal(t, []byte("$1\r\nv\r\n"), result.ToBytes())

	result = client.Send([][]byte{[]byte("GET"), []byte("absent")})
	assert.Equal(t, []byte("$-1\r\n"), result.ToBytes())
}

func TestClient_Pipeline(t *testing.T) {
	addr := startServer(t)

	client, err := MakeClient(addr)
	assert.Nil(t, err)
	client.Start()
	defer client.Close()

	// 并发发送，连接层会按顺序逐个响应
	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		go func() {
			result := client.Send([][]byte{[]byte("HINCRBY"), []byte("h"), []byte("n"), []byte("1")})
			assert.Equal(t, []byte("+OK\r\n"), result.ToBytes())
			done <- struct{}{}
		}()
	}
	for i := 0; i < 10; i++ {
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("pipelined request did not finish")
		}
	}

	result := client.Send([][]byte{[]byte("HGET"), []byte("h"), []byte("n")})
	assert.Equal(t, []byte("$2\r\n10\r\n"), result.ToBytes())
}

func TestClient_SendAfterClose(t *testing.T) {
	addr := startServer(t)

	client, err := MakeClient(addr)
	assert.Nil(t, err)
	client.Start()
	client.Close()

	result := client.Send([][]byte{[]byte("PING")})
	assert.Equal(t, []byte("-client closed\r\n"), result.ToBytes())
}

func TestPool_BorrowReturn(t *testing.T) {
	addr := startServer(t)
	ctx := context.Background()

	p := NewPool(addr)
	defer p.Close(ctx)

	c, err := p.Borrow(ctx)
	assert.Nil(t, err)
	result := c.Send([][]byte{[]byte("SET"), []byte("pooled"), []byte("1")})
	assert.Equal(t, []byte("+OK\r\n"), result.ToBytes())
	assert.Nil(t, p.Return(ctx, c))

	// the returned client is reused by the next borrow
	c2, err := p.Borrow(ctx)
	assert.Nil(t, err)
	result = c2.Send([][]byte{[]byte("GET"), []byte("pooled")})
	assert.Equal(t, []byte("$1\r\n1\r\n"), result.ToBytes())
	assert.Nil(t, p.Return(ctx, c2))
}
