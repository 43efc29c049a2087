package connection

import (
	"net"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hdt3213/godis/lib/sync/wait"
)

// Connection represents a connection with a redis-cli
type Connection struct {
	conn net.Conn
	// 等待数据发送完成，用于正常关机
	sendingData wait.Wait
	// lock while server sending response
	mu sync.Mutex
	// id identifies this connection in logs
	id string
}

func NewConn(conn net.Conn) *Connection {
	return &Connection{
		conn: conn,
		id:   uuid.NewString(),
	}
}

// Write sends response to client over tcp connection
func (c *Connection) Write(bytes []byte) (int, error) {
	if len(bytes) == 0 {
		return 0, nil
	}
	c.mu.Lock()
	c.sendingData.Add(1)
	defer func() {
		c.sendingData.Done()
		c.mu.Unlock()
	}()
	return c.conn.Write(bytes)
}

// Close closes the connection
func (c *Connection) Close() error {
	// 超时等待数据发送完成
	c.sendingData.WaitWithTimeout(10 * time.Second)
	_ = c.conn.Close()
	return nil
}

// RemoteAddr returns the remote network address
func (c *Connection) RemoteAddr() string {
	return c.conn.RemoteAddr().String()
}

// Name returns the connection id
func (c *Connection) Name() string {
	return c.id
}
