package server

import (
	"context"
	"errors"
	"io"
	"net"
	"strings"
	"sync"

	"github.com/fluffysquirrels/redis-oxide/connection"
	db "github.com/fluffysquirrels/redis-oxide/database"
	"github.com/fluffysquirrels/redis-oxide/interface/database"
	"github.com/fluffysquirrels/redis-oxide/parser"
	"github.com/fluffysquirrels/redis-oxide/protocol"
	"github.com/hdt3213/godis/lib/logger"
	"github.com/hdt3213/godis/lib/sync/atomic"
)

// Handler serves the redis protocol over incoming connections
type Handler struct {
	activeConn sync.Map // *connection.Connection -> placeholder
	db         database.DB
	closing    atomic.Boolean // refusing new client and new request
}

// MakeHandler creates a Handler over a fresh standalone database
func MakeHandler() *Handler {
	return &Handler{db: db.NewStandaloneServer()}
}

func (h *Handler) closeClient(client *connection.Connection) {
	_ = client.Close()
	h.db.AfterClientClose(client)
	h.activeConn.Delete(client)
}

// Handle parses the byte stream of one connection and executes each
// payload against the database
func (h *Handler) Handle(ctx context.Context, conn net.Conn) {
	if h.closing.Get() {
		// closing handler refuse new connection
		_ = conn.Close()
		return
	}
	client := connection.NewConn(conn)
	h.activeConn.Store(client, struct{}{}) // remember alive connection
	ch := parser.ParseStream(conn)
	for payload := range ch {
		if payload.Err != nil {
			// 读取到EOF或者连接关闭
			if payload.Err == io.EOF ||
				errors.Is(payload.Err, io.ErrUnexpectedEOF) ||
				strings.Contains(payload.Err.Error(), "use of closed network connection") {
				h.closeClient(client)
				logger.Info("connection closed: " + client.RemoteAddr() + " (" + client.Name() + ")")
				return
			}
			// 协议解析错误
			errReply := protocol.MakeErrReply(payload.Err.Error())
			_, err := client.Write(errReply.ToBytes())
			// 回写失败，说明已经无法继续通信
			if err != nil {
				h.closeClient(client)
				logger.Info("connection closed: " + client.RemoteAddr() + " (" + client.Name() + ")")
				return
			}
			continue
		}
		if payload.Data == nil {
			logger.Error("empty payload")
			continue
		}
		result := h.db.Exec(client, payload.Data)
		if result != nil {
			_, _ = client.Write(result.ToBytes())
		} else {
			_, _ = client.Write(unknownErrReplyBytes)
		}
	}
}

var unknownErrReplyBytes = []byte("-ERR unknown\r\n")

// Close stops the handler and every active connection
func (h *Handler) Close() error {
	logger.Info("handler shutting down...")
	h.closing.Set(true)
	h.activeConn.Range(func(key, value interface{}) bool {
		client := key.(*connection.Connection)
		_ = client.Close()
		return true
	})
	return h.db.Close()
}
