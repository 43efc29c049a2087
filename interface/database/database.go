package database

import (
	"github.com/fluffysquirrels/redis-oxide/interface/redis"
)

// DB is the interface for redis style storage engine
// Exec receives one parsed protocol value and returns the reply for it
type DB interface {
	Exec(client redis.Connection, data redis.Reply) redis.Reply
	AfterClientClose(c redis.Connection)
	Close() error
}
