package redis

// Reply is the interface of redis serialization protocol message
type Reply interface {
	ToBytes() []byte
}

// Connection represents a connection with a redis client
type Connection interface {
	Write([]byte) (int, error)
	Close() error
	RemoteAddr() string
	Name() string
}
