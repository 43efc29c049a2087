package index

// DataType marks which container class a top-level key belongs to
type DataType = byte

const (
	String DataType = iota + 1
	Hash
	Set
	List
)

// Indexer is the registry of live top-level keys. Every container
// records its keys here so KEYS can walk all of them in order.
type Indexer interface {
	Put(key []byte, dataType DataType) bool // Put records a key and the container class it belongs to.
	Get(key []byte) (DataType, bool)        // Get reports the container class of a key.
	Delete(key []byte) bool                 // Delete drops a key from the registry.
	Iterator(reverse bool) Iterator         // Iterator walks the registry in key order.
	Size() int                              // Size is the number of registered keys.
	Close() error                           // Close releases the registry resources.
}

type Item struct {
	key      []byte
	dataType DataType
}

type IndexType = int8

const (
	Btree IndexType = iota + 1
	Art
)

// NewIndexer 根据配置返回对应的索引对象
func NewIndexer(indexType IndexType) Indexer {
	switch indexType {
	case Btree:
		return NewBTree()
	case Art:
		return NewART()
	default:
		panic("unsupported index type")
	}
}

type Iterator interface {
	Rewind()         // 重新回到迭代器的起点
	Seek(key []byte) // 根据传入的key从此开始遍历
	Next()           // 跳转下一个key
	Valid() bool     // 是否已经遍历完所有key
	Key() []byte     // 当前遍历位置的key数据
	Value() DataType // 当前遍历位置key所属的容器类型
	Close()          // 关闭迭代器，释放相应资源
}
