package ops

import (
	"strings"

	"github.com/fluffysquirrels/redis-oxide/interface/redis"
	"github.com/fluffysquirrels/redis-oxide/protocol"
)

// Translate turns one parsed wire value into a typed Op. It performs
// command-name lookup, arity checks and argument coercion; it never
// touches any container.
func Translate(data redis.Reply) (Op, error) {
	switch v := data.(type) {
	case *protocol.StatusReply:
		return translateString(v.Status)
	case *protocol.BulkReply:
		if v.Arg == nil {
			return nil, ErrUnknownOp
		}
		return translateString(string(v.Arg))
	case *protocol.MultiBulkReply:
		parts := make([]redis.Reply, len(v.Args))
		for i, arg := range v.Args {
			parts[i] = protocol.MakeBulkReply(arg)
		}
		return translateArray(parts)
	case *protocol.MultiRawReply:
		return translateArray(v.Replies)
	case *protocol.EmptyMultiBulkReply:
		return nil, ErrNoop
	default:
		return nil, ErrUnknownOp
	}
}

// translateString recognizes the zero-argument commands
func translateString(start string) (Op, error) {
	switch strings.ToLower(start) {
	case "ping":
		return Ping{}, nil
	case "keys":
		return Keys{}, nil
	case "info":
		return Info{}, nil
	default:
		return nil, ErrUnknownOp
	}
}

func verifySize(v []redis.Reply, size int) error {
	if len(v) != size {
		return wrongNumberOfArgs(size)
	}
	return nil
}

func verifySizeLower(v []redis.Reply, minSize int) error {
	if len(v) < minSize {
		return notEnoughArgs(minSize)
	}
	return nil
}

// keyAndValue reads the classic "CMD key value" triple, extra elements
// are ignored
func keyAndValue(parts []redis.Reply) (Key, string, error) {
	if len(parts) < 3 {
		return "", "", wrongNumberOfArgs(3)
	}
	key, err := asString(parts[1])
	if err != nil {
		return "", "", err
	}
	val, err := asString(parts[2])
	if err != nil {
		return "", "", err
	}
	return key, val, nil
}

// keyAndTail reads "CMD key v1 v2 ..." style commands
func keyAndTail(parts []redis.Reply) (Key, []string, error) {
	if len(parts) < 3 {
		return "", nil, wrongNumberOfArgs(3)
	}
	key, err := asString(parts[1])
	if err != nil {
		return "", nil, err
	}
	vals, err := tailAsStrings(parts[2:])
	if err != nil {
		return "", nil, err
	}
	return key, vals, nil
}

func translateArray(parts []redis.Reply) (Op, error) {
	if len(parts) == 0 {
		return nil, ErrNoop
	}
	head, err := asString(parts[0])
	if err != nil {
		return nil, err
	}
	// 零参数命令即使带了多余参数也按照原样处理
	if op, err := translateString(head); err == nil {
		return op, nil
	}
	tail := parts[1:]
	switch strings.ToLower(head) {
	// Key-Value
	case "set":
		key, val, err := keyAndValue(parts)
		if err != nil {
			return nil, err
		}
		return Set{Key: key, Value: Value(val)}, nil
	case "get":
		if err := verifySize(tail, 1); err != nil {
			return nil, err
		}
		key, err := asString(tail[0])
		if err != nil {
			return nil, err
		}
		return Get{Key: key}, nil
	case "del":
		if err := verifySizeLower(tail, 1); err != nil {
			return nil, err
		}
		keys, err := tailAsStrings(tail)
		if err != nil {
			return nil, err
		}
		return Del{Keys: keys}, nil
	case "rename":
		if err := verifySize(tail, 2); err != nil {
			return nil, err
		}
		key, err := asString(tail[0])
		if err != nil {
			return nil, err
		}
		newKey, err := asString(tail[1])
		if err != nil {
			return nil, err
		}
		return Rename{Key: key, NewKey: newKey}, nil
	case "exists":
		if err := verifySizeLower(tail, 1); err != nil {
			return nil, err
		}
		keys, err := tailAsStrings(tail)
		if err != nil {
			return nil, err
		}
		return Exists{Keys: keys}, nil
	// Hashes
	case "hget":
		if err := verifySize(tail, 2); err != nil {
			return nil, err
		}
		return hashKeyField(tail, func(key, field Key) Op {
			return HGet{Key: key, Field: field}
		})
	case "hset":
		if err := verifySize(tail, 3); err != nil {
			return nil, err
		}
		key, field, value, err := hashKeyFieldValue(tail)
		if err != nil {
			return nil, err
		}
		return HSet{Key: key, Field: field, Value: value}, nil
	case "hexists":
		if err := verifySize(tail, 2); err != nil {
			return nil, err
		}
		return hashKeyField(tail, func(key, field Key) Op {
			return HExists{Key: key, Field: field}
		})
	case "hgetall":
		if err := verifySize(tail, 1); err != nil {
			return nil, err
		}
		key, err := asString(tail[0])
		if err != nil {
			return nil, err
		}
		return HGetAll{Key: key}, nil
	case "hmget":
		key, fields, err := keyAndTail(parts)
		if err != nil {
			return nil, err
		}
		return HMGet{Key: key, Fields: fields}, nil
	case "hkeys":
		if err := verifySize(tail, 1); err != nil {
			return nil, err
		}
		key, err := asString(tail[0])
		if err != nil {
			return nil, err
		}
		return HKeys{Key: key}, nil
	case "hmset":
		key, kvs, err := keyAndTail(parts)
		if err != nil {
			return nil, err
		}
		if len(kvs)%2 != 0 {
			return nil, ErrSyntax
		}
		pairs := make([]FieldValue, 0, len(kvs)/2)
		for i := 0; i < len(kvs); i += 2 {
			pairs = append(pairs, FieldValue{Field: kvs[i], Value: Value(kvs[i+1])})
		}
		return HMSet{Key: key, Pairs: pairs}, nil
	case "hincrby":
		if err := verifySize(tail, 3); err != nil {
			return nil, err
		}
		key, err := asString(tail[0])
		if err != nil {
			return nil, err
		}
		field, err := asString(tail[1])
		if err != nil {
			return nil, err
		}
		amount, err := asInt(tail[2])
		if err != nil {
			return nil, err
		}
		return HIncrBy{Key: key, Field: field, Amount: amount}, nil
	case "hlen":
		if err := verifySize(tail, 1); err != nil {
			return nil, err
		}
		key, err := asString(tail[0])
		if err != nil {
			return nil, err
		}
		return HLen{Key: key}, nil
	case "hdel":
		key, fields, err := keyAndTail(parts)
		if err != nil {
			return nil, err
		}
		return HDel{Key: key, Fields: fields}, nil
	case "hvals":
		if err := verifySize(tail, 1); err != nil {
			return nil, err
		}
		key, err := asString(tail[0])
		if err != nil {
			return nil, err
		}
		return HVals{Key: key}, nil
	case "hstrlen":
		if err := verifySize(tail, 2); err != nil {
			return nil, err
		}
		return hashKeyField(tail, func(key, field Key) Op {
			return HStrLen{Key: key, Field: field}
		})
	case "hsetnx":
		if err := verifySize(tail, 3); err != nil {
			return nil, err
		}
		key, field, value, err := hashKeyFieldValue(tail)
		if err != nil {
			return nil, err
		}
		return HSetNX{Key: key, Field: field, Value: value}, nil
	// Sets
	case "sadd":
		key, vals, err := keyAndTail(parts)
		if err != nil {
			return nil, err
		}
		return SAdd{Key: key, Members: vals}, nil
	case "srem":
		key, vals, err := keyAndTail(parts)
		if err != nil {
			return nil, err
		}
		return SRem{Key: key, Members: vals}, nil
	case "smembers":
		if err := verifySize(tail, 1); err != nil {
			return nil, err
		}
		key, err := asString(tail[0])
		if err != nil {
			return nil, err
		}
		return SMembers{Key: key}, nil
	case "sismember":
		key, member, err := keyAndValue(parts)
		if err != nil {
			return nil, err
		}
		return SIsMember{Key: key, Member: member}, nil
	case "scard":
		if err := verifySize(tail, 1); err != nil {
			return nil, err
		}
		key, err := asString(tail[0])
		if err != nil {
			return nil, err
		}
		return SCard{Key: key}, nil
	case "sdiff":
		keys, err := setAlgebraKeys(tail)
		if err != nil {
			return nil, err
		}
		return SDiff{Keys: keys}, nil
	case "sunion":
		keys, err := setAlgebraKeys(tail)
		if err != nil {
			return nil, err
		}
		return SUnion{Keys: keys}, nil
	case "sinter":
		keys, err := setAlgebraKeys(tail)
		if err != nil {
			return nil, err
		}
		return SInter{Keys: keys}, nil
	case "sdiffstore":
		dest, keys, err := keyAndTail(parts)
		if err != nil {
			return nil, err
		}
		return SDiffStore{Dest: dest, Keys: keys}, nil
	case "sunionstore":
		dest, keys, err := keyAndTail(parts)
		if err != nil {
			return nil, err
		}
		return SUnionStore{Dest: dest, Keys: keys}, nil
	case "sinterstore":
		dest, keys, err := keyAndTail(parts)
		if err != nil {
			return nil, err
		}
		return SInterStore{Dest: dest, Keys: keys}, nil
	case "spop":
		if err := verifySizeLower(tail, 1); err != nil {
			return nil, err
		}
		key, err := asString(tail[0])
		if err != nil {
			return nil, err
		}
		var count *Count
		if len(tail) > 1 {
			c, err := asCount(tail[1])
			if err != nil {
				return nil, err
			}
			count = &c
		}
		return SPop{Key: key, Count: count}, nil
	case "smove":
		if err := verifySize(tail, 3); err != nil {
			return nil, err
		}
		src, err := asString(tail[0])
		if err != nil {
			return nil, err
		}
		dest, err := asString(tail[1])
		if err != nil {
			return nil, err
		}
		member, err := asString(tail[2])
		if err != nil {
			return nil, err
		}
		return SMove{Src: src, Dest: dest, Member: member}, nil
	case "srandmember":
		if err := verifySizeLower(tail, 1); err != nil {
			return nil, err
		}
		key, err := asString(tail[0])
		if err != nil {
			return nil, err
		}
		var count *Count
		if len(tail) > 1 {
			c, err := asInt(tail[1])
			if err != nil {
				return nil, err
			}
			count = &c
		}
		return SRandMember{Key: key, Count: count}, nil
	// Lists
	case "lpush":
		key, vals, err := listKeyAndValues(parts)
		if err != nil {
			return nil, err
		}
		return LPush{Key: key, Values: vals}, nil
	case "lpushx":
		if err := verifySize(tail, 2); err != nil {
			return nil, err
		}
		key, err := asString(tail[0])
		if err != nil {
			return nil, err
		}
		val, err := asString(tail[1])
		if err != nil {
			return nil, err
		}
		return LPushX{Key: key, Value: Value(val)}, nil
	case "rpush":
		key, vals, err := listKeyAndValues(parts)
		if err != nil {
			return nil, err
		}
		return RPush{Key: key, Values: vals}, nil
	case "rpushx":
		if err := verifySize(tail, 2); err != nil {
			return nil, err
		}
		key, err := asString(tail[0])
		if err != nil {
			return nil, err
		}
		val, err := asString(tail[1])
		if err != nil {
			return nil, err
		}
		return RPushX{Key: key, Value: Value(val)}, nil
	case "llen":
		if err := verifySize(tail, 1); err != nil {
			return nil, err
		}
		key, err := asString(tail[0])
		if err != nil {
			return nil, err
		}
		return LLen{Key: key}, nil
	case "lpop":
		if err := verifySize(tail, 1); err != nil {
			return nil, err
		}
		key, err := asString(tail[0])
		if err != nil {
			return nil, err
		}
		return LPop{Key: key}, nil
	case "rpop":
		if err := verifySize(tail, 1); err != nil {
			return nil, err
		}
		key, err := asString(tail[0])
		if err != nil {
			return nil, err
		}
		return RPop{Key: key}, nil
	case "linsert":
		// TODO: implement real LINSERT BEFORE|AFTER semantics. The
		// command has always been wired to pop-front and clients may
		// depend on that, so the alias stays until the change is
		// coordinated.
		if err := verifySize(tail, 1); err != nil {
			return nil, err
		}
		key, err := asString(tail[0])
		if err != nil {
			return nil, err
		}
		return LPop{Key: key}, nil
	default:
		return nil, ErrUnknownOp
	}
}

func hashKeyField(tail []redis.Reply, build func(key, field Key) Op) (Op, error) {
	key, err := asString(tail[0])
	if err != nil {
		return nil, err
	}
	field, err := asString(tail[1])
	if err != nil {
		return nil, err
	}
	return build(key, field), nil
}

func hashKeyFieldValue(tail []redis.Reply) (Key, Key, Value, error) {
	key, err := asString(tail[0])
	if err != nil {
		return "", "", nil, err
	}
	field, err := asString(tail[1])
	if err != nil {
		return "", "", nil, err
	}
	val, err := asString(tail[2])
	if err != nil {
		return "", "", nil, err
	}
	return key, field, Value(val), nil
}

func setAlgebraKeys(tail []redis.Reply) ([]Key, error) {
	if err := verifySizeLower(tail, 2); err != nil {
		return nil, err
	}
	return tailAsStrings(tail)
}

func listKeyAndValues(parts []redis.Reply) (Key, []Value, error) {
	if len(parts) < 3 {
		return "", nil, wrongNumberOfArgs(3)
	}
	key, err := asString(parts[1])
	if err != nil {
		return "", nil, err
	}
	vals, err := tailAsValues(parts[2:])
	if err != nil {
		return "", nil, err
	}
	return key, vals, nil
}
