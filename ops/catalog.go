package ops

// Op is one validated, strongly-typed command ready for the storage
// engine. The set of implementations is closed: every variant lives in
// this file and belongs to exactly one family below.
type Op interface {
	isOp()
}

// MiscOp covers commands that do not target a single container
type MiscOp interface {
	Op
	isMiscOp()
}

// KeyOp covers the scalar string container
type KeyOp interface {
	Op
	isKeyOp()
}

// HashOp covers the hash container
type HashOp interface {
	Op
	isHashOp()
}

// SetOp covers the set container
type SetOp interface {
	Op
	isSetOp()
}

// ListOp covers the list container
type ListOp interface {
	Op
	isListOp()
}

// Misc

type Ping struct{}

type Keys struct{}

type Info struct{}

func (Ping) isOp() {}
func (Ping) isMiscOp() {}
func (Keys) isOp() {}
func (Keys) isMiscOp() {}
func (Info) isOp() {}
func (Info) isMiscOp() {}

// Key-Value

type Set struct {
	Key   Key
	Value Value
}

type Get struct {
	Key Key
}

type Del struct {
	Keys []Key
}

type Rename struct {
	Key    Key
	NewKey Key
}

type Exists struct {
	Keys []Key
}

func (Set) isOp() {}
func (Set) isKeyOp() {}
func (Get) isOp() {}
func (Get) isKeyOp() {}
func (Del) isOp() {}
func (Del) isKeyOp() {}
func (Rename) isOp() {}
func (Rename) isKeyOp() {}
func (Exists) isOp() {}
func (Exists) isKeyOp() {}

// Hashes

type HGet struct {
	Key   Key
	Field Key
}

type HSet struct {
	Key   Key
	Field Key
	Value Value
}

type HExists struct {
	Key   Key
	Field Key
}

type HGetAll struct {
	Key Key
}

type HMGet struct {
	Key    Key
	Fields []Key
}

type HKeys struct {
	Key Key
}

type HMSet struct {
	Key   Key
	Pairs []FieldValue
}

type HIncrBy struct {
	Key    Key
	Field  Key
	Amount Count
}

type HLen struct {
	Key Key
}

type HDel struct {
	Key    Key
	Fields []Key
}

type HVals struct {
	Key Key
}

type HStrLen struct {
	Key   Key
	Field Key
}

type HSetNX struct {
	Key   Key
	Field Key
	Value Value
}

func (HGet) isOp() {}
func (HGet) isHashOp() {}
func (HSet) isOp() {}
func (HSet) isHashOp() {}
func (HExists) isOp() {}
func (HExists) isHashOp() {}
func (HGetAll) isOp() {}
func (HGetAll) isHashOp() {}
func (HMGet) isOp() {}
func (HMGet) isHashOp() {}
func (HKeys) isOp() {}
func (HKeys) isHashOp() {}
func (HMSet) isOp() {}
func (HMSet) isHashOp() {}
func (HIncrBy) isOp() {}
func (HIncrBy) isHashOp() {}
func (HLen) isOp() {}
func (HLen) isHashOp() {}
func (HDel) isOp() {}
func (HDel) isHashOp() {}
func (HVals) isOp() {}
func (HVals) isHashOp() {}
func (HStrLen) isOp() {}
func (HStrLen) isHashOp() {}
func (HSetNX) isOp() {}
func (HSetNX) isHashOp() {}

// Sets

type SAdd struct {
	Key     Key
	Members []string
}

type SRem struct {
	Key     Key
	Members []string
}

type SMembers struct {
	Key Key
}

type SIsMember struct {
	Key    Key
	Member string
}

type SCard struct {
	Key Key
}

type SDiff struct {
	Keys []Key
}

type SUnion struct {
	Keys []Key
}

type SInter struct {
	Keys []Key
}

type SDiffStore struct {
	Dest Key
	Keys []Key
}

type SUnionStore struct {
	Dest Key
	Keys []Key
}

type SInterStore struct {
	Dest Key
	Keys []Key
}

// SPop carries an optional non-negative count, nil means "pop one"
type SPop struct {
	Key   Key
	Count *Count
}

type SMove struct {
	Src    Key
	Dest   Key
	Member string
}

// SRandMember carries an optional signed count, negative counts allow
// repeated members
type SRandMember struct {
	Key   Key
	Count *Count
}

func (SAdd) isOp() {}
func (SAdd) isSetOp() {}
func (SRem) isOp() {}
func (SRem) isSetOp() {}
func (SMembers) isOp() {}
func (SMembers) isSetOp() {}
func (SIsMember) isOp() {}
func (SIsMember) isSetOp() {}
func (SCard) isOp() {}
func (SCard) isSetOp() {}
func (SDiff) isOp() {}
func (SDiff) isSetOp() {}
func (SUnion) isOp() {}
func (SUnion) isSetOp() {}
func (SInter) isOp() {}
func (SInter) isSetOp() {}
func (SDiffStore) isOp() {}
func (SDiffStore) isSetOp() {}
func (SUnionStore) isOp() {}
func (SUnionStore) isSetOp() {}
func (SInterStore) isOp() {}
func (SInterStore) isSetOp() {}
func (SPop) isOp() {}
func (SPop) isSetOp() {}
func (SMove) isOp() {}
func (SMove) isSetOp() {}
func (SRandMember) isOp() {}
func (SRandMember) isSetOp() {}

// Lists

type LPush struct {
	Key    Key
	Values []Value
}

type LPushX struct {
	Key   Key
	Value Value
}

type RPush struct {
	Key    Key
	Values []Value
}

type RPushX struct {
	Key   Key
	Value Value
}

type LLen struct {
	Key Key
}

type LPop struct {
	Key Key
}

type RPop struct {
	Key Key
}

func (LPush) isOp() {}
func (LPush) isListOp() {}
func (LPushX) isOp() {}
func (LPushX) isListOp() {}
func (RPush) isOp() {}
func (RPush) isListOp() {}
func (RPushX) isOp() {}
func (RPushX) isListOp() {}
func (LLen) isOp() {}
func (LLen) isListOp() {}
func (LPop) isOp() {}
func (LPop) isListOp() {}
func (RPop) isOp() {}
func (RPop) isListOp() {}
