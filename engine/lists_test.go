package engine

import (
	"testing"

	"github.com/fluffysquirrels/redis-oxide/ops"
	"github.com/stretchr/testify/assert"
)

func drain(t *testing.T, s *State, key ops.Key) []string {
	t.Helper()
	var out []string
	for {
		res := ListInteract(ops.LPop{Key: key}, s)
		sr, ok := res.(StringRes)
		if !ok {
			return out
		}
		out = append(out, string(sr.Val))
	}
}

func TestList_LPushOrder(t *testing.T) {
	s := testState()

	// each value is pushed to the front in turn, the last one ends up
	// at the head
	res := ListInteract(ops.LPush{Key: "l", Values: []ops.Value{
		ops.Value("a"), ops.Value("b"), ops.Value("c"),
	}}, s)
	assert.Equal(t, IntRes{Val: 3}, res)
	assert.Equal(t, []string{"c", "b", "a"}, drain(t, s, "l"))
}

func TestList_RPushOrder(t *testing.T) {
	s := testState()

	res := ListInteract(ops.RPush{Key: "l", Values: []ops.Value{
		ops.Value("a"), ops.Value("b"), ops.Value("c"),
	}}, s)
	assert.Equal(t, IntRes{Val: 3}, res)
	assert.Equal(t, []string{"a", "b", "c"}, drain(t, s, "l"))
}

func TestList_PushX(t *testing.T) {
	s := testState()

	// the x variants never create the key
	assert.Equal(t, IntRes{Val: 0}, ListInteract(ops.LPushX{Key: "l", Value: ops.Value("a")}, s))
	assert.Equal(t, IntRes{Val: 0}, ListInteract(ops.RPushX{Key: "l", Value: ops.Value("a")}, s))
	assert.Equal(t, IntRes{Val: 0}, ListInteract(ops.LLen{Key: "l"}, s))

	ListInteract(ops.RPush{Key: "l", Values: []ops.Value{ops.Value("b")}}, s)
	assert.Equal(t, IntRes{Val: 2}, ListInteract(ops.LPushX{Key: "l", Value: ops.Value("a")}, s))
	assert.Equal(t, IntRes{Val: 3}, ListInteract(ops.RPushX{Key: "l", Value: ops.Value("c")}, s))
	assert.Equal(t, []string{"a", "b", "c"}, drain(t, s, "l"))
}

func TestList_Pops(t *testing.T) {
	s := testState()
	ListInteract(ops.RPush{Key: "l", Values: []ops.Value{
		ops.Value("a"), ops.Value("b"), ops.Value("c"),
	}}, s)

	assert.Equal(t, StringRes{Val: ops.Value("a")}, ListInteract(ops.LPop{Key: "l"}, s))
	assert.Equal(t, StringRes{Val: ops.Value("c")}, ListInteract(ops.RPop{Key: "l"}, s))
	assert.Equal(t, IntRes{Val: 1}, ListInteract(ops.LLen{Key: "l"}, s))

	assert.Equal(t, StringRes{Val: ops.Value("b")}, ListInteract(ops.RPop{Key: "l"}, s))
	// an emptied list reads like an absent one
	assert.Equal(t, NilRes{}, ListInteract(ops.LPop{Key: "l"}, s))
	assert.Equal(t, NilRes{}, ListInteract(ops.RPop{Key: "l"}, s))
}

func TestList_PopAbsent(t *testing.T) {
	s := testState()
	assert.Equal(t, NilRes{}, ListInteract(ops.LPop{Key: "absent"}, s))
	assert.Equal(t, NilRes{}, ListInteract(ops.RPop{Key: "absent"}, s))
	assert.Equal(t, IntRes{Val: 0}, ListInteract(ops.LLen{Key: "absent"}, s))
}
