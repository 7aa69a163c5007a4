package rbsparse

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConstantPoolStability covers the "constant-pool stability"
// universal property from §8: inserting a string twice returns the
// same id, and id_to_constant round-trips the original bytes.
func TestConstantPoolStability(t *testing.T) {
	pool := NewConstantPool(4, NewArena())

	id := pool.InternString("hello")
	assert.Equal(t, id, pool.Find([]byte("hello")))
	assert.Equal(t, []byte("hello"), pool.IDToConstant(id).Bytes)

	again := pool.InternString("hello")
	assert.Equal(t, id, again, "interning the same bytes twice must return the same id")
}

func TestConstantPoolFindMiss(t *testing.T) {
	pool := NewConstantPool(4, NewArena())
	assert.Equal(t, ConstantIDUnset, pool.Find([]byte("missing")))
}

func TestConstantPoolResizesAndKeepsIdsStable(t *testing.T) {
	pool := NewConstantPool(2, NewArena())
	var ids []ConstantID
	for i := 0; i < 50; i++ {
		ids = append(ids, pool.InternString(fmt.Sprintf("name-%d", i)))
	}
	for i, id := range ids {
		name := fmt.Sprintf("name-%d", i)
		assert.Equal(t, id, pool.Find([]byte(name)), "id for %q changed across resize", name)
		assert.Equal(t, []byte(name), pool.IDToConstant(id).Bytes)
	}
}

func TestConstantPoolInvalidIDPanics(t *testing.T) {
	pool := NewConstantPool(4, NewArena())
	require.Panics(t, func() { pool.IDToConstant(ConstantIDUnset) })
	require.Panics(t, func() { pool.IDToConstant(999) })
}

func TestConstantPoolSharedAdoptsOverOwned(t *testing.T) {
	pool := NewConstantPool(4, NewArena())
	owned := []byte("shared-me")
	id1 := pool.InsertOwned(append([]byte(nil), owned...))
	shared := []byte("shared-me")
	id2 := pool.InsertShared(shared)
	assert.Equal(t, id1, id2)
}
