package rbsparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaAllocWithinPage(t *testing.T) {
	a := NewArena()
	b1 := a.Alloc(16, 1)
	b2 := a.Alloc(16, 1)
	require.Len(t, b1, 16)
	require.Len(t, b2, 16)

	b1[0] = 'x'
	assert.Equal(t, byte(0), b2[0], "distinct allocations must not alias")
}

func TestArenaLargeAllocationGetsOwnPage(t *testing.T) {
	a := NewArena()
	small := a.Alloc(8, 1)
	big := a.Alloc(defaultArenaPageSize*2, 1)
	require.Len(t, big, defaultArenaPageSize*2)

	small[0] = 1
	big[0] = 2
	assert.Equal(t, byte(1), small[0])
}

func TestArenaCalloc(t *testing.T) {
	a := NewArena()
	buf := a.Calloc(4, 4, 1)
	for _, b := range buf {
		assert.Equal(t, byte(0), b)
	}
	assert.Len(t, buf, 16)
}

func TestArenaRealloc(t *testing.T) {
	a := NewArena()
	orig := a.Alloc(4, 1)
	copy(orig, []byte("abcd"))
	grown := a.Realloc(orig, 4, 8, 1)
	assert.Equal(t, []byte("abcd"), grown[:4])
	assert.Len(t, grown, 8)
}
