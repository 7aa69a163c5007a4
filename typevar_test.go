package rbsparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeVarTableRegularFrameVisibility(t *testing.T) {
	tv := NewTypeVarTable()
	tv.Push(false)
	tv.Insert(ConstantID(1))
	assert.True(t, tv.Member(ConstantID(1)))

	tv.Push(false)
	assert.True(t, tv.Member(ConstantID(1)), "outer regular frame stays visible")
	tv.Pop(false)

	tv.Pop(false)
	assert.False(t, tv.Member(ConstantID(1)))
}

func TestTypeVarTableResetFrameBlocksUpwardLookup(t *testing.T) {
	tv := NewTypeVarTable()
	tv.Push(false)
	tv.Insert(ConstantID(1))

	tv.Push(true)
	assert.False(t, tv.Member(ConstantID(1)), "reset frame hides outer type variables")
	tv.Insert(ConstantID(2))
	assert.True(t, tv.Member(ConstantID(2)))
	tv.Pop(true)

	assert.True(t, tv.Member(ConstantID(1)))
	assert.False(t, tv.Member(ConstantID(2)))
}

func TestTypeVarTableInsertIntoResetFramePanics(t *testing.T) {
	tv := NewTypeVarTable()
	tv.frames = append(tv.frames, &typeVarFrame{reset: true})
	require.Panics(t, func() { tv.Insert(ConstantID(1)) })
}

func TestTypeVarTableInsertOnEmptyStackPanics(t *testing.T) {
	tv := NewTypeVarTable()
	assert.Panics(t, func() { tv.Insert(ConstantID(1)) })
}
