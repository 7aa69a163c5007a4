package rbsparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationRequiredAndOptionalChildren(t *testing.T) {
	loc := NewLocation(Range{Start: Position{BytePos: 0}, End: Position{BytePos: 10}})
	loc.AllocChildren(2)

	nameID := ConstantID(1)
	superID := ConstantID(2)
	loc.AddRequiredChild(nameID, Range{Start: Position{BytePos: 0}, End: Position{BytePos: 3}})
	loc.AddOptionalChild(superID, NullRange())

	rg, ok := loc.Child(nameID)
	require.True(t, ok)
	assert.False(t, rg.IsNull())

	rg, ok = loc.Child(superID)
	require.True(t, ok)
	assert.True(t, rg.IsNull())

	_, ok = loc.Child(ConstantID(99))
	assert.False(t, ok)
}

func TestLocationRequiredChildRejectsNullRange(t *testing.T) {
	loc := NewLocation(NullRange())
	loc.AllocChildren(1)
	assert.Panics(t, func() {
		loc.AddRequiredChild(ConstantID(1), NullRange())
	})
}

func TestLocationDuplicateChildPanics(t *testing.T) {
	loc := NewLocation(NullRange())
	loc.AllocChildren(2)
	loc.AddOptionalChild(ConstantID(1), NullRange())
	assert.Panics(t, func() {
		loc.AddOptionalChild(ConstantID(1), NullRange())
	})
}

func TestLocationOverflowPanics(t *testing.T) {
	loc := NewLocation(NullRange())
	loc.AllocChildren(1)
	loc.AddOptionalChild(ConstantID(1), NullRange())
	assert.Panics(t, func() {
		loc.AddOptionalChild(ConstantID(2), NullRange())
	})
}
