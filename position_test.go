package rbsparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNullPosition(t *testing.T) {
	assert.True(t, NullPosition().IsNull())
	assert.False(t, (Position{BytePos: 0}).IsNull())
}

func TestRangeContains(t *testing.T) {
	outer := Range{Start: Position{BytePos: 0}, End: Position{BytePos: 10}}
	inner := Range{Start: Position{BytePos: 2}, End: Position{BytePos: 5}}
	assert.True(t, outer.Contains(inner))
	assert.False(t, inner.Contains(outer))
	assert.False(t, outer.Contains(NullRange()))
}

func TestRangeString(t *testing.T) {
	sameLine := Range{Start: Position{Line: 0, Column: 0}, End: Position{Line: 0, Column: 4}}
	assert.Equal(t, "1:1-5", sameLine.String())

	multiLine := Range{Start: Position{Line: 0, Column: 0}, End: Position{Line: 1, Column: 2}}
	assert.Equal(t, "1:1-2:3", multiLine.String())

	assert.Equal(t, "(null)", NullRange().String())
}
