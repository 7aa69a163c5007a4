package rbsparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineToken(startLine, endLine int) Token {
	return Token{
		Type:  LINECOMMENT,
		Range: Range{Start: Position{Line: startLine}, End: Position{Line: endLine}},
		Text:  "# comment",
	}
}

func TestCommentTableMergesConsecutiveLines(t *testing.T) {
	table := NewCommentTable()
	table.Push(lineToken(0, 0))
	table.Push(lineToken(1, 1))
	table.Push(lineToken(2, 2))

	c, ok := table.LookupBefore(3)
	require.True(t, ok)
	assert.Equal(t, 0, c.Start.Line)
	assert.Equal(t, 2, c.End.Line)
	assert.Len(t, c.Lines, 3)
}

func TestCommentTableDoesNotMergeAcrossGap(t *testing.T) {
	table := NewCommentTable()
	table.Push(lineToken(0, 0))
	table.Push(lineToken(5, 5))

	first, ok := table.LookupBefore(1)
	require.True(t, ok, "the line-0 comment still ends on line 0; the gap only keeps line 5 out of it")
	assert.Equal(t, 0, first.End.Line)
	assert.Len(t, first.Lines, 1)

	c, ok := table.LookupBefore(6)
	require.True(t, ok)
	assert.Equal(t, 5, c.Start.Line)
}

func TestCommentTableLookupBeforeMiss(t *testing.T) {
	table := NewCommentTable()
	_, ok := table.LookupBefore(10)
	assert.False(t, ok)
}
