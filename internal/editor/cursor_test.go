package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type lineLens []int

func (l lineLens) LineCount() int       { return len(l) }
func (l lineLens) LineLength(i int) int { return l[i] }

func TestMoveLeftWrapsToPreviousLineEnd(t *testing.T) {
	doc := lineLens{3, 5}
	c := Cursor{Line: 1, Col: 0}.MoveLeft(doc)
	assert.Equal(t, Cursor{Line: 0, Col: 3}, c)
}

func TestMoveRightWrapsToNextLineStart(t *testing.T) {
	doc := lineLens{3, 5}
	c := Cursor{Line: 0, Col: 3}.MoveRight(doc)
	assert.Equal(t, Cursor{Line: 1, Col: 0}, c)
}

func TestMovesIdempotentAtDocumentEdges(t *testing.T) {
	doc := lineLens{2, 4}
	start := Cursor{}
	for range 3 {
		start = start.MoveLeft(doc)
		assert.Equal(t, Cursor{}, start)
	}
	end := Cursor{Line: 1, Col: 4}
	for range 3 {
		end = end.MoveRight(doc)
		assert.Equal(t, Cursor{Line: 1, Col: 4}, end)
	}
	assert.Equal(t, Cursor{Line: 0, Col: 1}, Cursor{Line: 0, Col: 1}.MoveUp(doc))
	assert.Equal(t, Cursor{Line: 1, Col: 1}, Cursor{Line: 1, Col: 1}.MoveDown(doc))
}

func TestVerticalMovesClampColumn(t *testing.T) {
	doc := lineLens{10, 2, 7}
	c := Cursor{Line: 0, Col: 8}
	c = c.MoveDown(doc)
	assert.Equal(t, Cursor{Line: 1, Col: 2}, c)
	c = c.MoveDown(doc)
	assert.Equal(t, Cursor{Line: 2, Col: 2}, c)
	c = c.MoveUp(doc).MoveUp(doc)
	assert.Equal(t, Cursor{Line: 0, Col: 2}, c)
}

func TestClampAndLineHelpers(t *testing.T) {
	doc := lineLens{4, 1}
	assert.Equal(t, Cursor{Line: 1, Col: 1}, Cursor{Line: 9, Col: 9}.Clamp(doc))
	assert.Equal(t, Cursor{}, Cursor{Line: -1, Col: -3}.Clamp(doc))
	assert.Equal(t, Cursor{Line: 0, Col: 4}, LineEnd(doc, 0))
	assert.Equal(t, Cursor{Line: 1}, LineStart(1))
}
