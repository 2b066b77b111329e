package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type textSource []string

func (s textSource) LineCount() int         { return len(s) }
func (s textSource) LineLength(i int) int   { return len([]rune(s[i])) }
func (s textSource) CharAt(i, col int) rune { return []rune(s[i])[col] }

// screen draws a frame into a grid of strings so tests can compare rows.
func screen(r *Renderer, vp Viewport, top int) []string {
	grid := make([][]rune, vp.Rows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(".", vp.Cols))
	}
	for c := range r.Frame(top) {
		grid[c.Row][c.Col] = c.Ch
	}
	out := make([]string, len(grid))
	for i, row := range grid {
		out[i] = string(row)
	}
	return out
}

func TestRowsWrapLongLines(t *testing.T) {
	src := textSource{"abcdefgh", "", "xy"}
	r := NewRenderer(src, Viewport{Rows: 10, Cols: 6}, Options{LineNumbers: true})
	require.Equal(t, 2, r.GutterWidth())
	require.Equal(t, 4, r.TextWidth())

	var rows []Row
	for row := range r.Rows(0) {
		rows = append(rows, row)
	}
	assert.Equal(t, []Row{
		{Screen: 0, Line: 0, Start: 0, End: 4},
		{Screen: 1, Line: 0, Start: 4, End: 8, Continuation: true},
		{Screen: 2, Line: 1, Start: 0, End: 0},
		{Screen: 3, Line: 2, Start: 0, End: 2},
	}, rows)
}

func TestFrameGutterAndText(t *testing.T) {
	src := textSource{"abcdefgh", "", "xy"}
	vp := Viewport{Rows: 5, Cols: 6}
	r := NewRenderer(src, vp, Options{LineNumbers: true})
	assert.Equal(t, []string{
		"0 abcd",
		"  efgh",
		"1 ....",
		"2 xy..",
		"......",
	}, screen(r, vp, 0))

	for c := range r.Frame(0) {
		assert.Equal(t, c.Col < 2, c.Gutter, "cell %+v", c)
	}
}

func TestFrameWrapIndicator(t *testing.T) {
	src := textSource{"abcdefgh"}
	vp := Viewport{Rows: 2, Cols: 6}
	r := NewRenderer(src, vp, Options{LineNumbers: true, WrapIndicator: '~'})
	assert.Equal(t, []string{"0 abcd", "~ efgh"}, screen(r, vp, 0))
}

func TestFrameWithoutLineNumbers(t *testing.T) {
	src := textSource{"abcdefg"}
	vp := Viewport{Rows: 3, Cols: 3}
	r := NewRenderer(src, vp, Options{})
	assert.Equal(t, 0, r.GutterWidth())
	assert.Equal(t, []string{"abc", "def", "g.."}, screen(r, vp, 0))
}

func TestFrameRecomputesGutterForLineCount(t *testing.T) {
	src := make(textSource, 11)
	vp := Viewport{Rows: 11, Cols: 8}
	r := NewRenderer(src, vp, Options{LineNumbers: true})
	assert.Equal(t, 3, r.GutterWidth())
	rows := screen(r, vp, 0)
	assert.Equal(t, " 0 .....", rows[0])
	assert.Equal(t, "10 .....", rows[10])
}

func TestFrameStopsAtViewport(t *testing.T) {
	src := textSource{"a", "b", "c", "d"}
	vp := Viewport{Rows: 2, Cols: 4}
	r := NewRenderer(src, vp, Options{LineNumbers: true})
	assert.Equal(t, []string{"2 c.", "3 d."}, screen(r, vp, 2))
}

func TestCursorScreenPosition(t *testing.T) {
	src := textSource{"abcdefgh", "", "xy"}
	r := NewRenderer(src, Viewport{Rows: 10, Cols: 6}, Options{LineNumbers: true})
	tests := []struct {
		line, col int
		row, x    int
	}{
		{0, 0, 0, 2},
		{0, 3, 0, 5},
		{0, 4, 1, 2},
		{0, 8, 1, 5},
		{1, 0, 2, 2},
		{2, 2, 3, 4},
	}
	for _, tt := range tests {
		row, x, visible := r.CursorScreenPosition(0, tt.line, tt.col)
		assert.True(t, visible)
		assert.Equal(t, tt.row, row, "row for (%d,%d)", tt.line, tt.col)
		assert.Equal(t, tt.x, x, "x for (%d,%d)", tt.line, tt.col)
	}
}

func TestCursorPastFullRowSharesLastCell(t *testing.T) {
	src := textSource{"abcd"}
	r := NewRenderer(src, Viewport{Rows: 3, Cols: 6}, Options{LineNumbers: true})
	require.Equal(t, 4, r.TextWidth())
	assert.Equal(t, 1, r.RowsFor(0))

	lastRow, lastX, _ := r.CursorScreenPosition(0, 0, 3)
	endRow, endX, visible := r.CursorScreenPosition(0, 0, 4)
	assert.True(t, visible)
	assert.Equal(t, [2]int{0, 5}, [2]int{lastRow, lastX})
	assert.Equal(t, [2]int{lastRow, lastX}, [2]int{endRow, endX})
}

func TestCursorScreenPositionOutsideViewport(t *testing.T) {
	src := textSource{"a", "b", "c", "d"}
	r := NewRenderer(src, Viewport{Rows: 2, Cols: 4}, Options{LineNumbers: true})
	_, _, visible := r.CursorScreenPosition(0, 3, 0)
	assert.False(t, visible)
	row, _, visible := r.CursorScreenPosition(2, 0, 0)
	assert.False(t, visible)
	assert.Equal(t, -2, row)
}

func TestScrollTo(t *testing.T) {
	src := textSource{"abcdefgh", "", "xy", "z"}
	r := NewRenderer(src, Viewport{Rows: 2, Cols: 6}, Options{LineNumbers: true})
	assert.Equal(t, 0, r.ScrollTo(0, 0, 5))
	assert.Equal(t, 1, r.ScrollTo(0, 2, 0))
	assert.Equal(t, 2, r.ScrollTo(0, 3, 0))
	assert.Equal(t, 0, r.ScrollTo(3, 0, 0))
	assert.Equal(t, 1, r.ScrollTo(1, 2, 1))

	row, _, visible := r.CursorScreenPosition(r.ScrollTo(0, 3, 0), 3, 0)
	assert.True(t, visible)
	assert.Equal(t, 1, row)
}

func TestNarrowViewportKeepsOneTextColumn(t *testing.T) {
	src := textSource{"ab"}
	r := NewRenderer(src, Viewport{Rows: 3, Cols: 1}, Options{LineNumbers: true})
	assert.Equal(t, 1, r.TextWidth())
	assert.Equal(t, 2, r.RowsFor(0))
}
