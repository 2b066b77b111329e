package layout

import "iter"

// Source is the read-only view of a document the renderer walks.
type Source interface {
	LineCount() int
	LineLength(i int) int
	CharAt(i, col int) rune
}

// Viewport is the drawing surface size, owned by the caller.
type Viewport struct {
	Rows int
	Cols int
}

type Options struct {
	// LineNumbers enables the gutter. Without it the gutter width is 0.
	LineNumbers bool
	// WrapIndicator fills the gutter of continuation rows. Zero means blank.
	WrapIndicator rune
}

// Row is one screen row: the characters [Start, End) of logical line Line.
type Row struct {
	Screen       int
	Line         int
	Start        int
	End          int
	Continuation bool
}

// Cell is a single drawn character. Gutter cells carry line-number labels or
// the blank margin of continuation rows.
type Cell struct {
	Row    int
	Col    int
	Ch     rune
	Gutter bool
}

// Renderer maps a document snapshot onto a viewport. It holds no state
// beyond the widths derived at construction, so a new one is built for each
// redraw and every screen coordinate is derived from the same arithmetic.
type Renderer struct {
	src    Source
	vp     Viewport
	opts   Options
	digits int
	gutter int
	text   int
}

func NewRenderer(src Source, vp Viewport, opts Options) *Renderer {
	r := &Renderer{src: src, vp: vp, opts: opts}
	if opts.LineNumbers {
		r.digits = DigitWidth(src.LineCount() - 1)
		r.gutter = r.digits + 1
	}
	r.text = max(1, vp.Cols-r.gutter)
	return r
}

func (r *Renderer) GutterWidth() int {
	return r.gutter
}

// TextWidth is the number of characters per screen row.
func (r *Renderer) TextWidth() int {
	return r.text
}

// RowsFor returns how many screen rows logical line i occupies.
func (r *Renderer) RowsFor(i int) int {
	n := max(1, r.src.LineLength(i))
	return (n + r.text - 1) / r.text
}

// Rows yields the screen rows of the viewport, starting at logical line top.
func (r *Renderer) Rows(top int) iter.Seq[Row] {
	return func(yield func(Row) bool) {
		screen := 0
		for line := max(top, 0); line < r.src.LineCount(); line++ {
			n := r.src.LineLength(line)
			for k := 0; k < r.RowsFor(line); k++ {
				if screen >= r.vp.Rows {
					return
				}
				start := k * r.text
				row := Row{
					Screen:       screen,
					Line:         line,
					Start:        start,
					End:          min(n, start+r.text),
					Continuation: k > 0,
				}
				if !yield(row) {
					return
				}
				screen++
			}
		}
	}
}

// Frame yields every drawn cell of the viewport: the gutter first, then the
// text of each row. Cells beyond the viewport width are dropped.
func (r *Renderer) Frame(top int) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for row := range r.Rows(top) {
			for c, ch := range r.gutterText(row) {
				if c >= r.vp.Cols {
					break
				}
				if !yield(Cell{Row: row.Screen, Col: c, Ch: ch, Gutter: true}) {
					return
				}
			}
			for col := row.Start; col < row.End; col++ {
				x := r.gutter + col - row.Start
				if x >= r.vp.Cols {
					break
				}
				if !yield(Cell{Row: row.Screen, Col: x, Ch: r.src.CharAt(row.Line, col)}) {
					return
				}
			}
		}
	}
}

func (r *Renderer) gutterText(row Row) []rune {
	if r.gutter == 0 {
		return nil
	}
	if !row.Continuation {
		return []rune(Label(row.Line, r.digits))
	}
	out := make([]rune, r.gutter)
	for i := range out {
		out[i] = ' '
	}
	if r.opts.WrapIndicator != 0 {
		out[r.digits-1] = r.opts.WrapIndicator
	}
	return out
}

// CursorScreenPosition places logical (line, col) on screen for a viewport
// starting at logical line top. A cursor just past the end of a full row
// stays on that row; the column is clamped to the viewport. So when a line's
// last row is exactly full, col == len and col == len-1 share the cell of the
// last character and the two positions look the same on screen. visible is
// false when the row falls outside the viewport.
func (r *Renderer) CursorScreenPosition(top, line, col int) (row, x int, visible bool) {
	wrapped := r.wrappedRow(line, col)
	row = r.rowsBetween(top, line) + wrapped
	x = r.gutter + col - wrapped*r.text
	if x >= r.vp.Cols {
		x = r.vp.Cols - 1
	}
	x = max(x, 0)
	visible = row >= 0 && row < r.vp.Rows
	return row, x, visible
}

// rowsBetween counts the screen rows from the start of line from to the start
// of line to; it is negative when to lies above from.
func (r *Renderer) rowsBetween(from, to int) int {
	n := 0
	for i := from; i < to; i++ {
		n += r.RowsFor(i)
	}
	for i := to; i < from; i++ {
		n -= r.RowsFor(i)
	}
	return n
}

// ScrollTo returns the top logical line that keeps the cursor visible,
// moving as little as possible from top. A line taller than the viewport is
// shown from its first row.
func (r *Renderer) ScrollTo(top, line, col int) int {
	if line <= top || r.vp.Rows <= 0 {
		return line
	}
	used := r.wrappedRow(line, col) + 1
	t := line
	for t > top && used+r.RowsFor(t-1) <= r.vp.Rows {
		t--
		used += r.RowsFor(t)
	}
	return t
}

func (r *Renderer) wrappedRow(line, col int) int {
	return min(col/r.text, r.RowsFor(line)-1)
}
