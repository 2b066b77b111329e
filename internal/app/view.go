package app

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/kobzarvs/ded/internal/buffer"
	"github.com/kobzarvs/ded/internal/layout"
)

// Render draws the text area, the status line and the command line, then
// shows the frame. The bottom two rows belong to the status and command lines.
func (w *Window) Render(s tcell.Screen) {
	width, height := s.Size()
	s.SetStyle(w.styles.text)
	s.Clear()

	vp := layout.Viewport{Rows: max(0, height-2), Cols: width}
	r := layout.NewRenderer(w.engine.Store(), vp, w.opts)
	c := w.engine.Cursor()
	w.top = r.ScrollTo(w.top, c.Line, c.Col)

	for y := 0; y < vp.Rows; y++ {
		for x := 0; x < r.GutterWidth() && x < width; x++ {
			s.SetContent(x, y, ' ', nil, w.styles.gutter)
		}
	}
	for cell := range r.Frame(w.top) {
		style := w.styles.text
		if cell.Gutter {
			style = w.styles.gutter
		}
		s.SetContent(cell.Col, cell.Row, printable(cell.Ch), nil, style)
	}

	if height >= 2 {
		w.renderStatusline(s, width, height-2)
	}
	if height >= 1 {
		w.renderCommandline(s, width, height-1)
	}

	switch y, x, visible := r.CursorScreenPosition(w.top, c.Line, c.Col); {
	case w.commandMode:
		s.ShowCursor(min(1+runewidth.StringWidth(string(w.cmd)), width-1), height-1)
	case visible:
		s.ShowCursor(x, y)
	default:
		s.HideCursor()
	}
	s.Show()
}

func (w *Window) renderStatusline(s tcell.Screen, width, y int) {
	dirty := ""
	if w.engine.Dirty() {
		dirty = "*"
	}
	left := fmt.Sprintf(" %s | %s%s ", w.engine.State(), w.displayName(), dirty)
	c := w.engine.Cursor()
	right := fmt.Sprintf(" Ln %d, Col %d ", c.Line+1, c.Col+1)
	if w.branch != "" {
		right += "| git:" + w.branch + " "
	}

	line := composeStatusLine(left, right, width)
	drawString(s, 0, y, line, width, w.styles.status)

	if w.message == "" {
		return
	}
	// The message fills the gap between the mode block and the position.
	x := runewidth.StringWidth(left)
	room := width - x - runewidth.StringWidth(right)
	if room <= 1 {
		return
	}
	style := w.styles.status
	if w.warning {
		style = w.styles.warning
	}
	drawString(s, x, y, runewidth.Truncate(w.message, room-1, "…"), room-1, style)
}

func (w *Window) renderCommandline(s tcell.Screen, width, y int) {
	text := ""
	if w.commandMode {
		text = ":" + string(w.cmd)
	}
	text = runewidth.FillRight(runewidth.Truncate(text, width, ""), width)
	drawString(s, 0, y, text, width, w.styles.command)
}

// composeStatusLine pads left and right to exactly width cells. When both do
// not fit, the left side is truncated first.
func composeStatusLine(left, right string, width int) string {
	if width <= 0 {
		return ""
	}
	rw := runewidth.StringWidth(right)
	if rw >= width {
		return runewidth.TruncateLeft(right, rw-width, "")
	}
	left = runewidth.Truncate(left, width-rw, "")
	gap := width - runewidth.StringWidth(left) - rw
	return left + strings.Repeat(" ", gap) + right
}

// drawString writes str from column x, stopping at limit cells, and returns
// the column after the last cell written.
func drawString(s tcell.Screen, x, y int, str string, limit int, style tcell.Style) int {
	end := x + limit
	for _, r := range str {
		rw := runewidth.RuneWidth(r)
		if x+rw > end {
			break
		}
		s.SetContent(x, y, r, nil, style)
		x += max(rw, 1)
	}
	return x
}

// printable maps control characters to a blank cell so they keep the one cell
// the wrap arithmetic gives them. Undecodable bytes show as U+FFFD.
func printable(ch rune) rune {
	if _, raw := buffer.RawByte(ch); raw {
		return utf8.RuneError
	}
	if ch < ' ' || ch == 0x7f {
		return ' '
	}
	return ch
}
