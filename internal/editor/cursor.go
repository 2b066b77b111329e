package editor

// Lines is the part of the document cursor movement depends on.
type Lines interface {
	LineCount() int
	LineLength(i int) int
}

// Cursor is a logical position: a line index and a column in [0, len(line)].
// Column len(line) is the position after the last character. Moves return a
// new Cursor and never look at screen coordinates.
type Cursor struct {
	Line int
	Col  int
}

func (c Cursor) MoveLeft(doc Lines) Cursor {
	if c.Col > 0 {
		c.Col--
		return c
	}
	if c.Line == 0 {
		return c
	}
	return LineEnd(doc, c.Line-1)
}

func (c Cursor) MoveRight(doc Lines) Cursor {
	if c.Col < doc.LineLength(c.Line) {
		c.Col++
		return c
	}
	if c.Line >= doc.LineCount()-1 {
		return c
	}
	return LineStart(c.Line + 1)
}

func (c Cursor) MoveUp(doc Lines) Cursor {
	if c.Line == 0 {
		return c
	}
	c.Line--
	c.Col = min(c.Col, doc.LineLength(c.Line))
	return c
}

func (c Cursor) MoveDown(doc Lines) Cursor {
	if c.Line >= doc.LineCount()-1 {
		return c
	}
	c.Line++
	c.Col = min(c.Col, doc.LineLength(c.Line))
	return c
}

// Clamp pulls c back inside doc, e.g. after restoring a saved position.
func (c Cursor) Clamp(doc Lines) Cursor {
	c.Line = min(max(c.Line, 0), doc.LineCount()-1)
	c.Col = min(max(c.Col, 0), doc.LineLength(c.Line))
	return c
}

func LineStart(line int) Cursor {
	return Cursor{Line: line}
}

func LineEnd(doc Lines, line int) Cursor {
	return Cursor{Line: line, Col: doc.LineLength(line)}
}
