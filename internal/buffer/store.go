package buffer

// LineStore is the ordered sequence of lines of one document. It always holds
// at least one line. Line storage never leaves the store: every read goes
// through the accessors, so growth and joins can relocate characters freely.
type LineStore struct {
	lines  []*line
	n      int
	limits Limits
	// noEOL is set when the loaded content did not end with a newline.
	noEOL bool
}

// New returns a store holding a single empty line.
func New(limits Limits) *LineStore {
	s := &LineStore{limits: limits, noEOL: true}
	first, err := newLine(nil)
	if err != nil {
		panic(err)
	}
	s.lines, _ = growTo[*line](nil, 0, 1, 0)
	s.lines[0] = first
	s.n = 1
	return s
}

func (s *LineStore) LineCount() int {
	return s.n
}

func (s *LineStore) LineLength(i int) int {
	return s.at(i).n
}

func (s *LineStore) CharAt(i, col int) rune {
	l := s.at(i)
	if col < 0 || col >= l.n {
		outOfBounds("column", col, l.n)
	}
	return l.data[col]
}

// Line returns a copy of line i's content.
func (s *LineStore) Line(i int) string {
	return string(s.at(i).content())
}

// Capacity reports how many characters line i can hold before it grows.
func (s *LineStore) Capacity(i int) int {
	return len(s.at(i).data)
}

func (s *LineStore) at(i int) *line {
	if i < 0 || i >= s.n {
		outOfBounds("line", i, s.n)
	}
	return s.lines[i]
}

func checkColumn(l *line, col int) {
	if col < 0 || col > l.n {
		outOfBounds("column", col, l.n)
	}
}

// InsertChar inserts ch into line i before column col. When the line is full
// it grows first; if that fails the line is left exactly as it was.
func (s *LineStore) InsertChar(i, col int, ch rune) error {
	l := s.at(i)
	checkColumn(l, col)
	data, err := growTo(l.data, l.n, l.n+1, s.limits.MaxLineLength)
	if err != nil {
		return err
	}
	l.data = data
	copy(l.data[col+1:l.n+1], l.data[col:l.n])
	l.data[col] = ch
	l.n++
	return nil
}

// DeleteCharBefore removes the character at col-1 of line i and returns it.
// col must be positive; joining at column 0 is JoinWithPrevious.
func (s *LineStore) DeleteCharBefore(i, col int) rune {
	l := s.at(i)
	if col < 1 || col > l.n {
		outOfBounds("column", col-1, l.n)
	}
	r := l.data[col-1]
	copy(l.data[col-1:l.n-1], l.data[col:l.n])
	l.n--
	l.data[l.n] = 0
	return r
}

// SplitAt moves the characters [col, len) of line i into a new line inserted
// right after it. Nothing changes when either allocation fails.
func (s *LineStore) SplitAt(i, col int) error {
	l := s.at(i)
	checkColumn(l, col)
	tail, err := newLine(l.data[col:l.n])
	if err != nil {
		return err
	}
	lines, err := growTo(s.lines, s.n, s.n+1, s.limits.MaxLines)
	if err != nil {
		return err
	}
	s.lines = lines
	copy(s.lines[i+2:s.n+1], s.lines[i+1:s.n])
	s.lines[i+1] = tail
	s.n++
	clear(l.data[col:l.n])
	l.n = col
	return nil
}

// JoinWithPrevious appends line i to line i-1 and removes line i. It returns
// the column in the merged line where line i's content begins.
func (s *LineStore) JoinWithPrevious(i int) (int, error) {
	if i < 1 {
		outOfBounds("line", i-1, s.n)
	}
	cur := s.at(i)
	prev := s.lines[i-1]
	boundary := prev.n
	data, err := growTo(prev.data, prev.n, prev.n+cur.n, s.limits.MaxLineLength)
	if err != nil {
		return 0, err
	}
	prev.data = data
	copy(prev.data[prev.n:], cur.content())
	prev.n += cur.n
	copy(s.lines[i:s.n-1], s.lines[i+1:s.n])
	s.n--
	s.lines[s.n] = nil
	return boundary, nil
}
