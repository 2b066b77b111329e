package buffer

// line owns its characters. data is the whole allocation (its length is the
// capacity) and only data[:n] is content.
type line struct {
	data []rune
	n    int
}

func newLine(content []rune) (*line, error) {
	data, err := growTo[rune](nil, 0, max(len(content), 1), 0)
	if err != nil {
		return nil, err
	}
	copy(data, content)
	return &line{data: data, n: len(content)}, nil
}

func (l *line) content() []rune {
	return l.data[:l.n]
}
