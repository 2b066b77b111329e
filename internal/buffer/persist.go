package buffer

import (
	"bytes"
	"unicode/utf8"
)

// rawByteBase maps a byte that is not part of valid UTF-8 to the rune
// rawByteBase+b. Such bytes are always >= 0x80, so the runes fall in the
// low-surrogate range U+DC80..U+DCFF, which valid UTF-8 never decodes to.
const rawByteBase = 0xDC00

// RawByte reports whether r stands for an undecodable byte of the loaded
// content, and which one.
func RawByte(r rune) (byte, bool) {
	if r >= rawByteBase+0x80 && r <= rawByteBase+0xFF {
		return byte(r - rawByteBase), true
	}
	return 0, false
}

// Load splits raw file content into lines on '\n'. A trailing newline does
// not produce a trailing empty line and empty content yields one empty line.
// Bytes that are not valid UTF-8 are kept as RawByte runes, so Save writes
// them back unchanged. Limits only apply to later edits.
func Load(data []byte, limits Limits) (*LineStore, error) {
	parts := bytes.Split(data, []byte{'\n'})
	noEOL := len(data) == 0 || data[len(data)-1] != '\n'
	if !noEOL {
		parts = parts[:len(parts)-1]
	}
	if len(parts) == 0 {
		parts = [][]byte{nil}
	}
	lines, err := growTo[*line](nil, 0, len(parts), 0)
	if err != nil {
		return nil, err
	}
	for i, p := range parts {
		l, err := newLine(decode(p))
		if err != nil {
			return nil, err
		}
		lines[i] = l
	}
	return &LineStore{lines: lines, n: len(parts), limits: limits, noEOL: noEOL}, nil
}

func decode(p []byte) []rune {
	out := make([]rune, 0, utf8.RuneCount(p))
	for len(p) > 0 {
		r, size := utf8.DecodeRune(p)
		if r == utf8.RuneError && size == 1 {
			r = rawByteBase + rune(p[0])
		}
		out = append(out, r)
		p = p[size:]
	}
	return out
}

// Save serializes the store: every line followed by '\n', except that the
// final terminator is omitted when the loaded content had none.
func Save(s *LineStore) []byte {
	size := s.n
	for i := 0; i < s.n; i++ {
		size += s.lines[i].n
	}
	out := make([]byte, 0, size)
	for i := 0; i < s.n; i++ {
		for _, r := range s.lines[i].content() {
			if b, ok := RawByte(r); ok {
				out = append(out, b)
				continue
			}
			out = utf8.AppendRune(out, r)
		}
		if i < s.n-1 || !s.noEOL {
			out = append(out, '\n')
		}
	}
	return out
}
