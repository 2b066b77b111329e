package layout

import "fmt"

// DigitWidth returns the number of decimal digits needed to print n, with a
// floor of 1 so that 0 (and anything below it) still takes one column.
func DigitWidth(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}

// GutterWidth is the width of the line-number margin for a document of
// lineCount lines: the digits of the largest label plus one separating space.
func GutterWidth(lineCount int) int {
	return DigitWidth(lineCount-1) + 1
}

// Label renders the gutter text for line index i, right-aligned to digits
// and followed by the separating space.
func Label(i, digits int) string {
	return fmt.Sprintf("%*d ", digits, i)
}
