package textrun

import "github.com/unilibs/uniwidth"

// columns returns how many grid columns r takes when written: 0, 1 or 2.
// Control characters report 0 like combining marks.
func columns(r rune) int {
	return uniwidth.RuneWidth(r)
}

// IsZeroWidth reports whether r is stored in the ZeroWidth slots of the
// previous cell instead of taking a column of its own.
func IsZeroWidth(r rune) bool {
	return r != 0 && columns(r) == 0
}
