//go:build textrundebug

package textrun

import "fmt"

// assert panics when cond is false. Only compiled with -tags textrundebug.
func assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("textrun: "+format, args...))
	}
}
