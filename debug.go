//go:build !textrundebug

package textrun

func assert(bool, string, ...any) {}
