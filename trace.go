package smalloc

import (
	"fmt"
	"os"
)

// tracef writes a single diagnostic line to stderr when trace is
// enabled at compile time. It costs nothing in a normal build: the
// compiler dead-codes every call site when trace is false.
func tracef(format string, args ...interface{}) {
	if !trace {
		return
	}
	fmt.Fprintf(os.Stderr, format, args...)
	fmt.Fprintln(os.Stderr)
}
