package shell

import (
	"fmt"
	"io"
)

const indentation = "\t"

// IndentedFprintf writes indent tabs to w followed by the formatted output
func IndentedFprintf(w io.Writer, indent int, format string, a ...any) {
	for i := 0; i < indent; i++ {
		fmt.Fprint(w, indentation)
	}
	fmt.Fprintf(w, format, a...)
}

// IndentedFprintln writes indent tabs to w followed by a and a newline
func IndentedFprintln(w io.Writer, indent int, a ...any) {
	for i := 0; i < indent; i++ {
		fmt.Fprint(w, indentation)
	}
	fmt.Fprintln(w, a...)
}
