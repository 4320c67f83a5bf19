/*
File: source/source.go

Package source loads Nhotyp program files and renders the fatal,
pre-interpretation error messages: the failures that occur before a
parser or evaluator even exists, so they can't be typed nerr.Errors.

FatalCannotRead reproduces the original interpreter's wording verbatim,
down to restating "no input files" as a second line before the closing
"interpretation terminated." line.
*/
package source

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Prog is the program name reported in fatal error messages.
const Prog = "nhotyp"

// FileLineOffset converts a 0-based line array index into the 1-based
// line number file mode reports.
const FileLineOffset = 1

// Load reads path and splits it into the line array the parser expects.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return strings.Split(string(data), "\n"), nil
}

// FatalNoInputFiles prints the "no input files" fatal message to w. Used
// when the CLI is invoked with two or more positional arguments, or any
// other shape that yields no file to load.
func FatalNoInputFiles(w io.Writer) {
	fmt.Fprintf(w, "%s: fatal error: no input files\n", Prog)
	fmt.Fprintln(w, "interpretation terminated.")
}

// FatalCannotRead prints the "cannot read file" fatal message to w: the
// read failure, followed by a restated "no input files" line, followed
// by "interpretation terminated."
func FatalCannotRead(w io.Writer, path string) {
	fmt.Fprintf(w, "%s: fatal error: %s: cannot read file\n", Prog, path)
	fmt.Fprintf(w, "%s: fatal error: no input files\n", Prog)
	fmt.Fprintln(w, "interpretation terminated.")
}
