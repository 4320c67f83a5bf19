/*
File: repl/run_plain.go
*/
package repl

import (
	"bufio"
	"fmt"
	"io"
)

// RunPlain drives an interactive session over an arbitrary reader/writer
// pair, such as a network connection, until EOF. Unlike Run, it does not
// go through chzyer/readline: readline's raw-mode terminal handling
// assumes a real tty, which a net.Conn is not, so a served session gets
// a plain line reader instead of history and cursor editing.
func RunPlain(r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	scanLine := func() (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		return sc.Text(), nil
	}

	rp := New(w, scanLine)
	rp.OnError = func(msg string) {
		errorColor.Fprintln(w, msg)
	}

	bannerColor.Fprintln(w, BannerText)
	noticeColor.Fprintln(w, StartupNotice)

	for {
		fmt.Fprint(w, rp.Prompt())
		line, err := scanLine()
		if err != nil {
			return nil
		}
		rp.Feed(line)
	}
}
