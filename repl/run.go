/*
File: repl/run.go
*/
package repl

import (
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	errorColor  = color.New(color.FgRed)
	bannerColor = color.New(color.FgGreen)
	noticeColor = color.New(color.FgCyan)
)

// Run drives an interactive session on standard input/output until EOF or
// interrupt.
//
// scan reads through the very same readline.Instance that drives the
// prompt loop below, rather than a second buffered reader on the same
// file descriptor: Readline() is safe to call reentrantly from within
// Feed (the whole interpreter is single-threaded and synchronous end to
// end), and the scan builtin prints its own "  > " prompt before calling
// it, so the line editor's own prompt is blanked out for the duration of
// that call.
func Run(w io.Writer) error {
	rl, err := readline.New(readyPrompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	scanLine := func() (string, error) {
		rl.SetPrompt("")
		return rl.Readline()
	}

	r := New(w, scanLine)
	r.OnError = func(msg string) {
		errorColor.Fprintln(w, msg)
	}

	bannerColor.Fprintln(w, BannerText)
	noticeColor.Fprintln(w, StartupNotice)

	for {
		rl.SetPrompt(r.Prompt())
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			fmt.Fprintln(w)
			return nil
		}
		rl.SaveHistory(line)
		r.Feed(line)
	}
}
