/*
File: cmd/nhotyp/main.go

Command nhotyp is the Nhotyp interpreter's command-line front end: a
cobra root command that runs the REPL, executes a single source file,
or serves REPL sessions over TCP.
*/
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nhotyp-run/nhotyp/eval"
	"github.com/nhotyp-run/nhotyp/nerr"
	"github.com/nhotyp-run/nhotyp/parser"
	"github.com/nhotyp-run/nhotyp/program"
	"github.com/nhotyp-run/nhotyp/repl"
	"github.com/nhotyp-run/nhotyp/source"
)

var (
	fatalColor = color.New(color.FgRed)
	watchColor = color.New(color.FgCyan)
	serveColor = color.New(color.FgCyan)
)

var (
	watch   bool
	noColor bool
)

func main() {
	root := &cobra.Command{
		Use:          "nhotyp [file]",
		Short:        "Nhotyp interpreter",
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE:         runRoot,
	}
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	root.Flags().BoolVar(&watch, "watch", false, "re-run the file on every save")

	serveCmd := &cobra.Command{
		Use:   "serve <port>",
		Short: "serve REPL sessions over TCP, one connection per session",
		Args:  cobra.ExactArgs(1),
		RunE:  runServe,
	}
	root.AddCommand(serveCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	if noColor {
		color.NoColor = true
	}

	switch len(args) {
	case 0:
		if watch {
			return fmt.Errorf("--watch requires a file argument")
		}
		return repl.Run(os.Stdout)
	case 1:
		if watch {
			return watchFile(args[0])
		}
		os.Exit(runFile(args[0]))
		return nil
	default:
		source.FatalNoInputFiles(os.Stderr)
		os.Exit(1)
		return nil
	}
}

// runFile loads, parses, and executes path's main function, returning the
// process exit code: the low 32 bits of main's return value on success,
// or 1 on any fatal, typed, or runtime error.
//
// A panic escaping the evaluator (a coding error rather than a user
// program mistake) is caught here rather than crashing the process,
// mirroring the recovery boundary file execution has always had.
func runFile(path string) (code int) {
	defer func() {
		if recovered := recover(); recovered != nil {
			fatalColor.Fprintf(os.Stderr, "%s: runtime error: %v\n", source.Prog, recovered)
			code = 1
		}
	}()

	lines, err := source.Load(path)
	if err != nil {
		source.FatalCannotRead(os.Stderr, path)
		return 1
	}

	p := parser.New(lines, source.FileLineOffset)
	block, err := p.ParseBlock("")
	if err != nil {
		reportFileError(path, p, err)
		return 1
	}

	prog, err := program.Build(block)
	if err != nil {
		reportFileError(path, p, err)
		return 1
	}

	ev := eval.NewFromReader(prog, os.Stdout, os.Stdin)
	v, err := ev.CallNamed("main", 0)
	if err != nil {
		reportFileError(path, p, err)
		return 1
	}
	return int(v.Int & 0xFFFFFFFF)
}

func reportFileError(path string, p *parser.Parser, err error) {
	e, ok := nerr.As(err)
	if !ok {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	var line string
	if e.Kind != nerr.UnclosedBlock {
		line = p.LineAt(e.Line)
	}
	fatalColor.Fprintln(os.Stderr, e.Format(path, line))
}

// watchFile runs path once and then re-runs it on every write to the
// file, until interrupted. Each run's exit code is discarded and does not
// terminate the watch loop: a failing run does not end the session.
func watchFile(path string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	dir := dirOf(path)
	if err := w.Add(dir); err != nil {
		return err
	}

	runFile(path)
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Name != path || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			watchColor.Fprintf(os.Stdout, "--- %s changed, re-running ---\n", path)
			runFile(path)
		case werr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, werr)
		}
	}
}

func dirOf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[:i]
		}
	}
	return "."
}

// runServe listens on the given TCP port, spawning one REPL session per
// accepted connection. Each session is tagged with a fresh UUID so its
// connect/disconnect log lines can be correlated.
func runServe(cmd *cobra.Command, args []string) error {
	port := args[0]
	ln, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return err
	}
	defer ln.Close()
	serveColor.Fprintf(os.Stdout, "nhotyp REPL server listening on :%s\n", port)

	for {
		conn, err := ln.Accept()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		go serveSession(conn)
	}
}

func serveSession(conn net.Conn) {
	defer conn.Close()
	id := uuid.New()
	serveColor.Fprintf(os.Stdout, "[%s] session opened from %s\n", id, conn.RemoteAddr())
	if err := repl.RunPlain(conn, conn); err != nil {
		fmt.Fprintf(os.Stderr, "[%s] session error: %v\n", id, err)
	}
	serveColor.Fprintf(os.Stdout, "[%s] session closed\n", id)
}
