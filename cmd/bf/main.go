// bf — a brainfuck interpreter.
//
// Loads a program from a file or standard input, runs it through
// brainfuck.Machine and maps the outcome to an exit code: 0 for a clean
// run, 1 for read/empty-code/runtime failures, 2 for a bad invocation.
// When standard input is a terminal, code is collected interactively with
// line editing and history.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"
	"golang.org/x/term"

	"github.com/mikoro/bf-interpreter/brainfuck"
)

const (
	appName     = "bf"
	historyFile = ".bf_history"
)

const usageText = `Usage: bf [-f <file> | -c <file> | -d <size> | -b | -w | -s | -j | -q | -h]
(type 'bf -h' for help)`

var helpText = fmt.Sprintf(`Brainfuck interpreter v%s

Usage: bf [-f <file> | -c <file> | -d <size> | -b | -w | -s | -j | -q | -h]

  -f <file>    read bf code from file (default is stdin)
  -c <file>    read settings from a YAML file (flags override it)
  -d <size>    data segment size in cells (default %d)
  -b           enable bounds checking for the data segment
  -w           enable wrap checking for data cells
  -s           enable strict syntax check
  -j           resolve brackets through a precomputed jump table
  -q           enable quiet mode
  -h           this help text
`, brainfuck.Version, brainfuck.DefaultDataSize)

func red(s string) string { return "\x1b[31m" + s + "\x1b[0m" }

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	file     string
	settings string
	dataSize uint
	bounds   bool
	wrap     bool
	syntax   bool
	jumps    bool
	quiet    bool
	help     bool
	set      map[string]bool // flags given explicitly on the command line
}

func parseArgs(args []string) (*options, error) {
	o := &options{set: map[string]bool{}}
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&o.file, "f", "", "read bf code from file")
	fs.StringVar(&o.settings, "c", "", "read settings from a YAML file")
	fs.UintVar(&o.dataSize, "d", brainfuck.DefaultDataSize, "data segment size in cells")
	fs.BoolVar(&o.bounds, "b", false, "enable bounds checking")
	fs.BoolVar(&o.wrap, "w", false, "enable wrap checking")
	fs.BoolVar(&o.syntax, "s", false, "enable strict syntax check")
	fs.BoolVar(&o.jumps, "j", false, "use a precomputed jump table")
	fs.BoolVar(&o.quiet, "q", false, "enable quiet mode")
	fs.BoolVar(&o.help, "h", false, "show help")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	if o.set["d"] && o.dataSize == 0 {
		return nil, fmt.Errorf("data size must be a positive integer")
	}
	return o, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args)
	if err != nil {
		fmt.Fprintln(stderr, usageText)
		return 2
	}
	if opts.help {
		fmt.Fprint(stdout, helpText)
		return 0
	}

	cfg := brainfuck.DefaultConfig()
	quiet := opts.quiet
	if opts.settings != "" {
		fc, err := brainfuck.LoadFileConfig(opts.settings)
		if err != nil {
			if !quiet {
				fmt.Fprintf(stderr, "Error: %v\n", err)
			}
			return 2
		}
		cfg = fc.Apply(cfg)
		if fc.Quiet != nil && !opts.set["q"] {
			quiet = *fc.Quiet
		}
	}
	if opts.set["d"] {
		cfg.DataSize = uint32(opts.dataSize)
	}
	if opts.bounds {
		cfg.BoundsCheck = true
	}
	if opts.wrap {
		cfg.WrapCheck = true
	}
	if opts.syntax {
		cfg.SyntaxCheck = true
	}
	if opts.jumps {
		cfg.PrecomputedJumps = true
	}

	var code []byte
	if opts.file != "" {
		code, err = os.ReadFile(opts.file)
		if err != nil {
			if !quiet {
				fmt.Fprintln(stderr, "Error: Reading file failed!")
			}
			return 1
		}
	} else {
		if !quiet {
			fmt.Fprintln(stdout, "Type in the code (issue ^D to stop):")
		}
		code, err = readCode(stdin)
		if err != nil {
			if !quiet {
				fmt.Fprintf(stderr, "Error: %v\n", err)
			}
			return 1
		}
		if !quiet {
			fmt.Fprintln(stdout, "Running the program...")
		}
	}

	if len(code) == 0 {
		if !quiet {
			fmt.Fprintln(stdout, "No code to be interpreted!")
		}
		return 1
	}

	m, err := brainfuck.New(code, cfg, stdin, stdout)
	if err != nil {
		reportError(stderr, code, err, quiet)
		return 1
	}
	if err := m.Run(); err != nil {
		reportError(stderr, code, err, quiet)
		return 1
	}
	return 0
}

func reportError(stderr io.Writer, code []byte, err error, quiet bool) {
	if quiet {
		return
	}
	var re *brainfuck.RunError
	if errors.As(err, &re) {
		fmt.Fprintln(stderr, re.Diagnostic(code))
		fmt.Fprint(stderr, red(brainfuck.PrettyRunError(code, re)))
		return
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
}

// readCode pulls the program from stdin: interactively with line editing
// when stdin is a terminal, otherwise everything up to end-of-stream.
func readCode(stdin io.Reader) ([]byte, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return readCodeInteractive()
	}
	return io.ReadAll(stdin)
}

func readCodeInteractive() ([]byte, error) {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	var b strings.Builder
	for {
		line, err := ln.Prompt("")
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			// Ctrl+C drops the current line only.
			continue
		}
		if err != nil {
			return nil, err
		}
		b.WriteString(line)
		b.WriteByte('\n')
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
	}
	return []byte(b.String()), nil
}
