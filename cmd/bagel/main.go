package main

// This is an interpreter for a dialect of the Lox programming language.

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/mattn/go-isatty"

	"github.com/fdeitylink/bagel/internal/config"
	"github.com/fdeitylink/bagel/internal/lox"
)

const usage = `Usage: bagel [-h] [-e] [-t] [-a] [-c config] [script]

options:
  -c FILE  read settings from FILE (default $BAGEL_CONFIG)
  -e       print the value of expression statements in the prompt
  -t       dump tokens to stderr before parsing
  -a       dump the syntax tree to stderr before executing
  -h       show this help
`

func main() {
	opts, optind, err := getopt.Getopts(os.Args, "hetac:")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Print(usage)
		os.Exit(64)
	}

	configPath := os.Getenv(config.EnvPath)
	var echo, dumpTokens, dumpAST bool
	for _, opt := range opts {
		switch opt.Option {
		case 'c':
			configPath = opt.Value
		case 'e':
			echo = true
		case 't':
			dumpTokens = true
		case 'a':
			dumpAST = true
		default: // case 'h':
			fmt.Print(usage)
			os.Exit(0)
		}
	}
	args := os.Args[optind:]
	if len(args) > 1 {
		fmt.Print(usage)
		os.Exit(64)
	}

	cfg := config.Default()
	if configPath != "" {
		cfg, err = config.Load(configPath)
		exitOnError(err, 78)
	}
	cfg.Echo = cfg.Echo || echo
	cfg.Dump.Tokens = cfg.Dump.Tokens || dumpTokens
	cfg.Dump.AST = cfg.Dump.AST || dumpAST

	reporter := lox.NewSimpleReporter(os.Stderr, colored(cfg.Color))
	if len(args) == 1 {
		runFile(args[0], newRunner(cfg, reporter, false), reporter)
	} else {
		runPrompt(os.Stdin, os.Stdout, cfg.Prompt, newRunner(cfg, reporter, cfg.Echo), reporter)
	}
}

func newRunner(cfg *config.Config, reporter lox.Reporter, echo bool) *lox.Lox {
	opts := []lox.Option{
		lox.WithInterpreterOptions(lox.WithEcho(echo)),
	}
	if cfg.Dump.Tokens {
		opts = append(opts, lox.WithTokenDump(os.Stderr))
	}
	if cfg.Dump.AST {
		opts = append(opts, lox.WithASTDump(os.Stderr))
	}
	return lox.New(os.Stdout, reporter, opts...)
}

// Run the interpreter in REPL mode
func runPrompt(in io.Reader, out io.Writer, prompt string, runner *lox.Lox, reporter lox.Reporter) {
	s := bufio.NewScanner(in)
	s.Split(bufio.ScanLines)
	for {
		fmt.Fprint(out, prompt)
		if !s.Scan() {
			break
		}
		runner.Run(s.Text())
		// an error only aborts the current line
		reporter.Reset()
	}
	exitOnError(s.Err(), 74)
}

// Run the given file as script
func runFile(fpath string, runner *lox.Lox, reporter lox.Reporter) {
	bytes, err := os.ReadFile(fpath)
	exitOnError(err, 66)

	runner.Run(string(bytes))
	exitIf(reporter.HadError(), 65)
	exitIf(reporter.HadRuntimeError(), 70)
}

func colored(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func exitOnError(err error, status int) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(status)
	}
}

func exitIf(cond bool, status int) {
	if cond {
		os.Exit(status)
	}
}
