package lox

import (
	"fmt"
	"io"
)

// Lox runs units of source text through the scanner, the parser and the
// interpreter. Every unit runs against the same global environment, so a
// variable defined by one call to Run is visible to the next.
type Lox struct {
	interpreter *Interpreter
	reporter    Reporter
	tokenDump   io.Writer
	astDump     io.Writer
	interpOpts  []InterpreterOption
}

// Option configures a Lox runner
type Option func(*Lox)

// WithTokenDump writes every scanned token to w before parsing.
func WithTokenDump(w io.Writer) Option {
	return func(l *Lox) {
		l.tokenDump = w
	}
}

// WithASTDump writes every parsed statement to w before it is executed.
func WithASTDump(w io.Writer) Option {
	return func(l *Lox) {
		l.astDump = w
	}
}

// WithInterpreterOptions forwards options to the underlying interpreter.
func WithInterpreterOptions(opts ...InterpreterOption) Option {
	return func(l *Lox) {
		l.interpOpts = append(l.interpOpts, opts...)
	}
}

// New creates a runner printing program output to stdout and errors to the
// reporter.
func New(stdout io.Writer, reporter Reporter, opts ...Option) *Lox {
	l := &Lox{reporter: reporter}
	for _, opt := range opts {
		opt(l)
	}
	l.interpreter = NewInterpreter(stdout, l.interpOpts...)
	return l
}

// Run executes one unit of source. Scanning and parsing errors are all
// reported and prevent execution; a runtime error stops the execution and is
// reported. The caller reads the outcome from the reporter.
func (l *Lox) Run(source string) {
	scanner := NewScanner([]rune(source))
	tokens, errs := scanner.Scan()
	for _, err := range errs {
		l.reporter.Report(err)
	}
	if l.tokenDump != nil {
		for _, tok := range tokens {
			fmt.Fprintln(l.tokenDump, tok)
		}
	}

	parser := NewParser(tokens)
	statements, errs := parser.Parse()
	for _, err := range errs {
		l.reporter.Report(err)
	}
	if l.reporter.HadError() {
		return
	}
	if l.astDump != nil {
		printer := new(AstPrinter)
		for _, stmt := range statements {
			fmt.Fprintln(l.astDump, printer.PrintStmt(stmt))
		}
	}

	if err := l.interpreter.Interpret(statements); err != nil {
		l.reporter.Report(err)
	}
}
