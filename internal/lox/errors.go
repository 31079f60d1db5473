package lox

import "fmt"

// ScanError is reported when the scanner meets a lexeme it cannot turn into a
// token.
type ScanError struct {
	line    int
	message string
}

// NewScanError creates a new scanning error
func NewScanError(line int, message string) error {
	return &ScanError{line, message}
}

func (err *ScanError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", err.line, err.message)
}

// ParseError wraps the message produced by the parser with the token where
// the error was detected.
type ParseError struct {
	token   *Token
	message string
}

// NewParseError creates a new parsing error
func NewParseError(token *Token, message string) error {
	return &ParseError{token, message}
}

func (err *ParseError) Error() string {
	if err.token.Typ == EOF {
		return fmt.Sprintf(
			"[line %d] Error at end: %s",
			err.token.Line,
			err.message,
		)
	}
	return fmt.Sprintf(
		"[line %d] Error at '%s': %s",
		err.token.Line,
		err.token.Lexeme,
		err.message,
	)
}

// RuntimeError is returned by the interpreter when a statement cannot be
// executed. It aborts the rest of the running unit.
type RuntimeError struct {
	token   *Token
	message string
}

// NewRuntimeError creates a new runtime error
func NewRuntimeError(token *Token, message string) error {
	return &RuntimeError{token, message}
}

func (err *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", err.message, err.token.Line)
}
