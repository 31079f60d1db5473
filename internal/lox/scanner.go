package lox

// Scanner parses the input source and collects all the tokens that can be found
type Scanner struct {
	line    int
	start   int
	current int
	source  []rune
	tokens  []*Token
	errs    []error
	done    bool
}

// NewScanner creates a new Lox token scanner
func NewScanner(source []rune) *Scanner {
	scanner := new(Scanner)
	scanner.line = 1
	scanner.source = source
	scanner.tokens = make([]*Token, 0)
	return scanner
}

// Scan reads the source and collect all the tokens that were found from the
// source, together with every error met along the way. Errors never stop the
// scan. The source is consumed once, later calls return the same result.
func (scanner *Scanner) Scan() ([]*Token, []error) {
	if scanner.done {
		return scanner.tokens, scanner.errs
	}

	for scanner.hasNext() {
		scanner.start = scanner.current
		switch r := scanner.advance(); r {
		// Whitespaces
		case ' ', '\r', '\t':
		case '\n':
			scanner.line++
		// Single character tokens
		case '(':
			scanner.addToken(LEFT_PAREN)
		case ')':
			scanner.addToken(RIGHT_PAREN)
		case '{':
			scanner.addToken(LEFT_BRACE)
		case '}':
			scanner.addToken(RIGHT_BRACE)
		case ',':
			scanner.addToken(COMMA)
		case '.':
			scanner.addToken(DOT)
		case '-':
			scanner.addToken(MINUS)
		case '+':
			scanner.addToken(PLUS)
		case ';':
			scanner.addToken(SEMICOLON)
		case '*':
			scanner.addToken(STAR)
		case '?':
			scanner.addToken(QUESTION)
		case ':':
			scanner.addToken(COLON)
		// Double character tokens
		case '!':
			scanner.addToken(scanner.either('=', BANG_EQUAL, BANG))
		case '=':
			scanner.addToken(scanner.either('=', EQUAL_EQUAL, EQUAL))
		case '<':
			scanner.addToken(scanner.either('=', LESS_EQUAL, LESS))
		case '>':
			scanner.addToken(scanner.either('=', GREATER_EQUAL, GREATER))
		// Long lexemes
		case '/':
			if scanner.match('/') {
				// consume the comment, but keep the \n at the end of line so line
				// counting can work correctly
				for scanner.peek() != '\n' && scanner.hasNext() {
					scanner.advance()
				}
			} else if scanner.match('*') {
				scanner.scanBlockComment()
			} else {
				scanner.addToken(SLASH)
			}
		// Literals
		case '"':
			scanner.scanString()
		default:
			if isDigit(r) {
				scanner.scanNumber()
			} else if isBeginIdent(r) {
				scanner.scanIdentifier()
			} else {
				scanner.error("Unexpected character.")
			}
		}
	}
	scanner.tokens = append(scanner.tokens, NewToken(EOF, "", nil, scanner.line))
	scanner.done = true
	return scanner.tokens, scanner.errs
}

func (scanner *Scanner) scanString() {
	// read until EOF or found a maching '"' --> our string includes \n
	for scanner.peek() != '"' && scanner.hasNext() {
		if scanner.peek() == '\n' {
			scanner.line++
		}
		scanner.advance()
	}

	if !scanner.hasNext() {
		scanner.error("Unterminated string.")
		return
	}
	// consume '"'
	scanner.advance()
	scanner.addLiteral(STRING)
}

func (scanner *Scanner) scanNumber() {
	for isDigit(scanner.peek()) {
		scanner.advance()
	}
	// a '.' is part of the number only when a digit follows it
	if scanner.peek() == '.' && isDigit(scanner.peekNext()) {
		scanner.advance()
		for isDigit(scanner.peek()) {
			scanner.advance()
		}
	}
	scanner.addLiteral(NUMBER)
}

func (scanner *Scanner) scanIdentifier() {
	for isAlphanumeric(scanner.peek()) {
		scanner.advance()
	}
	lexeme := string(scanner.source[scanner.start:scanner.current])
	if tokenType, isKeyword := KeywordTokens[lexeme]; isKeyword {
		scanner.addToken(tokenType)
	} else {
		scanner.addToken(IDENTIFIER)
	}
}

func (scanner *Scanner) scanBlockComment() {
	for !(scanner.peek() == '*' && scanner.peekNext() == '/') {
		if !scanner.hasNext() {
			scanner.error("Unterminated block comment.")
			return
		}
		if scanner.advance() == '\n' {
			scanner.line++
		}
	}
	// consume "*/"
	scanner.advance()
	scanner.advance()
}

// addToken appends the lexeme from `start` to `current` as a token of the
// given type
func (scanner *Scanner) addToken(typ TokenType) {
	lexeme := string(scanner.source[scanner.start:scanner.current])
	scanner.tokens = append(scanner.tokens, NewToken(typ, lexeme, nil, scanner.line))
}

// addLiteral appends the lexeme from `start` to `current` as a literal token,
// deriving its value from the lexeme.
func (scanner *Scanner) addLiteral(typ TokenType) {
	lexeme := string(scanner.source[scanner.start:scanner.current])
	literal, err := literalOf(typ, lexeme)
	if err != nil {
		scanner.error(err.Error())
		return
	}
	scanner.tokens = append(scanner.tokens, NewToken(typ, lexeme, literal, scanner.line))
}

func (scanner *Scanner) error(message string) {
	scanner.errs = append(scanner.errs, NewScanError(scanner.line, message))
}

// hasNext returns true if the scanner has not read pass the source length
func (scanner *Scanner) hasNext() bool {
	return scanner.current < len(scanner.source)
}

// advance consumes and returns the rune at the current possible
func (scanner *Scanner) advance() rune {
	r := scanner.source[scanner.current]
	scanner.current++
	return r
}

// match checks if the rune at the current possition is equal to the given rune,
// if they are equal, consumes the rune at the current position.
func (scanner *Scanner) match(expected rune) bool {
	if !scanner.hasNext() {
		return false
	}
	if scanner.source[scanner.current] != expected {
		return false
	}
	scanner.current++
	return true
}

// either picks the compound token type when the next rune is `expected`,
// otherwise the single-character one.
func (scanner *Scanner) either(expected rune, compound, single TokenType) TokenType {
	if scanner.match(expected) {
		return compound
	}
	return single
}

// peek returns the rune at the current position, but does not consume it
func (scanner *Scanner) peek() rune {
	if !scanner.hasNext() {
		return '\x00'
	}
	return scanner.source[scanner.current]
}

// peekNext returns the rune at the next position, but does not consume it
func (scanner *Scanner) peekNext() rune {
	if scanner.current+1 >= len(scanner.source) {
		return '\x00'
	}
	return scanner.source[scanner.current+1]
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isBeginIdent(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

func isAlphanumeric(r rune) bool {
	return isBeginIdent(r) || isDigit(r)
}
