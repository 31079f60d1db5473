package lox

// Parser composes the syntax tree for the Lox language from the sequence of
// tokens produced by the scanner. The grammar it follows is documented in
// doc.go.
type Parser struct {
	current    int
	loopDepth  int
	blockDepth int
	tokens     []*Token
	errs       []error
}

// NewParser creates a new parser for the Lox language
func NewParser(tokens []*Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse returns the statements that were parsed successfully together with
// every syntax error found. A statement containing an error is dropped and
// parsing resumes at the next statement boundary.
func (parser *Parser) Parse() ([]Stmt, []error) {
	var statements []Stmt
	for !parser.isEOF() {
		stmt, err := parser.declaration()
		if err != nil {
			parser.errs = append(parser.errs, err)
			parser.sync()
			continue
		}
		statements = append(statements, stmt)
	}
	return statements, parser.errs
}

// decl --> varDecl | stmt ;
func (parser *Parser) declaration() (Stmt, error) {
	if parser.match(VAR) {
		return parser.varDeclaration()
	}
	return parser.statement()
}

// varDecl --> "var" IDENT ( "=" expression )? ";" ;
func (parser *Parser) varDeclaration() (Stmt, error) {
	name, err := parser.consume(IDENTIFIER, "Expect variable name.")
	if err != nil {
		return nil, err
	}
	var init Expr
	if parser.match(EQUAL) {
		if init, err = parser.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := parser.consume(
		SEMICOLON,
		"Expect ';' after variable declaration.",
	); err != nil {
		return nil, err
	}
	return NewVarStmt(name, init), nil
}

// stmt --> exprStmt | forStmt | ifStmt | printStmt | whileStmt
//        | breakStmt | block ;
func (parser *Parser) statement() (Stmt, error) {
	if parser.match(FOR) {
		return parser.forStatement()
	}
	if parser.match(IF) {
		return parser.ifStatement()
	}
	if parser.match(PRINT) {
		return parser.printStatement()
	}
	if parser.match(WHILE) {
		return parser.whileStatement()
	}
	if parser.match(BREAK) {
		return parser.breakStatement()
	}
	if parser.match(LEFT_BRACE) {
		stmts, err := parser.block()
		if err != nil {
			return nil, err
		}
		return NewBlockStmt(stmts), nil
	}
	return parser.expressionStatement()
}

// A for loop is desugared into the equivalent while loop
//
//	{
//		init;
//		while (cond) {
//			body;
//			incr;
//		}
//	}
//
// forStmt --> "for" "(" ( varDecl | exprStmt | ";" ) expression? ";"
//             expression? ")" stmt ;
func (parser *Parser) forStatement() (Stmt, error) {
	if _, err := parser.consume(LEFT_PAREN, "Expect '(' after 'for'."); err != nil {
		return nil, err
	}

	var init Stmt
	var err error
	switch {
	case parser.match(SEMICOLON):
	case parser.match(VAR):
		init, err = parser.varDeclaration()
	default:
		init, err = parser.expressionStatement()
	}
	if err != nil {
		return nil, err
	}

	var cond Expr
	if !parser.check(SEMICOLON) {
		if cond, err = parser.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := parser.consume(SEMICOLON, "Expect ';' after loop condition."); err != nil {
		return nil, err
	}

	var incr Expr
	if !parser.check(RIGHT_PAREN) {
		if incr, err = parser.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := parser.consume(RIGHT_PAREN, "Expect ')' after for clauses."); err != nil {
		return nil, err
	}

	body, err := parser.loopBody()
	if err != nil {
		return nil, err
	}

	loop := []Stmt{body}
	if incr != nil {
		loop = append(loop, NewExprStmt(incr))
	}
	if cond == nil {
		cond = NewLiteralExpr(true)
	}
	var outer []Stmt
	if init != nil {
		outer = append(outer, init)
	}
	outer = append(outer, NewWhileStmt(cond, NewBlockStmt(loop)))
	return NewBlockStmt(outer), nil
}

// ifStmt --> "if" "(" expression ")" stmt ( "else" stmt )? ;
func (parser *Parser) ifStatement() (Stmt, error) {
	if _, err := parser.consume(LEFT_PAREN, "Expect '(' after 'if'."); err != nil {
		return nil, err
	}
	cond, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(RIGHT_PAREN, "Expect ')' after if condition."); err != nil {
		return nil, err
	}

	thenBranch, err := parser.statement()
	if err != nil {
		return nil, err
	}
	// the else is bound to the nearest if that precedes it
	var elseBranch Stmt
	if parser.match(ELSE) {
		if elseBranch, err = parser.statement(); err != nil {
			return nil, err
		}
	}
	return NewIfStmt(cond, thenBranch, elseBranch), nil
}

// printStmt --> "print" expression ";" ;
func (parser *Parser) printStatement() (Stmt, error) {
	expr, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(SEMICOLON, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return NewPrintStmt(expr), nil
}

// whileStmt --> "while" "(" expression ")" stmt ;
func (parser *Parser) whileStatement() (Stmt, error) {
	if _, err := parser.consume(LEFT_PAREN, "Expect '(' after 'while'."); err != nil {
		return nil, err
	}
	cond, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(RIGHT_PAREN, "Expect ')' after condition."); err != nil {
		return nil, err
	}
	body, err := parser.loopBody()
	if err != nil {
		return nil, err
	}
	return NewWhileStmt(cond, body), nil
}

// loopBody parses a statement in which 'break' is allowed.
func (parser *Parser) loopBody() (Stmt, error) {
	parser.loopDepth++
	defer func() { parser.loopDepth-- }()
	return parser.statement()
}

// breakStmt --> "break" ";" ;
func (parser *Parser) breakStatement() (Stmt, error) {
	keyword := parser.prev()
	if parser.loopDepth == 0 {
		// no need to synchronize, the statement is still well-formed
		parser.errs = append(
			parser.errs,
			NewParseError(keyword, "Must be inside a loop to use 'break'."),
		)
	}
	if _, err := parser.consume(SEMICOLON, "Expect ';' after 'break'."); err != nil {
		return nil, err
	}
	return NewBreakStmt(keyword), nil
}

// block --> "{" decl* "}" ;
func (parser *Parser) block() ([]Stmt, error) {
	parser.blockDepth++
	defer func() { parser.blockDepth-- }()

	var statements []Stmt
	for !parser.check(RIGHT_BRACE) && !parser.isEOF() {
		stmt, err := parser.declaration()
		if err != nil {
			// only the failing declaration is dropped, the block goes on
			parser.errs = append(parser.errs, err)
			parser.sync()
			continue
		}
		statements = append(statements, stmt)
	}
	if _, err := parser.consume(RIGHT_BRACE, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return statements, nil
}

// exprStmt --> expression ";" ;
func (parser *Parser) expressionStatement() (Stmt, error) {
	expr, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(SEMICOLON, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return NewExprStmt(expr), nil
}

// expression --> comma ;
func (parser *Parser) expression() (Expr, error) {
	return parser.comma()
}

// comma --> assignment ( "," assignment )* ;
func (parser *Parser) comma() (Expr, error) {
	return parser.binaryLeftAssoc(parser.assignment, COMMA)
}

// assignment --> ternary ( "=" assignment )? ;
func (parser *Parser) assignment() (Expr, error) {
	expr, err := parser.ternary()
	if err != nil {
		return nil, err
	}
	if parser.match(EQUAL) {
		equals := parser.prev()
		val, err := parser.assignment()
		if err != nil {
			return nil, err
		}
		if varExpr, ok := expr.(*VarExpr); ok {
			return NewAssignExpr(varExpr.Name, val), nil
		}
		// report without synchronizing, the parser is not confused
		parser.errs = append(
			parser.errs,
			NewParseError(equals, "Invalid assignment target."),
		)
	}
	return expr, nil
}

// ternary --> equality ( "?" expression ":" ternary )? ;
func (parser *Parser) ternary() (Expr, error) {
	expr, err := parser.equality()
	if err != nil {
		return nil, err
	}
	if parser.match(QUESTION) {
		then, err := parser.expression()
		if err != nil {
			return nil, err
		}
		if _, err := parser.consume(
			COLON,
			"Expect ':' after then branch of conditional expression.",
		); err != nil {
			return nil, err
		}
		els, err := parser.ternary()
		if err != nil {
			return nil, err
		}
		return NewTernaryExpr(expr, then, els), nil
	}
	return expr, nil
}

// equality --> comparison ( ( "!=" | "==" ) comparison )* ;
func (parser *Parser) equality() (Expr, error) {
	return parser.binaryLeftAssoc(parser.comparison, BANG_EQUAL, EQUAL_EQUAL)
}

// comparison --> addition ( ( ">" | ">=" | "<" | "<=" ) addition )* ;
func (parser *Parser) comparison() (Expr, error) {
	return parser.binaryLeftAssoc(
		parser.addition,
		GREATER, GREATER_EQUAL, LESS, LESS_EQUAL,
	)
}

// addition --> multiplication ( ( "-" | "+" ) multiplication )* ;
func (parser *Parser) addition() (Expr, error) {
	return parser.binaryLeftAssoc(parser.multiplication, MINUS, PLUS)
}

// multiplication --> unary ( ( "/" | "*" ) unary )* ;
func (parser *Parser) multiplication() (Expr, error) {
	return parser.binaryLeftAssoc(parser.unary, SLASH, STAR)
}

// binaryLeftAssoc creates a left-associative nested tree of binary operator
// nodes for one precedence level, operands are parsed by `next`.
func (parser *Parser) binaryLeftAssoc(
	next func() (Expr, error),
	types ...TokenType,
) (Expr, error) {
	expr, err := next()
	if err != nil {
		return nil, err
	}
	for parser.match(types...) {
		op := parser.prev()
		right, err := next()
		if err != nil {
			return nil, err
		}
		expr = NewBinaryExpr(op, expr, right)
	}
	return expr, nil
}

// unary --> ( "!" | "-" ) unary | primary ;
func (parser *Parser) unary() (Expr, error) {
	if parser.match(BANG, MINUS) {
		op := parser.prev()
		expr, err := parser.unary()
		if err != nil {
			return nil, err
		}
		return NewUnaryExpr(op, expr), nil
	}
	return parser.primary()
}

// primary --> NUMBER | STRING | "true" | "false" | "nil" | IDENT
//           | "(" expression ")" ;
func (parser *Parser) primary() (Expr, error) {
	if parser.match(FALSE) {
		return NewLiteralExpr(false), nil
	}
	if parser.match(TRUE) {
		return NewLiteralExpr(true), nil
	}
	if parser.match(NIL) {
		return NewLiteralExpr(nil), nil
	}
	if parser.match(NUMBER, STRING) {
		return NewLiteralExpr(parser.prev().Literal), nil
	}
	if parser.match(IDENTIFIER) {
		return NewVarExpr(parser.prev()), nil
	}
	if parser.match(LEFT_PAREN) {
		expr, err := parser.expression()
		if err != nil {
			return nil, err
		}
		if _, err := parser.consume(
			RIGHT_PAREN,
			"Expect ')' after expression.",
		); err != nil {
			return nil, err
		}
		return NewGroupExpr(expr), nil
	}
	return nil, NewParseError(parser.peek(), "Expect expression.")
}

func (parser *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if parser.check(tt) {
			parser.advance()
			return true
		}
	}
	return false
}

func (parser *Parser) consume(typ TokenType, message string) (*Token, error) {
	if parser.check(typ) {
		return parser.advance(), nil
	}
	return nil, NewParseError(parser.peek(), message)
}

func (parser *Parser) check(tt TokenType) bool {
	if parser.isEOF() {
		return false
	}
	return parser.peek().Typ == tt
}

func (parser *Parser) advance() *Token {
	if !parser.isEOF() {
		parser.current++
	}
	return parser.prev()
}

func (parser *Parser) isEOF() bool {
	return parser.peek().Typ == EOF
}

func (parser *Parser) peek() *Token {
	return parser.tokens[parser.current]
}

func (parser *Parser) prev() *Token {
	return parser.tokens[parser.current-1]
}

// sync discards tokens until it reaches what is likely the start of the next
// statement.
func (parser *Parser) sync() {
	// inside a block the closing brace is left for the block to consume
	if parser.blockDepth > 0 && parser.check(RIGHT_BRACE) {
		return
	}
	parser.advance()
	for !parser.isEOF() {
		if parser.prev().Typ == SEMICOLON {
			return
		}
		switch parser.peek().Typ {
		case CLASS, FUN, VAR, FOR, IF, WHILE, PRINT, RETURN, BREAK:
			return
		case RIGHT_BRACE:
			if parser.blockDepth > 0 {
				return
			}
		}
		parser.advance()
	}
}
