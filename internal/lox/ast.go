package lox

//go:generate go run ../cmd/ast_codegen ../lox

import "fmt"

// UnaryOp tags the operation performed by a unary expression.
type UnaryOp uint8

const (
	OpNegate UnaryOp = iota
	OpNot
)

// BinaryOp tags the operation performed by a binary expression.
type BinaryOp uint8

const (
	OpComma BinaryOp = iota
	OpEqual
	OpNotEqual
	OpGreater
	OpGreaterEqual
	OpLess
	OpLessEqual
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

var unaryOps = map[TokenType]UnaryOp{
	MINUS: OpNegate,
	BANG:  OpNot,
}

var binaryOps = map[TokenType]BinaryOp{
	COMMA:         OpComma,
	EQUAL_EQUAL:   OpEqual,
	BANG_EQUAL:    OpNotEqual,
	GREATER:       OpGreater,
	GREATER_EQUAL: OpGreaterEqual,
	LESS:          OpLess,
	LESS_EQUAL:    OpLessEqual,
	PLUS:          OpAdd,
	MINUS:         OpSubtract,
	STAR:          OpMultiply,
	SLASH:         OpDivide,
}

// NewUnaryExpr creates a unary expression, the operator tag is resolved from
// the operator token. Tokens that are not unary operators are a programming
// error.
func NewUnaryExpr(op *Token, expr Expr) *UnaryExpr {
	operator, ok := unaryOps[op.Typ]
	if !ok {
		panic(fmt.Sprintf("%s has no corresponding unary operator", op.Typ))
	}
	return &UnaryExpr{op, operator, expr}
}

// NewBinaryExpr creates a binary expression, the operator tag is resolved
// from the operator token. Tokens that are not binary operators are a
// programming error.
func NewBinaryExpr(op *Token, lhs Expr, rhs Expr) *BinaryExpr {
	operator, ok := binaryOps[op.Typ]
	if !ok {
		panic(fmt.Sprintf("%s has no corresponding binary operator", op.Typ))
	}
	return &BinaryExpr{op, operator, lhs, rhs}
}

func NewAssignExpr(name *Token, val Expr) *AssignExpr {
	return &AssignExpr{name, val}
}

func NewGroupExpr(expr Expr) *GroupExpr {
	return &GroupExpr{expr}
}

func NewLiteralExpr(val interface{}) *LiteralExpr {
	return &LiteralExpr{val}
}

func NewTernaryExpr(cond Expr, then Expr, els Expr) *TernaryExpr {
	return &TernaryExpr{cond, then, els}
}

func NewVarExpr(name *Token) *VarExpr {
	return &VarExpr{name}
}

func NewBlockStmt(stmts []Stmt) *BlockStmt {
	return &BlockStmt{stmts}
}

func NewBreakStmt(keyword *Token) *BreakStmt {
	return &BreakStmt{keyword}
}

func NewExprStmt(expr Expr) *ExprStmt {
	return &ExprStmt{expr}
}

func NewIfStmt(cond Expr, thenBranch Stmt, elseBranch Stmt) *IfStmt {
	return &IfStmt{cond, thenBranch, elseBranch}
}

func NewPrintStmt(expr Expr) *PrintStmt {
	return &PrintStmt{expr}
}

func NewVarStmt(name *Token, init Expr) *VarStmt {
	return &VarStmt{name, init}
}

func NewWhileStmt(cond Expr, body Stmt) *WhileStmt {
	return &WhileStmt{cond, body}
}
