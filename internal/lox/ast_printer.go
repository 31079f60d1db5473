package lox

import (
	"fmt"
	"strconv"
	"strings"
)

// AstPrinter renders syntax trees in a parenthesized prefix form, useful to
// check how the parser grouped an expression.
type AstPrinter struct{}

func (printer *AstPrinter) Print(expr Expr) string {
	switch expr := expr.(type) {
	case *AssignExpr:
		return printer.parenthesize("= "+expr.Name.Lexeme, expr.Val)
	case *BinaryExpr:
		return printer.parenthesize(expr.Op.Lexeme, expr.Lhs, expr.Rhs)
	case *GroupExpr:
		return printer.parenthesize("group", expr.Expr)
	case *LiteralExpr:
		if s, ok := expr.Val.(string); ok {
			return strconv.Quote(s)
		}
		return stringify(expr.Val)
	case *TernaryExpr:
		return printer.parenthesize("?:", expr.Cond, expr.Then, expr.Else)
	case *UnaryExpr:
		return printer.parenthesize(expr.Op.Lexeme, expr.Expr)
	case *VarExpr:
		return expr.Name.Lexeme
	}
	panic(fmt.Sprintf("Unreachable: unknown expression %T", expr))
}

func (printer *AstPrinter) PrintStmt(stmt Stmt) string {
	switch stmt := stmt.(type) {
	case *BlockStmt:
		var b strings.Builder
		b.WriteString("(block")
		for _, s := range stmt.Stmts {
			b.WriteString(" ")
			b.WriteString(printer.PrintStmt(s))
		}
		b.WriteString(")")
		return b.String()
	case *BreakStmt:
		return "(break)"
	case *ExprStmt:
		return printer.parenthesize(";", stmt.Expr)
	case *IfStmt:
		if stmt.ElseBranch == nil {
			return fmt.Sprintf(
				"(if %s %s)",
				printer.Print(stmt.Cond),
				printer.PrintStmt(stmt.ThenBranch),
			)
		}
		return fmt.Sprintf(
			"(if %s %s %s)",
			printer.Print(stmt.Cond),
			printer.PrintStmt(stmt.ThenBranch),
			printer.PrintStmt(stmt.ElseBranch),
		)
	case *PrintStmt:
		return printer.parenthesize("print", stmt.Expr)
	case *VarStmt:
		if stmt.Init == nil {
			return fmt.Sprintf("(var %s)", stmt.Name.Lexeme)
		}
		return printer.parenthesize("var "+stmt.Name.Lexeme, stmt.Init)
	case *WhileStmt:
		return fmt.Sprintf(
			"(while %s %s)",
			printer.Print(stmt.Cond),
			printer.PrintStmt(stmt.Body),
		)
	}
	panic(fmt.Sprintf("Unreachable: unknown statement %T", stmt))
}

func (printer *AstPrinter) parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(name)
	for _, expr := range exprs {
		b.WriteString(" ")
		b.WriteString(printer.Print(expr))
	}
	b.WriteString(")")
	return b.String()
}
