package lox

import (
	"fmt"
	"io"
)

// flow tells the enclosing statements how execution of a statement ended.
// Runtime errors travel separately as the error result.
type flow int

const (
	flowNormal flow = iota
	flowBreak
)

// Interpreter evaluates Lox syntax trees. Its global environment persists
// across calls to Interpret.
type Interpreter struct {
	environment *Environment
	output      io.Writer
	echo        bool
}

// InterpreterOption configures an Interpreter
type InterpreterOption func(*Interpreter)

// WithEcho makes the interpreter print the value of every expression
// statement that is not an assignment, the way a REPL does.
func WithEcho(echo bool) InterpreterOption {
	return func(in *Interpreter) {
		in.echo = echo
	}
}

// NewInterpreter creates a new interpreter printing to output
func NewInterpreter(output io.Writer, opts ...InterpreterOption) *Interpreter {
	in := &Interpreter{environment: NewEnvironment(nil), output: output}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Interpret executes the statements in order. The first runtime error stops
// the execution and is returned.
func (in *Interpreter) Interpret(statements []Stmt) error {
	for _, stmt := range statements {
		if _, err := in.exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) exec(stmt Stmt) (flow, error) {
	switch stmt := stmt.(type) {
	case *BlockStmt:
		return in.execBlock(stmt.Stmts, NewEnvironment(in.environment))
	case *BreakStmt:
		return flowBreak, nil
	case *ExprStmt:
		return in.execExpr(stmt)
	case *IfStmt:
		return in.execIf(stmt)
	case *PrintStmt:
		val, err := in.eval(stmt.Expr)
		if err != nil {
			return flowNormal, err
		}
		fmt.Fprintln(in.output, stringify(val))
		return flowNormal, nil
	case *VarStmt:
		var initVal interface{}
		if stmt.Init != nil {
			var err error
			if initVal, err = in.eval(stmt.Init); err != nil {
				return flowNormal, err
			}
		}
		in.environment.Define(stmt.Name.Lexeme, initVal)
		return flowNormal, nil
	case *WhileStmt:
		return in.execWhile(stmt)
	}
	panic(fmt.Sprintf("Unreachable: unknown statement %T", stmt))
}

func (in *Interpreter) execExpr(stmt *ExprStmt) (flow, error) {
	val, err := in.eval(stmt.Expr)
	if err != nil {
		return flowNormal, err
	}
	if in.echo {
		if _, ok := stmt.Expr.(*AssignExpr); !ok {
			fmt.Fprintln(in.output, stringify(val))
		}
	}
	return flowNormal, nil
}

func (in *Interpreter) execIf(stmt *IfStmt) (flow, error) {
	cond, err := in.eval(stmt.Cond)
	if err != nil {
		return flowNormal, err
	}
	if isTruthy(cond) {
		return in.exec(stmt.ThenBranch)
	}
	if stmt.ElseBranch != nil {
		return in.exec(stmt.ElseBranch)
	}
	return flowNormal, nil
}

func (in *Interpreter) execWhile(stmt *WhileStmt) (flow, error) {
	for {
		cond, err := in.eval(stmt.Cond)
		if err != nil {
			return flowNormal, err
		}
		if !isTruthy(cond) {
			return flowNormal, nil
		}
		signal, err := in.exec(stmt.Body)
		if err != nil {
			return flowNormal, err
		}
		// the break stops this loop only
		if signal == flowBreak {
			return flowNormal, nil
		}
	}
}

// execBlock runs the statements inside the given environment, the previous
// environment is restored however the block is left.
func (in *Interpreter) execBlock(statements []Stmt, environment *Environment) (flow, error) {
	previous := in.environment
	in.environment = environment
	defer func() {
		in.environment = previous
	}()
	for _, stmt := range statements {
		signal, err := in.exec(stmt)
		if err != nil || signal == flowBreak {
			return signal, err
		}
	}
	return flowNormal, nil
}

func (in *Interpreter) eval(expr Expr) (interface{}, error) {
	switch expr := expr.(type) {
	case *AssignExpr:
		val, err := in.eval(expr.Val)
		if err != nil {
			return nil, err
		}
		if err := in.environment.Assign(expr.Name, val); err != nil {
			return nil, err
		}
		return val, nil
	case *BinaryExpr:
		return in.evalBinary(expr)
	case *GroupExpr:
		return in.eval(expr.Expr)
	case *LiteralExpr:
		return expr.Val, nil
	case *TernaryExpr:
		cond, err := in.eval(expr.Cond)
		if err != nil {
			return nil, err
		}
		if isTruthy(cond) {
			return in.eval(expr.Then)
		}
		return in.eval(expr.Else)
	case *UnaryExpr:
		return in.evalUnary(expr)
	case *VarExpr:
		return in.environment.Get(expr.Name)
	}
	panic(fmt.Sprintf("Unreachable: unknown expression %T", expr))
}

func (in *Interpreter) evalUnary(expr *UnaryExpr) (interface{}, error) {
	val, err := in.eval(expr.Expr)
	if err != nil {
		return nil, err
	}

	switch expr.Operator {
	case OpNot:
		return !isTruthy(val), nil
	case OpNegate:
		if num, ok := val.(float64); ok {
			return -num, nil
		}
		return nil, NewRuntimeError(expr.Op, "Operand must be a number.")
	}
	panic("Unreachable")
}

func (in *Interpreter) evalBinary(expr *BinaryExpr) (interface{}, error) {
	lhs, err := in.eval(expr.Lhs)
	if err != nil {
		return nil, err
	}
	rhs, err := in.eval(expr.Rhs)
	if err != nil {
		return nil, err
	}

	switch expr.Operator {
	case OpComma:
		return rhs, nil

	case OpEqual:
		return isEqual(lhs, rhs), nil

	case OpNotEqual:
		return !isEqual(lhs, rhs), nil

	case OpGreater, OpGreaterEqual, OpLess, OpLessEqual:
		return compare(expr.Op, expr.Operator, lhs, rhs)

	case OpAdd:
		leftStr, okLeftStr := lhs.(string)
		rightStr, okRightStr := rhs.(string)
		leftNum, okLeftNum := lhs.(float64)
		rightNum, okRightNum := rhs.(float64)
		switch {
		case okLeftNum && okRightNum:
			return leftNum + rightNum, nil
		case okLeftStr && okRightStr:
			return leftStr + rightStr, nil
		case okLeftStr && okRightNum:
			return leftStr + stringify(rightNum), nil
		case okLeftNum && okRightStr:
			return stringify(leftNum) + rightStr, nil
		}
		return nil, NewRuntimeError(
			expr.Op,
			"Operands must be two numbers or at least one string and one number.",
		)

	case OpSubtract, OpMultiply, OpDivide:
		leftNum, okLeftNum := lhs.(float64)
		rightNum, okRightNum := rhs.(float64)
		if !okLeftNum || !okRightNum {
			return nil, NewRuntimeError(expr.Op, "Operands must be numbers.")
		}
		switch expr.Operator {
		case OpSubtract:
			return leftNum - rightNum, nil
		case OpMultiply:
			return leftNum * rightNum, nil
		}
		if rightNum == 0 {
			return nil, NewRuntimeError(expr.Op, "Division by zero.")
		}
		return leftNum / rightNum, nil
	}
	panic("Unreachable")
}

// compare applies a relational operator to two numbers or two strings.
func compare(op *Token, operator BinaryOp, lhs, rhs interface{}) (interface{}, error) {
	switch l := lhs.(type) {
	case float64:
		if r, ok := rhs.(float64); ok {
			return compareOrdered(operator, l, r), nil
		}
	case string:
		if r, ok := rhs.(string); ok {
			return compareOrdered(operator, l, r), nil
		}
	}
	return nil, NewRuntimeError(op, "Operands must be two numbers or two strings.")
}

func compareOrdered[T float64 | string](operator BinaryOp, lhs, rhs T) bool {
	switch operator {
	case OpGreater:
		return lhs > rhs
	case OpGreaterEqual:
		return lhs >= rhs
	case OpLess:
		return lhs < rhs
	case OpLessEqual:
		return lhs <= rhs
	}
	panic("Unreachable")
}
