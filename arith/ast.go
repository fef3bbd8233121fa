// Package arith parses arithmetic expressions into an AST, built
// entirely on the combinator API. It supports +, -, *, / and ^ with
// the usual precedence, parentheses, float literals and variables.
package arith

import (
	"fmt"
	"strconv"
)

// Expr is the interface implemented by all expression nodes.
type Expr interface {
	expr()
	String() string
}

// Num is a numeric literal.
type Num float64

func (Num) expr() {}

func (n Num) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

// Var is a variable reference.
type Var string

func (Var) expr() {}

func (v Var) String() string {
	return string(v)
}

// BinOp is a binary operation. Op is one of "+", "-", "*", "/", "^".
type BinOp struct {
	Op    string
	Left  Expr
	Right Expr
}

func (BinOp) expr() {}

func (b BinOp) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}
