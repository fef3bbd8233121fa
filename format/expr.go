package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/dhamidi/pcomb/arith"
)

var (
	operatorColor = color.New(color.FgYellow).SprintFunc()
	numberColor   = color.New(color.FgCyan).SprintFunc()
	variableColor = color.New(color.FgGreen).SprintFunc()
)

// ExprEncoder renders an arith expression tree in fully parenthesized
// form, with operators, numbers and variables colored when the output
// supports it.
type ExprEncoder struct {
	w io.Writer
}

func NewExprEncoder(w io.Writer) *ExprEncoder {
	return &ExprEncoder{w: w}
}

func (e *ExprEncoder) Encode(v any) error {
	expr, ok := v.(arith.Expr)
	if !ok {
		return fmt.Errorf("encode expression: %T is not an expression", v)
	}
	var b strings.Builder
	writeExpr(&b, expr)
	b.WriteString("\n")
	_, err := io.WriteString(e.w, b.String())
	return err
}

func writeExpr(b *strings.Builder, e arith.Expr) {
	switch e := e.(type) {
	case arith.Num:
		b.WriteString(numberColor(e.String()))
	case arith.Var:
		b.WriteString(variableColor(e.String()))
	case arith.BinOp:
		b.WriteString("(")
		writeExpr(b, e.Left)
		b.WriteString(" ")
		b.WriteString(operatorColor(e.Op))
		b.WriteString(" ")
		writeExpr(b, e.Right)
		b.WriteString(")")
	default:
		b.WriteString(e.String())
	}
}
