package arith

import (
	"fmt"

	pc "github.com/dhamidi/pcomb/combinator"
)

// The grammar encodes precedence as nesting depth, with each level
// recursing to the right through an optimistic sequence: a term is a
// product optionally followed by "+" or "-" and another term, and so
// on down to atoms. When the operator half is missing the optimistic
// sequence yields just the left operand, which falls through toExpr
// unchanged. Left recursion is avoided by construction.

var term pc.Parser

func termRef() pc.Parser {
	return pc.Func(func(st pc.State) (pc.Value, pc.State, error) {
		return term.Parse(st)
	})
}

var product pc.Parser

func productRef() pc.Parser {
	return pc.Func(func(st pc.State) (pc.Value, pc.State, error) {
		return product.Parse(st)
	})
}

func init() {
	variable := pc.Map(
		pc.Then(pc.Whitespace(), pc.Regex(`[a-zA-Z]+[0-9]*`)),
		func(v pc.Value) pc.Value { return Var(v.(string)) },
	)
	number := pc.Map(pc.Float(), func(v pc.Value) pc.Value { return Num(v.(float64)) })

	parens := pc.Map(pc.Seq(operator("("), termRef(), operator(")")),
		func(v pc.Value) pc.Value { return v.(pc.List)[1] })

	atom := pc.First(variable, parens, number)

	power := pc.Map(
		pc.Optimistic(atom, pc.Seq(operator("^"), atom)),
		toExpr,
	)
	product = pc.Map(
		pc.Optimistic(power, pc.Seq(operator("*/"), productRef())),
		toExpr,
	)
	term = pc.Map(
		pc.Optimistic(product, pc.Seq(operator("+-"), termRef())),
		toExpr,
	)
}

// operator matches a single operator character from set, skipping
// leading whitespace.
func operator(set string) pc.Parser {
	return pc.Last(pc.Seq(pc.Skip(pc.Whitespace()), pc.OneOf(set)))
}

// toExpr folds an optimistic-sequence result into an expression: one
// element is a bare operand, three are an operator application.
func toExpr(v pc.Value) pc.Value {
	l, ok := v.(pc.List)
	if !ok {
		return v
	}
	switch len(l) {
	case 1:
		return l[0]
	case 3:
		return BinOp{Op: l[1].(string), Left: l[0].(Expr), Right: l[2].(Expr)}
	default:
		return v
	}
}

// Parse parses a complete expression. Anything but whitespace left
// over after the expression is an error.
func Parse(input string) (Expr, error) {
	v, st, err := term.Parse(pc.NewState(input))
	if err != nil {
		return nil, fmt.Errorf("parse expression: %w", err)
	}
	if _, rest, werr := pc.Whitespace().Parse(st); werr == nil {
		st = rest
	}
	if !st.AtEnd() {
		return nil, fmt.Errorf("parse expression: unexpected trailing input at offset %d", st.Pos())
	}
	e, ok := v.(Expr)
	if !ok {
		return nil, fmt.Errorf("parse expression: malformed result %v", v)
	}
	return e, nil
}
