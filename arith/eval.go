package arith

import (
	"fmt"
	"math"
)

// Eval computes the value of e. Variables are looked up in vars; a
// reference to a missing variable is an error.
func Eval(e Expr, vars map[string]float64) (float64, error) {
	switch e := e.(type) {
	case Num:
		return float64(e), nil
	case Var:
		v, ok := vars[string(e)]
		if !ok {
			return 0, fmt.Errorf("eval: unknown variable %q", string(e))
		}
		return v, nil
	case BinOp:
		left, err := Eval(e.Left, vars)
		if err != nil {
			return 0, err
		}
		right, err := Eval(e.Right, vars)
		if err != nil {
			return 0, err
		}
		switch e.Op {
		case "+":
			return left + right, nil
		case "-":
			return left - right, nil
		case "*":
			return left * right, nil
		case "/":
			if right == 0 {
				return 0, fmt.Errorf("eval: division by zero")
			}
			return left / right, nil
		case "^":
			return math.Pow(left, right), nil
		default:
			return 0, fmt.Errorf("eval: unknown operator %q", e.Op)
		}
	default:
		return 0, fmt.Errorf("eval: unknown expression %T", e)
	}
}
