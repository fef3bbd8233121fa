package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dhamidi/pcomb/arith"
)

// TreeEncoder renders an arith expression tree as indented JSON.
type TreeEncoder struct {
	w io.Writer
}

func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w}
}

func (e *TreeEncoder) Encode(v any) error {
	expr, ok := v.(arith.Expr)
	if !ok {
		return fmt.Errorf("encode tree: %T is not an expression", v)
	}
	text, err := json.MarshalIndent(exprToJSON(expr), "", "  ")
	if err != nil {
		return err
	}
	if _, err := e.w.Write(text); err != nil {
		return err
	}
	_, err = io.WriteString(e.w, "\n")
	return err
}

type jsonExpr struct {
	Kind  string    `json:"kind"`
	Value float64   `json:"value,omitempty"`
	Name  string    `json:"name,omitempty"`
	Op    string    `json:"op,omitempty"`
	Left  *jsonExpr `json:"left,omitempty"`
	Right *jsonExpr `json:"right,omitempty"`
}

func exprToJSON(e arith.Expr) *jsonExpr {
	switch e := e.(type) {
	case arith.Num:
		return &jsonExpr{Kind: "number", Value: float64(e)}
	case arith.Var:
		return &jsonExpr{Kind: "variable", Name: string(e)}
	case arith.BinOp:
		return &jsonExpr{
			Kind:  "binary",
			Op:    e.Op,
			Left:  exprToJSON(e.Left),
			Right: exprToJSON(e.Right),
		}
	default:
		return &jsonExpr{Kind: fmt.Sprintf("%T", e)}
	}
}
