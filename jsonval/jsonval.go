// Package jsonval parses JSON text into plain Go values using only the
// combinator API: objects become map[string]any, arrays []any, numbers
// float64. String literals do not support escape sequences.
package jsonval

import (
	"fmt"

	pc "github.com/dhamidi/pcomb/combinator"
)

// value is the recursive entry into the grammar; valueRef breaks the
// construction cycle between value, array and object.
var value pc.Parser

func valueRef() pc.Parser {
	return pc.Func(func(st pc.State) (pc.Value, pc.State, error) {
		return value.Parse(st)
	})
}

func init() {
	ws := pc.Whitespace

	// A string is quotes around any run of non-quote characters,
	// including none.
	str := pc.Last(pc.Seq(
		pc.Skip(pc.String(`"`)),
		pc.First(pc.Concat(pc.Many(pc.NoneOf(`"`))), pc.Nothing()),
		pc.Skip(pc.String(`"`)),
	))

	null := pc.Map(pc.String("null"), func(pc.Value) pc.Value { return nil })
	boolean := pc.First(
		pc.Map(pc.String("true"), func(pc.Value) pc.Value { return true }),
		pc.Map(pc.String("false"), func(pc.Value) pc.Value { return false }),
	)

	// Arrays: comma-separated values, each already trimming its own
	// whitespace. The element list is converted to []any so that a
	// nested array is one element of its parent, never spliced into it.
	element := valueRef()
	midElement := pc.Last(pc.Seq(element, pc.Skip(pc.String(","))))
	array := pc.First(
		pc.Map(pc.Seq(pc.String("["), ws(), pc.String("]")), func(pc.Value) pc.Value { return []any{} }),
		pc.Map(pc.Seq(
			pc.Skip(pc.String("[")),
			pc.Many(midElement),
			element,
			pc.Skip(pc.String("]")),
		), toSlice),
	)

	// Objects: "key": value pairs. Each pair is folded into a single
	// member value before it enters the surrounding list, so pairs are
	// never spliced apart.
	separator := pc.Skip(pc.Seq(ws(), pc.String(":"), ws()))
	pair := pc.Map(pc.Seq(pc.Skip(ws()), str, separator, element), toMember)
	midPair := pc.Last(pc.Seq(pair, pc.Skip(pc.Seq(pc.String(","), ws()))))
	object := pc.First(
		pc.Map(pc.Seq(pc.String("{"), ws(), pc.String("}")), func(pc.Value) pc.Value { return map[string]any{} }),
		pc.Map(pc.Seq(
			pc.Skip(pc.String("{")),
			pc.Many(midPair),
			pair,
			pc.Skip(pc.String("}")),
		), toMap),
	)

	value = pc.Last(pc.Seq(
		pc.Skip(ws()),
		pc.First(object, array, str, boolean, null, pc.Float()),
		pc.Skip(ws()),
	))
}

type member struct {
	key string
	val any
}

func toMember(v pc.Value) pc.Value {
	l := v.(pc.List)
	return member{key: l[0].(string), val: l[1]}
}

func toSlice(v pc.Value) pc.Value {
	l := v.(pc.List)
	out := make([]any, len(l))
	copy(out, l)
	return out
}

func toMap(v pc.Value) pc.Value {
	out := map[string]any{}
	for _, e := range v.(pc.List) {
		m := e.(member)
		out[m.key] = m.val
	}
	return out
}

// Parse parses a complete JSON document. Input left over after the
// value is an error.
func Parse(input string) (any, error) {
	v, st, err := value.Parse(pc.NewState(input))
	if err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if !st.AtEnd() {
		return nil, fmt.Errorf("parse json: unexpected trailing input at offset %d", st.Pos())
	}
	return v, nil
}
