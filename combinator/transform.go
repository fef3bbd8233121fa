package combinator

import "strings"

type transform struct {
	parser Parser
	fn     func(Value) Value
}

// Map delegates to p and, on success, replaces the value with fn(value).
// fn must be pure: the determinism of the whole parse depends on it.
// Consumption and failure behavior are exactly p's.
func Map(p Parser, fn func(Value) Value) Parser {
	return &transform{parser: p, fn: fn}
}

func (t *transform) Parse(st State) (Value, State, error) {
	v, next, err := t.parser.Parse(st)
	if err != nil {
		return nil, st, err
	}
	return t.fn(v), next, nil
}

// Skip delegates to p and discards its value, yielding None instead.
// Container combinators leave None out of their result lists, so Skip
// consumes input without contributing a value.
func Skip(p Parser) Parser {
	return Map(p, func(Value) Value { return None })
}

// Last reduces a List value to its final element. Scalar values pass
// through unchanged.
func Last(p Parser) Parser {
	return Map(p, func(v Value) Value {
		if l, ok := v.(List); ok && len(l) > 0 {
			return l[len(l)-1]
		}
		return v
	})
}

// Then matches a followed by b, keeping only b's value.
func Then(a, b Parser) Parser {
	return Last(Seq(a, b))
}

type concat struct {
	parser Parser
}

// Concat joins a List of strings into a single string. It fails when
// there is nothing to join, which lets CharSet-style parsers demand at
// least one character.
func Concat(p Parser) Parser {
	return &concat{parser: p}
}

func (c *concat) Parse(st State) (Value, State, error) {
	v, next, err := c.parser.Parse(st)
	if err != nil {
		return nil, st, err
	}
	var b strings.Builder
	n := 0
	if l, ok := v.(List); ok {
		for _, e := range l {
			if s, ok := e.(string); ok {
				b.WriteString(s)
				n++
			}
		}
	} else if s, ok := v.(string); ok {
		b.WriteString(s)
		n++
	}
	if n == 0 {
		return fail(st, "at least one character")
	}
	return b.String(), next, nil
}

// Flatten splices nested Lists one level deep.
func Flatten(p Parser) Parser {
	return Map(p, func(v Value) Value {
		l, ok := v.(List)
		if !ok {
			return v
		}
		out := List{}
		for _, e := range l {
			out = collect(out, e)
		}
		return out
	})
}
