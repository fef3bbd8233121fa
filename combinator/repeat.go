package combinator

import "fmt"

// Unbounded removes the upper limit of a Repeat.
const Unbounded = -1

type repeat struct {
	parser   Parser
	min, max int
}

// Repeat applies p until it fails or max applications succeeded, and
// succeeds if at least min applications did. The value is the List of
// collected child values; the state is the one after the last
// successful application, so a failing attempt never leaks partial
// consumption. Pass Unbounded as max for no upper limit.
//
// A successful application that consumes no input is collected once
// and ends the repetition, so zero-width parsers cannot loop forever.
func Repeat(p Parser, min, max int) Parser {
	return &repeat{parser: p, min: min, max: max}
}

// Times matches exactly n consecutive applications of p.
func Times(p Parser, n int) Parser {
	return Repeat(p, n, n)
}

// Maybe matches zero or one application of p.
func Maybe(p Parser) Parser {
	return Repeat(p, 0, 1)
}

// Many matches zero or more applications of p.
func Many(p Parser) Parser {
	return Repeat(p, 0, Unbounded)
}

func (r *repeat) Parse(st State) (Value, State, error) {
	results := List{}
	cur := st
	n := 0
	for r.max < 0 || n < r.max {
		v, next, err := r.parser.Parse(cur)
		if err != nil {
			break
		}
		results = collect(results, v)
		n++
		if next.Pos() == cur.Pos() {
			break
		}
		cur = next
	}
	if n < r.min {
		return fail(st, fmt.Sprintf("at least %d repetitions, got %d", r.min, n))
	}
	return results, cur, nil
}
