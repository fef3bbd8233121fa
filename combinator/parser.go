package combinator

import "fmt"

// Parser is implemented by every atomic parser and combinator.
//
// On success Parse returns the semantic value, the state after the
// consumed input, and a nil error. On failure it returns a nil value,
// the state it was called with (so the caller can try an alternative
// from the same position), and a *MatchError describing where and why
// matching stopped.
type Parser interface {
	Parse(st State) (Value, State, error)
}

// Func adapts an ordinary function to the Parser interface.
type Func func(st State) (Value, State, error)

func (f Func) Parse(st State) (Value, State, error) {
	return f(st)
}

// MatchError reports that a parser stopped matching. At is the state
// where matching stopped, which may be further along than the state the
// failing parser returned to its caller.
type MatchError struct {
	At       State
	Expected string
}

func (e *MatchError) Error() string {
	return fmt.Sprintf("expected %s at offset %d", e.Expected, e.At.Pos())
}

func fail(st State, expected string) (Value, State, error) {
	return nil, st, &MatchError{At: st, Expected: expected}
}
