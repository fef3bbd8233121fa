package combinator

import "fmt"

// State is an immutable cursor over an input string. Advancing produces a
// new State; the old one stays valid, which is what makes backtracking a
// matter of holding on to an earlier value.
type State struct {
	source string
	pos    int
}

// NewState returns a State positioned at the start of input.
func NewState(input string) State {
	return State{source: input}
}

// Advance returns a copy of s moved n bytes forward. Combinators only
// advance by amounts they verified were consumable; anything else is a
// bug in the caller.
func (s State) Advance(n int) State {
	if n < 0 || s.pos+n > len(s.source) {
		panic(fmt.Sprintf("combinator: advance by %d from offset %d exceeds input of length %d", n, s.pos, len(s.source)))
	}
	return State{source: s.source, pos: s.pos + n}
}

// Remaining returns the unconsumed suffix of the input.
func (s State) Remaining() string {
	return s.source[s.pos:]
}

// AtEnd reports whether the entire input has been consumed.
func (s State) AtEnd() bool {
	return s.pos == len(s.source)
}

// Pos returns the current byte offset into the input.
func (s State) Pos() int {
	return s.pos
}

// Source returns the full original input.
func (s State) Source() string {
	return s.source
}

// String renders the state with the cursor position marked, e.g.
// "Hello< ,> World!" for offset 5 of "Hello, World!".
func (s State) String() string {
	if s.AtEnd() {
		return fmt.Sprintf("%s<>", s.source)
	}
	return fmt.Sprintf("%s< %c >%s", s.source[:s.pos], s.source[s.pos], s.source[s.pos+1:])
}
