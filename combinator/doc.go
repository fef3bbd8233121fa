// Package combinator provides composable parsing primitives for building
// recursive-descent parsers out of small parts.
//
// # Overview
//
// A parser is anything implementing
//
//	type Parser interface {
//	    Parse(st State) (Value, State, error)
//	}
//
// State is an immutable cursor over the input. A successful Parse
// returns a value and the advanced state; a failed Parse returns the
// state it was called with, so the caller can try something else from
// the same position. Failure is an ordinary error value (*MatchError),
// never a panic, which keeps alternation a plain conditional.
//
// Atomic parsers match input directly:
//
//	String("hello")      // a literal
//	Regex(`[a-z]+`)      // an anchored pattern
//	OneOf("+-*/")        // a single character from a set
//
// Combinators build bigger parsers from smaller ones:
//
//	Seq(a, b, c)         // all must match, in order
//	Optimistic(a, b, c)  // as many as match, at least one
//	First(a, b, c)       // first alternative that matches
//	Repeat(p, 0, 5)      // bounded repetition
//	Map(p, f)            // transform the matched value
//	Skip(p)              // consume input, discard the value
//
// # Backtracking
//
// Seq is all-or-nothing: if any child fails, the whole sequence fails
// and no consumption is visible to the caller. That is what lets an
// enclosing First retry a sibling from the same position. Optimistic
// trades this for partial progress: it stops at the first failing
// child and succeeds with whatever matched so far, which is the tool
// for optional trailing structure (see the arith package for how this
// builds operator precedence).
//
// # Values
//
// Sequence and repetition combinators produce List values. When a
// child itself produces a List, its elements are spliced into the
// parent's list, and Skip's None marker is left out entirely, so
//
//	Seq(Float(), Skip(String(" ")), NonEmptyString())
//
// applied to "1.22 abc" yields List{1.22, "abc"}.
//
// # Example
//
//	greeting := Seq(
//	    String("Hello"),
//	    Regex(`([,.]) +`),
//	    String("World"),
//	    Regex(`[.,?!]`),
//	)
//	v, rest, err := greeting.Parse(NewState("Hello, World!"))
//	// v = List{"Hello", ",", "World", "!"}, rest.AtEnd() = true
//
// # Limits
//
// Evaluation is plain unmemoized recursive descent: deeply nested
// alternation can backtrack exponentially, and left-recursive grammars
// do not terminate. Grammars with those shapes need restructuring, as
// the arith package demonstrates for left-associative operators.
//
// Parsers themselves hold no mutable state, so a parser tree may be
// shared freely between goroutines.
package combinator
