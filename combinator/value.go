package combinator

// Value is the semantic result of a successful parse. Atomic parsers
// produce string values, the numeric parsers produce float64 or int,
// and container combinators produce List. Map may replace a value with
// anything the grammar needs, including client-defined AST nodes.
type Value = any

// List is the value produced by sequence and repetition combinators.
type List []Value

type absent struct{}

// None is the value produced by Skip. Container combinators recognize
// it and leave it out of their collected results.
var None Value = absent{}

// collect appends a child value to a container's results. A List is
// spliced element-wise and None contributes nothing, so wrapping and
// skipping compose the way grammars expect.
func collect(acc List, v Value) List {
	switch v := v.(type) {
	case absent:
		return acc
	case List:
		return append(acc, v...)
	default:
		return append(acc, v)
	}
}
