package combinator

import (
	"strconv"
	"strings"
)

// CharSet matches one or more consecutive characters from set and
// yields them as a single string.
func CharSet(set string) Parser {
	return Concat(Many(OneOf(set)))
}

// Whitespace matches a run of spaces, tabs and newlines, or the empty
// string. It never fails.
func Whitespace() Parser {
	return First(CharSet(" \n\r\t"), Nothing())
}

// NonEmptyString skips leading whitespace and matches a word of one or
// more letters, digits or underscores.
func NonEmptyString() Parser {
	return Then(Whitespace(), Regex(`\w+`))
}

const digits = "0123456789"

type floatParser struct{}

// Float matches an optionally signed decimal number like -12 or 3.25,
// skipping leading whitespace, and yields a float64. It scans by hand
// instead of composing combinators; see CanonicalFloat for the
// reference formulation.
func Float() Parser {
	return floatParser{}
}

func (floatParser) Parse(st State) (Value, State, error) {
	rest := st.Remaining()
	i := 0
	for i < len(rest) && isSpace(rest[i]) {
		i++
	}
	j := i
	if j < len(rest) && rest[j] == '-' {
		j++
	}
	start := j
	for j < len(rest) && isDigit(rest[j]) {
		j++
	}
	if j == start {
		return fail(st, "a number")
	}
	if j+1 < len(rest) && rest[j] == '.' && isDigit(rest[j+1]) {
		j++
		for j < len(rest) && isDigit(rest[j]) {
			j++
		}
	}
	f, err := strconv.ParseFloat(rest[i:j], 64)
	if err != nil {
		return fail(st, "a number")
	}
	return f, st.Advance(j), nil
}

type intParser struct{}

// Int matches an optionally signed run of digits, skipping leading
// whitespace, and yields an int.
func Int() Parser {
	return intParser{}
}

func (intParser) Parse(st State) (Value, State, error) {
	rest := st.Remaining()
	i := 0
	for i < len(rest) && isSpace(rest[i]) {
		i++
	}
	j := i
	if j < len(rest) && rest[j] == '-' {
		j++
	}
	start := j
	for j < len(rest) && isDigit(rest[j]) {
		j++
	}
	if j == start {
		return fail(st, "an integer")
	}
	n, err := strconv.Atoi(rest[i:j])
	if err != nil {
		return fail(st, "an integer")
	}
	return n, st.Advance(j), nil
}

// CanonicalFloat is Float expressed purely in combinators. Float is
// the faster equivalent; the two are kept in agreement by tests.
func CanonicalFloat() Parser {
	digitRun := CharSet(digits)
	number := Optimistic(
		Seq(Maybe(String("-")), digitRun),
		Seq(String("."), digitRun),
	)
	return Map(Seq(Skip(Whitespace()), number), func(v Value) Value {
		var b strings.Builder
		for _, part := range v.(List) {
			b.WriteString(part.(string))
		}
		f, _ := strconv.ParseFloat(b.String(), 64)
		return f
	})
}

// CanonicalInt is Int expressed purely in combinators.
func CanonicalInt() Parser {
	number := Concat(Seq(Maybe(String("-")), CharSet(digits)))
	return Map(Seq(Skip(Whitespace()), number), func(v Value) Value {
		n, _ := strconv.Atoi(v.(List)[0].(string))
		return n
	})
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
