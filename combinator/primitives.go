package combinator

import (
	"regexp"
	"strconv"
	"strings"
)

type literal string

// String matches lit at the current position. The value is lit itself.
func String(lit string) Parser {
	return literal(lit)
}

func (l literal) Parse(st State) (Value, State, error) {
	if !strings.HasPrefix(st.Remaining(), string(l)) {
		return fail(st, strconv.Quote(string(l)))
	}
	return string(l), st.Advance(len(l)), nil
}

type regex struct {
	re      *regexp.Regexp
	pattern string
}

// Regex matches pattern against a prefix of the remaining input. The
// match is anchored at the current position, never a search, so a
// failing Regex consumes nothing.
//
// The value depends on the pattern's capture groups: no groups yields
// the full match, exactly one group yields that group's text, and more
// than one group yields a List of the group texts.
func Regex(pattern string) Parser {
	return &regex{
		re:      regexp.MustCompile(`\A(?:` + pattern + `)`),
		pattern: pattern,
	}
}

func (r *regex) Parse(st State) (Value, State, error) {
	m := r.re.FindStringSubmatch(st.Remaining())
	if m == nil {
		return fail(st, "pattern "+strconv.Quote(r.pattern))
	}
	next := st.Advance(len(m[0]))
	switch len(m) {
	case 1:
		return m[0], next, nil
	case 2:
		return m[1], next, nil
	default:
		groups := make(List, 0, len(m)-1)
		for _, g := range m[1:] {
			groups = append(groups, g)
		}
		return groups, next, nil
	}
}

type oneOf struct {
	set    string
	negate bool
}

// OneOf matches a single character contained in set.
func OneOf(set string) Parser {
	return &oneOf{set: set}
}

// NoneOf matches a single character not contained in set.
func NoneOf(set string) Parser {
	return &oneOf{set: set, negate: true}
}

func (o *oneOf) Parse(st State) (Value, State, error) {
	rest := st.Remaining()
	if len(rest) == 0 || strings.ContainsRune(o.set, rune(rest[0])) == o.negate {
		if o.negate {
			return fail(st, "character not in "+strconv.Quote(o.set))
		}
		return fail(st, "character in "+strconv.Quote(o.set))
	}
	return rest[:1], st.Advance(1), nil
}

// Nothing matches the empty string. It always succeeds and never
// consumes input.
func Nothing() Parser {
	return String("")
}

// Succeed consumes nothing and yields v.
func Succeed(v Value) Parser {
	return Func(func(st State) (Value, State, error) {
		return v, st, nil
	})
}

// Fail consumes nothing and always fails with the given reason.
func Fail(reason string) Parser {
	return Func(func(st State) (Value, State, error) {
		return fail(st, reason)
	})
}
