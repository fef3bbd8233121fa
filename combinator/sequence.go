package combinator

// A sequence applies its children in order against the running state.
// The atomic flag selects between all-or-nothing and best-effort
// behavior; see Seq and Optimistic.
type sequence struct {
	parsers []Parser
	atomic  bool
}

// Seq applies each parser in order and succeeds only if all of them
// succeed. The value is the List of child values in match order, with
// List results spliced in and Skip results left out. If any child
// fails, Seq fails as a whole and reports the state it started from:
// no partial consumption is observable to the caller.
func Seq(parsers ...Parser) Parser {
	return &sequence{parsers: parsers, atomic: true}
}

// Optimistic applies each parser in order and stops at the first one
// that fails, succeeding with the values gathered so far and the state
// reached so far. It fails only when the very first child fails, i.e.
// when nothing at all matched.
func Optimistic(parsers ...Parser) Parser {
	return &sequence{parsers: parsers}
}

func (s *sequence) Parse(st State) (Value, State, error) {
	results := List{}
	cur := st
	matched := 0
	for _, p := range s.parsers {
		v, next, err := p.Parse(cur)
		if err != nil {
			if s.atomic {
				return nil, st, err
			}
			if matched == 0 {
				return nil, st, err
			}
			return results, cur, nil
		}
		results = collect(results, v)
		cur = next
		matched++
	}
	return results, cur, nil
}
