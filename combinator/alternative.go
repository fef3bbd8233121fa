package combinator

type firstAlternative struct {
	parsers []Parser
}

// First tries each parser in declaration order from the same starting
// state and returns the first success exactly as that child produced
// it. Order is the disambiguation rule: there is no longest-match
// preference. First fails only when every child fails, reporting the
// starting state.
func First(parsers ...Parser) Parser {
	return &firstAlternative{parsers: parsers}
}

func (a *firstAlternative) Parse(st State) (Value, State, error) {
	var lastErr error
	for _, p := range a.parsers {
		v, next, err := p.Parse(st)
		if err == nil {
			return v, next, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		return fail(st, "at least one alternative")
	}
	return nil, st, lastErr
}

type longestAlternative struct {
	parsers []Parser
}

// Longest tries every parser from the same starting state and returns
// the match that consumed the most input. Earlier parsers win ties.
func Longest(parsers ...Parser) Parser {
	return &longestAlternative{parsers: parsers}
}

func (a *longestAlternative) Parse(st State) (Value, State, error) {
	var (
		best      Value
		bestState State
		found     bool
		lastErr   error
	)
	for _, p := range a.parsers {
		v, next, err := p.Parse(st)
		if err != nil {
			lastErr = err
			continue
		}
		if !found || next.Pos() > bestState.Pos() {
			best, bestState, found = v, next, true
		}
	}
	if !found {
		if lastErr == nil {
			return fail(st, "at least one alternative")
		}
		return nil, st, lastErr
	}
	return best, bestState, nil
}
