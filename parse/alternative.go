package parse

type firstAlternative struct {
	parsers []Parser
}

// First tries parsers in order from the same starting position and
// returns the result of the first one that matches. If none match, the
// state is reset to the starting position and the alternation fails.
func First(parsers ...Parser) Parser {
	return &firstAlternative{parsers: parsers}
}

func (a *firstAlternative) Parse(st *State) Value {
	initial := st.Index()
	for _, p := range a.parsers {
		if v := p.Parse(st); v != nil {
			return v
		}
		st.Reset(initial)
	}
	return nil
}

type longestAlternative struct {
	parsers []Parser
}

// Longest tries every parser from the same starting position and keeps
// the one that consumed the most input. Ties go to the parser declared
// earliest, so reordering alternatives of equal length is observable
// and declaration order is a meaningful part of the grammar.
func Longest(parsers ...Parser) Parser {
	return &longestAlternative{parsers: parsers}
}

func (a *longestAlternative) Parse(st *State) Value {
	initial := st.Index()
	bestLength := -1
	var bestResult Value
	for _, p := range a.parsers {
		v := p.Parse(st)
		if v == nil {
			st.Reset(initial)
			continue
		}
		if length := st.Index() - initial; length > bestLength {
			bestLength = length
			bestResult = v
		}
		st.Reset(initial)
	}
	if bestLength < 0 {
		st.Reset(initial)
		return nil
	}
	st.Reset(initial + bestLength)
	return bestResult
}
