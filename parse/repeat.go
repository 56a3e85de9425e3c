package parse

type repetition struct {
	parser Parser
	times  int
	strict bool
}

// Times requires exactly n matches of p. The result is the flat list of
// the n sub-results; fewer than n matches fail the whole repetition and
// reset the state to before the first attempt.
func Times(p Parser, n int) Parser {
	return &repetition{parser: p, times: n, strict: true}
}

// Repeat greedily matches p up to n times, or without bound if n is
// negative. It always succeeds, stopping at the first failure and
// keeping whatever matched so far (possibly nothing).
//
// An unbounded Repeat stops after the first iteration that succeeds
// without consuming input. Without that guard, wrapping a parser that
// can succeed on the empty string would never terminate.
func Repeat(p Parser, n int) Parser {
	return &repetition{parser: p, times: n}
}

// Maybe matches p zero or one times. It is Repeat(p, 1).
func Maybe(p Parser) Parser {
	return Repeat(p, 1)
}

func (r *repetition) Parse(st *State) Value {
	results := []Value{}
	initial := st.Index()
	for i := 0; i < r.times || r.times < 0; i++ {
		before := st.Index()
		v := r.parser.Parse(st)
		if v == nil {
			if r.strict {
				st.Reset(initial)
				return nil
			}
			return results
		}
		results = extend(results, v)
		if r.times < 0 && st.Index() == before {
			return results
		}
	}
	return results
}
