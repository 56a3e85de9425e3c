package parse

type sequence struct {
	parsers []Parser
	atomic  bool
}

// Seq runs parsers in order and requires every one of them to match.
// The result is the flat list of sub-results. If any parser fails the
// whole sequence fails and the state is reset to before the first
// parser ran.
func Seq(parsers ...Parser) Parser {
	return &sequence{parsers: parsers, atomic: true}
}

// TrySeq runs parsers in order as far as they match. The first failure
// stops the sequence, which succeeds with the results accumulated up to
// that point and leaves the state after the last successful parser.
// Matching zero parsers still succeeds, with an empty result list.
func TrySeq(parsers ...Parser) Parser {
	return &sequence{parsers: parsers}
}

func (s *sequence) Parse(st *State) Value {
	results := []Value{}
	initial := st.Index()
	for _, p := range s.parsers {
		before := st.Index()
		v := p.Parse(st)
		if v == nil {
			if s.atomic {
				st.Reset(initial)
				return nil
			}
			st.Reset(before)
			break
		}
		results = extend(results, v)
	}
	return results
}
