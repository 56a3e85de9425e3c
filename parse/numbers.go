package parse

import "strconv"

// Int and Float are hand-optimized versions of CanonicalInt and
// CanonicalFloat. Numeric literals sit on the hot path of every grammar
// in practice, and scanning digits directly is markedly faster than
// going through the generic combinators. The canonical forms stay
// around as the reference the optimized ones are tested against.

type intParser struct{}

// Int matches an optional minus sign followed by one or more digits.
// The result is the signed value as an int64. Values outside the int64
// range are no match; the sign is parsed together with the digits, so
// the asymmetric range bounds apply exactly and int64 min is accepted.
func Int() Parser {
	return intParser{}
}

func (intParser) Parse(st *State) Value {
	initial := st.Index()
	negative := scanMinus(st)
	digits := scanDigits(st)
	if digits == "" {
		st.Reset(initial)
		return nil
	}
	if negative {
		digits = "-" + digits
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		st.Reset(initial)
		return nil
	}
	return n
}

type floatParser struct{}

// Float matches a number of the form [-]ddd[.ddd]. The result is the
// signed value as a float64. A dot with no digit after it is not part
// of the number: the match ends before the dot and succeeds on the
// integer part alone, so "3." parses as 3 with the dot unconsumed.
// Magnitudes beyond the float64 range round to an infinity rather than
// failing. CanonicalFloat behaves the same way on both counts, which
// the parity tests rely on.
func Float() Parser {
	return floatParser{}
}

func (floatParser) Parse(st *State) Value {
	initial := st.Index()
	negative := scanMinus(st)
	intPart := scanDigits(st)
	if intPart == "" {
		st.Reset(initial)
		return nil
	}
	f, _ := strconv.ParseFloat(intPart, 64)
	beforeDot := st.Index()
	if b, ok := st.Peek(); ok && b == '.' {
		st.Next()
		if fracPart := scanDigits(st); fracPart != "" {
			f, _ = strconv.ParseFloat(intPart+"."+fracPart, 64)
		} else {
			st.Reset(beforeDot)
		}
	}
	if negative {
		f = -f
	}
	return f
}

func scanMinus(st *State) bool {
	if b, ok := st.Peek(); ok && b == '-' {
		st.Next()
		return true
	}
	return false
}

func scanDigits(st *State) string {
	start := st.Index()
	for {
		b, ok := st.Peek()
		if !ok || b < '0' || b > '9' {
			break
		}
		st.Next()
	}
	return st.input[start:st.Index()]
}
