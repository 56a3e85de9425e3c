package parse

import (
	"errors"
	"strconv"
)

// Utility parsers built purely by composition. CanonicalInt and
// CanonicalFloat double as the reference implementations for the
// optimized Int and Float leaf parsers.

const digits = "0123456789"

// Nothing matches the empty string and always succeeds.
func Nothing() Parser {
	return Lit("")
}

// CharSet greedily matches one or more bytes from set and results in
// the matched run as a single string.
func CharSet(set string) Parser {
	return Concat(Repeat(OneOf(set), -1))
}

// CharSetExcept greedily matches one or more bytes not in set and
// results in the matched run as a single string.
func CharSetExcept(set string) Parser {
	return Concat(Repeat(NoneOf(set), -1))
}

// Whitespace matches a run of spaces, tabs and newlines, or the empty
// string. It always succeeds.
func Whitespace() Parser {
	return First(CharSet(" \n\r\t"), Nothing())
}

// Word skips leading whitespace and matches a run of word characters.
func Word() Parser {
	return Last(Seq(Whitespace(), Regex(`\w+`)))
}

// CanonicalInt is the combinator-built equivalent of Int: an optional
// minus sign followed by digits, resulting in an int64.
func CanonicalInt() Parser {
	return Map(Concat(Seq(Maybe(Lit("-")), CharSet(digits))), func(v Value) (Value, error) {
		n, err := strconv.ParseInt(v.(string), 10, 64)
		if err != nil {
			return nil, nil
		}
		return n, nil
	})
}

// CanonicalFloat is the combinator-built equivalent of Float: an
// optional minus sign, an integer part, and an optional fraction,
// resulting in a float64. The fraction is matched atomically, so a dot
// without a following digit is left unconsumed and the integer part
// alone succeeds, matching Float's behavior. Out-of-range magnitudes
// round to an infinity, also matching Float.
func CanonicalFloat() Parser {
	number := TrySeq(
		Seq(Maybe(Lit("-")), CharSet(digits)),
		Seq(Maybe(Lit(".")), CharSet(digits)),
	)
	return Map(Concat(number), func(v Value) (Value, error) {
		f, err := strconv.ParseFloat(v.(string), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, nil
		}
		return f, nil
	})
}
