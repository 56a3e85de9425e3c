// Package parse provides backtracking parser combinators for building
// recursive descent parsers by composition.
//
// # Overview
//
// A Parser attempts a match at the current position of a State and
// either succeeds, leaving the state after the consumed input, or
// fails, resetting the state to where the attempt started. Because
// every parser upholds that rollback contract, combinators like First
// and Repeat can retry alternatives freely without bookkeeping.
//
// Grammars are built from leaf parsers (Lit, OneOf, Regex, Int, Float)
// and combinators (Seq, TrySeq, Times, Repeat, First, Longest, Map and
// friends). A parser value is immutable once constructed and can be
// reused across any number of parses; the mutable position lives
// entirely in the State, one per parse.
//
// # Example
//
// A parser for comma-separated signed integers:
//
//	item := parse.Last(parse.Seq(parse.Skip(parse.Whitespace()), parse.Int()))
//	list := parse.Seq(item, parse.Repeat(parse.Seq(parse.Skip(parse.Lit(",")), item), -1))
//
//	result, _, err := parse.Run(list, "1, -2, 3")
//	// result is []parse.Value{int64(1), int64(-2), int64(3)}
//
// # Results
//
// Successful parsers produce strings, numbers, or flat []Value lists;
// nil is the universal "no match". Sequencing splices list-valued
// sub-results into its own result list instead of nesting them, and
// projections (Last, Skip, Concat, Flatten) reshape lists afterwards.
// Map attaches semantic actions; an action returning an error aborts
// the parse with a *TransformError rather than being mistaken for a
// recoverable failure.
//
// # Limits
//
// The input must be fully materialized up front; there is no streaming.
// A State is not safe for concurrent use. Error reporting is limited to
// the no-match result plus the furthest position reached, available
// from the State returned by Run.
package parse
