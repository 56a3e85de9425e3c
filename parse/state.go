package parse

import "fmt"

// State tracks the current read position while a parser walks the input.
// A single State is threaded through every parser invocation of one parse;
// parsers advance it on success and reset it on failure. It must not be
// shared between concurrent parses.
type State struct {
	input string
	index int
}

// NewState creates a State positioned at the start of input.
func NewState(input string) *State {
	return &State{input: input}
}

// Peek returns the byte at the current position without consuming it.
// The second result is false if the input is exhausted.
func (st *State) Peek() (byte, bool) {
	if st.index >= len(st.input) {
		return 0, false
	}
	return st.input[st.index], true
}

// Next returns the byte at the current position and advances past it.
// The second result is false if the input is exhausted.
func (st *State) Next() (byte, bool) {
	b, ok := st.Peek()
	if ok {
		st.index++
	}
	return b, ok
}

// Index returns the current position as a byte offset into the input.
func (st *State) Index() int {
	return st.index
}

// Reset moves the position back to ix. Callers must only pass offsets
// they previously obtained from Index; Reset exists for backtracking,
// not for random seeking.
func (st *State) Reset(ix int) {
	st.index = ix
}

// Finished reports whether the whole input has been consumed.
func (st *State) Finished() bool {
	return st.index == len(st.input)
}

// Remaining returns the unconsumed tail of the input. Regex-based
// parsers match against this suffix instead of stepping byte by byte.
func (st *State) Remaining() string {
	if st.Finished() {
		return ""
	}
	return st.input[st.index:]
}

// String renders the input with the current position marked, which makes
// failed parses readable in error messages and test output.
func (st *State) String() string {
	if st.index < len(st.input) {
		return fmt.Sprintf("State(%s< %c >%s)", st.input[:st.index], st.input[st.index], st.input[st.index+1:])
	}
	return fmt.Sprintf("State(%s<>)", st.input)
}
