package scs

import "fmt"

// LexError reports a tokenisation failure with its 1-based source
// position.
type LexError struct {
	Pos Position
	Msg string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("scs: error at %s: %s", e.Pos, e.Msg)
}

// SyntaxError reports a parse failure: the automaton state it occurred in,
// the offending position, and the state's expectation message.
type SyntaxError struct {
	State int
	Pos   Position
	Msg   string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("scs: syntax error at %s: %s", e.Pos, e.Msg)
}
