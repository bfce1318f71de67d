package tables

import "fmt"

// ConflictError reports that two distinct actions were proposed for the same
// (state, terminal) cell of the ACTION table: the grammar is not LR(1).
// The table builder stops at the first conflict found; it never silently
// prefers shift over reduce or vice versa.
type ConflictError struct {
	State    int
	Terminal string
	Existing Action
	Proposed Action
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("grammar is not LR(1): conflict in state %d on terminal %q: %s vs %s",
		e.State, e.Terminal, e.Existing, e.Proposed)
}

func conflictErrorf(state int, terminal string, existing, proposed Action) *ConflictError {
	return &ConflictError{State: state, Terminal: terminal, Existing: existing, Proposed: proposed}
}
