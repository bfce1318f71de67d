// Package tables translates an automaton.Automaton into the ACTION and GOTO
// tables that drive an LR(1) parse, detecting shift/reduce and
// reduce/reduce conflicts along the way.
package tables

import "fmt"

// ActionKind distinguishes the three action forms the driver understands.
type ActionKind int8

const (
	// Shift pushes the lookahead terminal and moves to Operand, a target
	// state id.
	Shift ActionKind = iota
	// Reduce pops |RHS| stack entries and reduces by the production whose
	// 0-based serial is Operand.
	Reduce
	// Accept is the distinguished action for the augmented item
	// [S' -> S·, #].
	Accept
)

// Action is a single ACTION table cell: either a shift to a state, a reduce
// by a production, or accept.
type Action struct {
	Kind    ActionKind
	Operand int // target state id for Shift, production serial for Reduce
}

func (a Action) String() string {
	switch a.Kind {
	case Shift:
		return fmt.Sprintf("s%d", a.Operand)
	case Accept:
		return "acc"
	case Reduce:
		// production serials are 0-based internally; the persisted table
		// format numbers reduce actions from 1, so r1 means "reduce by
		// production 0".
		return fmt.Sprintf("r%d", a.Operand+1)
	default:
		return "?"
	}
}

// Equal reports whether two actions denote the same table entry.
func (a Action) Equal(other Action) bool {
	return a.Kind == other.Kind && a.Operand == other.Operand
}
