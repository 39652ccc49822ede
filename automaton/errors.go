package automaton

import "errors"

var (
	// ErrTokenMismatch indicates an FSM transition whose scenarios disagree
	// on the tokens handed over (counts or channel names).
	ErrTokenMismatch = errors.New("automaton: token mismatch across transition")

	// ErrNotSquare indicates a non-square scenario matrix in strict mode.
	ErrNotSquare = errors.New("automaton: scenario matrix is not square")
)
