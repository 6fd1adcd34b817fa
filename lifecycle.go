package drop

import (
	"errors"
	"fmt"
)

// State is a stage of the game's application lifecycle.
type State uint8

const (
	StateUninitialized State = iota // constructed, assets not loaded
	StateRunning                    // frames update and draw
	StatePaused                     // frames are skipped
	StateDisposed                   // resources released; terminal
)

// String returns the state name used in logs and errors.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateDisposed:
		return "disposed"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// ErrInvalidTransition is wrapped by errors from illegal lifecycle changes.
var ErrInvalidTransition = errors.New("invalid lifecycle transition")

// transitions lists the legal target states for each state.
var transitions = map[State][]State{
	StateUninitialized: {StateRunning},
	StateRunning:       {StatePaused, StateDisposed},
	StatePaused:        {StateRunning, StateDisposed},
}

// CanTransition reports whether moving from s to next is legal.
func (s State) CanTransition(next State) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// transition returns next if the move is legal, or an error wrapping
// ErrInvalidTransition.
func (s State) transition(next State) (State, error) {
	if !s.CanTransition(next) {
		return s, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, next)
	}
	return next, nil
}
