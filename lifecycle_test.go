package drop

import (
	"errors"
	"testing"
)

func TestStateTransitions(t *testing.T) {
	tests := []struct {
		from, to State
		ok       bool
	}{
		{StateUninitialized, StateRunning, true},
		{StateUninitialized, StatePaused, false},
		{StateUninitialized, StateDisposed, false},
		{StateRunning, StatePaused, true},
		{StateRunning, StateDisposed, true},
		{StateRunning, StateRunning, false},
		{StatePaused, StateRunning, true},
		{StatePaused, StateDisposed, true},
		{StatePaused, StatePaused, false},
		{StateDisposed, StateRunning, false},
		{StateDisposed, StateDisposed, false},
	}
	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			if got := tt.from.CanTransition(tt.to); got != tt.ok {
				t.Errorf("CanTransition = %v, want %v", got, tt.ok)
			}
			next, err := tt.from.transition(tt.to)
			if tt.ok {
				if err != nil || next != tt.to {
					t.Errorf("transition = %v, %v; want %v, nil", next, err, tt.to)
				}
				return
			}
			if !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("transition error = %v, want ErrInvalidTransition", err)
			}
			if next != tt.from {
				t.Errorf("failed transition moved state to %v", next)
			}
		})
	}
}

func TestStateString(t *testing.T) {
	if got := State(42).String(); got != "State(42)" {
		t.Errorf("State(42).String() = %q", got)
	}
}
