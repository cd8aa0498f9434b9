package core

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

var ErrIllegalTransition error = errors.New("illegal action transition")

type ActionState string

const (
	StateIdle       ActionState = "idle"
	StateValidating ActionState = "validating"
	StateSigning    ActionState = "signing"
	StateSubmitted  ActionState = "submitted"
	StateConfirmed  ActionState = "confirmed"
	StateReconciled ActionState = "reconciled"
	StateReverted   ActionState = "reverted"
	StateDropped    ActionState = "dropped"
)

var transitions = map[ActionState][]ActionState{
	StateIdle:       {StateValidating},
	StateValidating: {StateSigning, StateIdle},
	StateSigning:    {StateSubmitted, StateIdle},
	StateSubmitted:  {StateConfirmed, StateReverted, StateDropped},
	StateConfirmed:  {StateReconciled},
	StateReconciled: {StateIdle},
	StateReverted:   {StateIdle},
	StateDropped:    {StateIdle},
}

// Action is the lifecycle of one user initiated action. Once back in Idle
// it is finished; a retry is a new Action.
type Action struct {
	mu      sync.RWMutex
	state   ActionState
	history []ActionState
}

func NewAction() *Action {
	return &Action{
		state:   StateIdle,
		history: []ActionState{StateIdle},
	}
}

func (a *Action) State() ActionState {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}

func (a *Action) History() []ActionState {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return slices.Clone(a.history)
}

func (a *Action) Transition(to ActionState) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.history) > 1 && a.state == StateIdle {
		return fmt.Errorf("%w: action already finished", ErrIllegalTransition)
	}
	if !slices.Contains(transitions[a.state], to) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, a.state, to)
	}
	a.state = to
	a.history = append(a.history, to)
	return nil
}
