// Package wizard is the two-step campaign creation controller: collect
// input, generate a plan, let the user review it, then execute. States are
// an explicit tagged set rather than ad hoc boolean flags, and every
// transition is guarded so a slow backend call cannot race a user action.
package wizard

import (
	"context"
	"fmt"
	"sync"

	"coretas/internal/core/domain"
	"coretas/internal/core/port"
)

// State is the wizard's position in the create-campaign flow.
type State int

const (
	// StateInput is the form, collecting a PlanInput.
	StateInput State = iota
	// StateGenerating means a generate call is in flight.
	StateGenerating
	// StateReview shows the generated plan for confirmation.
	StateReview
	// StateExecuting means an execute call is in flight.
	StateExecuting
	// StateClosed is a dismissed wizard; Reopen returns it to StateInput.
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateInput:
		return "input"
	case StateGenerating:
		return "generating"
	case StateReview:
		return "review"
	case StateExecuting:
		return "executing"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// TransitionError reports an event fired from a state that does not accept
// it, e.g. confirming while generation is still in flight.
type TransitionError struct {
	Event string
	From  State
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s from %s state", e.Event, e.From)
}

// Machine drives one wizard session. It serializes transitions: at most one
// generate or execute call is in flight at a time, and a result arriving
// after the wizard was closed is discarded.
type Machine struct {
	mu      sync.Mutex
	svc     port.PlannerService
	state   State
	input   domain.PlanInput
	plan    *domain.GeneratedPlan
	lastErr error
	session uint64
}

// New creates a wizard in StateInput backed by the given planner service
// (in-process or remote; the machine does not care which).
func New(svc port.PlannerService) *Machine {
	return &Machine{svc: svc, state: StateInput}
}

// State returns the current state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Input returns the current form input.
func (m *Machine) Input() domain.PlanInput {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.input
}

// Plan returns the plan under review, if any.
func (m *Machine) Plan() (domain.GeneratedPlan, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.plan == nil {
		return domain.GeneratedPlan{}, false
	}
	return *m.plan, true
}

// Err returns the error surfaced by the last failed transition, cleared on
// the next submit or confirm.
func (m *Machine) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}

// SetInput updates the form. Only valid while collecting input.
func (m *Machine) SetInput(input domain.PlanInput) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateInput {
		return &TransitionError{Event: "edit input", From: m.state}
	}
	m.input = input
	return nil
}

// Submit runs plan generation. On success the wizard moves to review; on
// failure it returns to input with the error surfaced and the form
// preserved, so the user can fix and resubmit.
func (m *Machine) Submit(ctx context.Context) error {
	m.mu.Lock()
	if m.state != StateInput {
		defer m.mu.Unlock()
		return &TransitionError{Event: "submit", From: m.state}
	}
	input := m.input
	session := m.session
	m.state = StateGenerating
	m.lastErr = nil
	m.mu.Unlock()

	plan, err := m.svc.GeneratePlan(ctx, input)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session != session {
		// Wizard was closed while the call was in flight; drop the result.
		return nil
	}
	if err != nil {
		m.state = StateInput
		m.lastErr = err
		return err
	}
	m.plan = &plan
	m.state = StateReview
	return nil
}

// Back returns from review to input, discarding the plan. The form input
// is kept.
func (m *Machine) Back() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateReview {
		return &TransitionError{Event: "go back", From: m.state}
	}
	m.plan = nil
	m.state = StateInput
	return nil
}

// Confirm executes the reviewed plan. On success the wizard closes and the
// form resets, and the result is returned so the caller can refresh its
// campaign list. On failure the wizard stays in review with the plan
// retained, so the user can retry without regenerating.
func (m *Machine) Confirm(ctx context.Context) (*port.ExecutionResult, error) {
	m.mu.Lock()
	if m.state != StateReview || m.plan == nil {
		defer m.mu.Unlock()
		return nil, &TransitionError{Event: "confirm", From: m.state}
	}
	plan := *m.plan
	session := m.session
	m.state = StateExecuting
	m.lastErr = nil
	m.mu.Unlock()

	result, err := m.svc.ExecutePlan(ctx, plan)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session != session {
		return nil, nil
	}
	if err != nil {
		m.state = StateReview
		m.lastErr = err
		return nil, err
	}
	m.input = domain.PlanInput{}
	m.plan = nil
	m.state = StateClosed
	return result, nil
}

// Close dismisses the wizard and discards its input, plan and any result
// from a call still in flight.
func (m *Machine) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session++
	m.input = domain.PlanInput{}
	m.plan = nil
	m.lastErr = nil
	m.state = StateClosed
}

// Reopen returns a closed wizard to a fresh input form.
func (m *Machine) Reopen() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateClosed {
		return &TransitionError{Event: "reopen", From: m.state}
	}
	m.input = domain.PlanInput{}
	m.plan = nil
	m.lastErr = nil
	m.state = StateInput
	return nil
}
