// Package model holds the wizard engine: an ordered list of steps, a cursor and the data
// collected so far. A session is not safe for concurrent use; the registry serializes access.
package model

import (
	"context"
	"fmt"

	"chefbook/shared/failure"
)

// Step is one screen of a flow. IsValid decides whether the user may move past it.
type Step struct {
	ID      string
	Message string
	IsValid func(Data) bool
}

// CompleteFunc receives the final data when the user moves past the last step.
type CompleteFunc func(ctx context.Context, data Data) (any, error)

type Session struct {
	steps      []Step
	current    int
	data       Data
	onComplete CompleteFunc
	completed  bool
	result     any
}

// Start opens a session on the first step. initial is copied.
func Start(steps []Step, initial Data, onComplete CompleteFunc) (*Session, error) {
	if len(steps) == 0 {
		return nil, failure.BadRequestFromString("a wizard needs at least one step") //nolint:wrapcheck
	}

	return &Session{
		steps:      steps,
		data:       initial.Clone(),
		onComplete: onComplete,
	}, nil
}

// UpdateField merges one answer. Earlier steps are not re-validated.
func (s *Session) UpdateField(key string, value any) {
	if value == nil {
		delete(s.data, key)

		return
	}

	s.data[key] = value
}

func (s *Session) CanAdvance() bool {
	step := s.steps[s.current]

	return step.IsValid == nil || step.IsValid(s.data)
}

// Next moves forward one step. On the last step it runs the completion callback instead,
// exactly once; a failed callback leaves the session where it was so the user can retry.
func (s *Session) Next(ctx context.Context) (bool, error) {
	if s.completed {
		return true, nil
	}

	if !s.CanAdvance() {
		step := s.steps[s.current]

		msg := step.Message
		if msg == "" {
			msg = fmt.Sprintf("step %s is incomplete", step.ID)
		}

		return false, failure.Validation(msg) //nolint:wrapcheck
	}

	if s.current < len(s.steps)-1 {
		s.current++

		return false, nil
	}

	if s.onComplete != nil {
		result, err := s.onComplete(ctx, s.data.Clone())
		if err != nil {
			return false, err
		}

		s.result = result
	}

	s.completed = true

	return true, nil
}

// Back moves to the previous step. It does nothing on the first step or once completed.
func (s *Session) Back() {
	if s.current > 0 && !s.completed {
		s.current--
	}
}

func (s *Session) ProgressPercent() float64 {
	return float64(s.current+1) / float64(len(s.steps)) * 100
}

func (s *Session) CurrentIndex() int {
	return s.current
}

func (s *Session) CurrentStep() Step {
	return s.steps[s.current]
}

func (s *Session) StepCount() int {
	return len(s.steps)
}

func (s *Session) Completed() bool {
	return s.completed
}

// Result is whatever the completion callback returned.
func (s *Session) Result() any {
	return s.result
}

// Data returns a copy of the answers collected so far.
func (s *Session) Data() Data {
	return s.data.Clone()
}
