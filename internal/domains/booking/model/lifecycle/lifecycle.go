// Package lifecycle is the booking status state machine. Transition never mutates its input;
// persisting the result atomically is the caller's job.
package lifecycle

import (
	"fmt"
	"slices"
	"time"

	"chefbook/shared/failure"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}

	return false
}

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type Action string

const (
	ActionAccept   Action = "accept"
	ActionComplete Action = "complete"
	ActionDecline  Action = "decline"
	ActionCancel   Action = "cancel"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleChef     Role = "chef"
)

const DefaultCancelCutoff = 24 * time.Hour

// Policy holds the tunable rules. A non-positive CancelCutoff means DefaultCancelCutoff.
type Policy struct {
	CancelCutoff time.Duration
}

func (p Policy) cutoff() time.Duration {
	if p.CancelCutoff <= 0 {
		return DefaultCancelCutoff
	}

	return p.CancelCutoff
}

// Booking is the slice of a booking record the rules look at.
type Booking struct {
	ID         string
	CustomerID string
	ChefID     string
	Status     Status
	StartsAt   time.Time
	UpdatedAt  time.Time
}

type IntentKind string

const (
	IntentRequested IntentKind = "booking_requested"
	IntentConfirmed IntentKind = "booking_confirmed"
	IntentDeclined  IntentKind = "booking_declined"
	IntentCancelled IntentKind = "booking_cancelled"
	IntentCompleted IntentKind = "booking_completed"
)

// Intent describes the notification owed to the other party after a change.
type Intent struct {
	Kind      IntentKind `json:"kind"`
	Recipient string     `json:"recipient"`
	BookingID string     `json:"booking_id"`
	From      Status     `json:"from,omitempty"`
	To        Status     `json:"to"`
	Actor     Role       `json:"actor"`
	At        time.Time  `json:"at"`
}

type rule struct {
	roles  []Role
	from   []Status
	to     Status
	intent IntentKind
}

var rules = map[Action]rule{
	ActionAccept:   {roles: []Role{RoleChef}, from: []Status{StatusPending}, to: StatusConfirmed, intent: IntentConfirmed},
	ActionComplete: {roles: []Role{RoleChef}, from: []Status{StatusConfirmed}, to: StatusCompleted, intent: IntentCompleted},
	ActionDecline:  {roles: []Role{RoleChef}, from: []Status{StatusPending}, to: StatusCancelled, intent: IntentDeclined},
	ActionCancel:   {roles: []Role{RoleCustomer, RoleChef}, from: []Status{StatusPending, StatusConfirmed}, to: StatusCancelled, intent: IntentCancelled},
}

// Transition applies action on behalf of actor at now. On failure the zero Booking is returned
// with an InvalidTransition or Unauthorized failure.
func Transition(b Booking, action Action, actor Role, now time.Time, policy Policy) (Booking, Intent, error) {
	r, ok := rules[action]
	if !ok {
		return Booking{}, Intent{}, failure.InvalidTransition(fmt.Sprintf("unknown action %q", action))
	}

	if b.Status.Terminal() {
		return Booking{}, Intent{}, failure.InvalidTransition(fmt.Sprintf("booking is %s and can no longer change", b.Status))
	}

	if !slices.Contains(r.roles, actor) {
		return Booking{}, Intent{}, failure.RoleNotPermitted(fmt.Sprintf("%s may not %s a booking", roleName(actor), action))
	}

	if !slices.Contains(r.from, b.Status) {
		return Booking{}, Intent{}, failure.InvalidTransition(fmt.Sprintf("cannot %s a %s booking", action, b.Status))
	}

	switch action {
	case ActionComplete:
		if now.Before(b.StartsAt) {
			return Booking{}, Intent{}, failure.InvalidTransition("cannot complete a booking before it starts")
		}
	case ActionCancel:
		if actor == RoleCustomer && now.After(b.StartsAt.Add(-policy.cutoff())) {
			return Booking{}, Intent{}, failure.RoleNotPermitted("the cancellation window has closed; contact the chef")
		}
	}

	next := b
	next.Status = r.to
	next.UpdatedAt = now

	intent := Intent{
		Kind:      r.intent,
		Recipient: counterParty(b, actor),
		BookingID: b.ID,
		From:      b.Status,
		To:        r.to,
		Actor:     actor,
		At:        now,
	}

	return next, intent, nil
}

// ActionForTarget maps a requested target status to the action that reaches it.
// A chef cancelling a pending booking is a decline.
func ActionForTarget(current, target Status, actor Role) (Action, error) {
	switch target {
	case StatusConfirmed:
		return ActionAccept, nil
	case StatusCompleted:
		return ActionComplete, nil
	case StatusCancelled:
		if actor == RoleChef && current == StatusPending {
			return ActionDecline, nil
		}

		return ActionCancel, nil
	default:
		return "", failure.InvalidTransition(fmt.Sprintf("cannot move a booking to %q", target))
	}
}

// Requested is the intent sent to the chef when a customer creates a booking.
func Requested(b Booking, at time.Time) Intent {
	return Intent{
		Kind:      IntentRequested,
		Recipient: b.ChefID,
		BookingID: b.ID,
		To:        StatusPending,
		Actor:     RoleCustomer,
		At:        at,
	}
}

func counterParty(b Booking, actor Role) string {
	if actor == RoleChef {
		return b.CustomerID
	}

	return b.ChefID
}

func roleName(r Role) string {
	if r == "" {
		return "anonymous"
	}

	return string(r)
}
