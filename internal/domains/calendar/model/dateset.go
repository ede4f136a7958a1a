package model

import (
	"slices"
	"time"
)

// DateSet is an AvailabilityProvider backed by a fixed set of open dates. Unknown dates are unavailable.
type DateSet map[time.Time]struct{}

func NewDateSet(dates ...time.Time) DateSet {
	set := make(DateSet, len(dates))
	for _, d := range dates {
		set[DateOnly(d)] = struct{}{}
	}

	return set
}

func (s DateSet) IsAvailable(date time.Time) bool {
	_, ok := s[DateOnly(date)]

	return ok
}

// Dates returns the open dates in ascending order.
func (s DateSet) Dates() []time.Time {
	dates := make([]time.Time, 0, len(s))
	for d := range s {
		dates = append(dates, d)
	}

	slices.SortFunc(dates, func(a, b time.Time) int { return a.Compare(b) })

	return dates
}
