package model

import (
	"slices"
	"time"
)

// GridSize is six full weeks.
const GridSize = 42

type Mode string

const (
	ModeSingle Mode = "single"
	ModeMulti  Mode = "multi"
)

func (m Mode) Valid() bool {
	return m == ModeSingle || m == ModeMulti
}

// Day is one derived cell of a month grid.
type Day struct {
	Date           time.Time
	IsCurrentMonth bool
	IsPast         bool
	IsToday        bool
	IsSelected     bool
	IsAvailable    bool
}

// AvailabilityProvider answers whether a calendar date can be booked.
type AvailabilityProvider interface {
	IsAvailable(date time.Time) bool
}

// AvailabilityFunc adapts a plain function to AvailabilityProvider.
type AvailabilityFunc func(date time.Time) bool

func (f AvailabilityFunc) IsAvailable(date time.Time) bool {
	return f(date)
}

// DateOnly drops the time of day, keeping the calendar date as seen in t's own location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDate reports calendar-date equality.
func SameDate(a, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}

// GridStart returns the Sunday on or before the first of the month.
func GridStart(year int, month time.Month) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	return first.AddDate(0, 0, -int(first.Weekday()))
}

// GridEnd returns the last date covered by the grid.
func GridEnd(year int, month time.Month) time.Time {
	return GridStart(year, month).AddDate(0, 0, GridSize-1)
}

// GenerateMonthGrid builds the 42 cells for (year, month). A nil provider marks every day unavailable.
// In single mode only the first selected date is highlighted.
func GenerateMonthGrid(year int, month time.Month, today time.Time, selected []time.Time, provider AvailabilityProvider, mode Mode) []Day {
	// normalize through time.Date so month 13 and friends roll over
	anchor := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	year, month = anchor.Year(), anchor.Month()

	start := GridStart(year, month)
	todayDate := DateOnly(today)

	if mode == ModeSingle && len(selected) > 1 {
		selected = selected[:1]
	}

	days := make([]Day, GridSize)

	for i := range days {
		date := start.AddDate(0, 0, i)

		day := Day{
			Date:           date,
			IsCurrentMonth: date.Month() == month,
			IsPast:         date.Before(todayDate),
			IsToday:        date.Equal(todayDate),
			IsSelected:     containsDate(selected, date),
		}

		day.IsAvailable = day.IsCurrentMonth && !day.IsPast && provider != nil && provider.IsAvailable(date)
		days[i] = day
	}

	return days
}

// ToggleDateSelection returns the selection after toggling date. The input slice is never modified.
// Unavailable dates leave the selection unchanged.
func ToggleDateSelection(date time.Time, selected []time.Time, mode Mode, available bool) []time.Time {
	result := make([]time.Time, 0, len(selected)+1)
	for _, s := range selected {
		result = append(result, DateOnly(s))
	}

	if !available {
		return result
	}

	date = DateOnly(date)
	idx := slices.IndexFunc(result, func(s time.Time) bool { return s.Equal(date) })

	if mode == ModeSingle {
		if idx >= 0 {
			return result[:0]
		}

		return []time.Time{date}
	}

	if idx >= 0 {
		return slices.Delete(result, idx, idx+1)
	}

	result = append(result, date)
	slices.SortFunc(result, func(a, b time.Time) int { return a.Compare(b) })

	return result
}

func NextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}

	return year, month + 1
}

func PrevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}

	return year, month - 1
}

func containsDate(dates []time.Time, date time.Time) bool {
	return slices.ContainsFunc(dates, func(d time.Time) bool { return SameDate(d, date) })
}
