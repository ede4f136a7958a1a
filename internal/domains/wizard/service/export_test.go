package service

import "time"

// Sweep exposes the janitor pass to tests.
func Sweep(w Wizard, now time.Time) int {
	return w.(*serviceImpl).sweep(now)
}
