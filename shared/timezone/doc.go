// Package timezone pins every wall-clock decision to the application timezone (APP_TIMEZONE).
//
// Booking dates arrive as plain YYYY-MM-DD values and a HH:MM slot. They are read in the app
// location so that "past", "today" and the cancellation cutoff agree with what the calendar shows:
//
//	start, err := timezone.Parse("2006-01-02 15:04", "2030-05-01 18:00")
//	today := timezone.Now()
//
// Names must be IANA zones such as "UTC" or "Asia/Jakarta".
package timezone
