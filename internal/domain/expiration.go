package domain

import "time"

// ExpirationStatus is the badge shown next to an item
type ExpirationStatus string

const (
	ExpirationNone    ExpirationStatus = "none"
	ExpirationExpired ExpirationStatus = "expired"
	ExpirationToday   ExpirationStatus = "expires_today"
	ExpirationUrgent  ExpirationStatus = "urgent"
	ExpirationSoon    ExpirationStatus = "soon"
	ExpirationOK      ExpirationStatus = "ok"
)

const (
	urgentDays = 3
	soonDays   = 7
)

// ClassifyExpiration maps the number of days left to a status
func ClassifyExpiration(daysLeft int) ExpirationStatus {
	switch {
	case daysLeft < 0:
		return ExpirationExpired
	case daysLeft == 0:
		return ExpirationToday
	case daysLeft <= urgentDays:
		return ExpirationUrgent
	case daysLeft <= soonDays:
		return ExpirationSoon
	default:
		return ExpirationOK
	}
}

// StartOfDay truncates t to midnight in its own location
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day in a's location
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DaysUntil counts calendar days from the reference day to target. target is a
// calendar date and is read in its own location; time-of-day and DST shifts
// never leak into the count.
func DaysUntil(reference, target time.Time) int {
	ry, rm, rd := reference.Date()
	ty, tm, td := target.Date()
	from := time.Date(ry, rm, rd, 0, 0, 0, 0, time.UTC)
	to := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}
