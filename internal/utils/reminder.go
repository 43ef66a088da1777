package utils

import "time"

// Recurrence interval tags understood by NextReminder.
const (
	IntervalYearly  = "yearly"
	IntervalMonthly = "monthly"
	IntervalWeekly  = "weekly"
)

// NextReminder computes the next reminder date for a recurrence interval,
// relative to now. Yearly lands on January 1 of next year, monthly on the
// 1st of next month, weekly on the coming Monday (today if now is a
// Monday). The time of day is preserved. Any other tag, including the
// empty string, returns now unchanged.
func NextReminder(interval string, now time.Time) time.Time {
	switch interval {
	case IntervalYearly:
		return time.Date(now.Year()+1, time.January, 1,
			now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), now.Location())
	case IntervalMonthly:
		// Month()+1 normalizes December through time.Date.
		return time.Date(now.Year(), now.Month()+1, 1,
			now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), now.Location())
	case IntervalWeekly:
		days := (8 - int(now.Weekday())) % 7
		return now.AddDate(0, 0, days)
	default:
		return now
	}
}
