package booking

import (
	"time"

	"barbershop/services/catalog"
	"barbershop/utils"
)

// NextOccurrence returns the nearest instant strictly after now that falls on
// weekday at the wall-clock time hhmm, in now's location.
func NextOccurrence(now time.Time, weekday, hhmm string) (time.Time, error) {
	target, ok := catalog.Weekday(weekday)
	if !ok {
		return time.Time{}, utils.SchedulingError("unknown weekday %q", weekday)
	}
	tod, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, utils.SchedulingError("invalid time %q", hhmm)
	}

	delta := (int(target) - int(now.Weekday()) + 7) % 7
	candidate := time.Date(now.Year(), now.Month(), now.Day()+delta, tod.Hour(), tod.Minute(), 0, 0, now.Location())
	if !candidate.After(now) {
		candidate = candidate.AddDate(0, 0, 7)
	}
	return candidate, nil
}
