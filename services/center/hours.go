package center

import (
	"strings"
	"time"

	"autocare/models"
)

// NoOpeningSchedule is returned when no day of the week is marked open.
const NoOpeningSchedule = "no opening schedule"

func dayKey(d time.Weekday) string {
	return strings.ToLower(d.String())
}

// IsCurrentlyOpen reports whether a center is open at the given moment. Both
// the open and close bounds are inclusive. Open/Close are zero-padded 24h
// "HH:mm" strings, so plain string comparison is a correct time comparison.
func IsCurrentlyOpen(hours models.WeeklyOperatingHours, now time.Time) bool {
	day, ok := hours[dayKey(now.Weekday())]
	if !ok || !day.IsOpen {
		return false
	}
	current := now.Format("15:04")
	return day.Open <= current && current <= day.Close
}

// NextOpeningTime returns a human-readable description of the next time the
// center opens: "today at HH:mm" when today's window has not started yet,
// "{Weekday} at HH:mm" for a later day, or NoOpeningSchedule when no day is
// open. The scan covers seven days inclusive of wraparound, so a center open
// a single day a week resolves to that same day even when its window has
// already passed.
func NextOpeningTime(hours models.WeeklyOperatingHours, now time.Time) string {
	if day, ok := hours[dayKey(now.Weekday())]; ok && day.IsOpen {
		if now.Format("15:04") < day.Open {
			return "today at " + day.Open
		}
	}

	for i := 1; i <= 7; i++ {
		wd := time.Weekday((int(now.Weekday()) + i) % 7)
		if day, ok := hours[dayKey(wd)]; ok && day.IsOpen {
			return wd.String() + " at " + day.Open
		}
	}
	return NoOpeningSchedule
}
