package center

import (
	"testing"
	"time"

	"autocare/models"
)

// 2026-03-02 is a Monday.
func monday(hour, min int) time.Time {
	return time.Date(2026, 3, 2, hour, min, 0, 0, time.UTC)
}

func weekdaysOnly() models.WeeklyOperatingHours {
	hours := models.WeeklyOperatingHours{}
	for _, d := range []string{"monday", "tuesday", "wednesday", "thursday", "friday"} {
		hours[d] = models.DayHours{Open: "09:00", Close: "18:00", IsOpen: true}
	}
	hours["saturday"] = models.DayHours{IsOpen: false}
	hours["sunday"] = models.DayHours{IsOpen: false}
	return hours
}

func TestIsCurrentlyOpen_BoundsAreInclusive(t *testing.T) {
	hours := weekdaysOnly()

	cases := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"before opening", monday(8, 59), false},
		{"at opening", monday(9, 0), true},
		{"midday", monday(12, 30), true},
		{"at closing", monday(18, 0), true},
		{"after closing", monday(18, 1), false},
	}
	for _, tc := range cases {
		if got := IsCurrentlyOpen(hours, tc.now); got != tc.want {
			t.Errorf("%s: IsCurrentlyOpen = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestIsCurrentlyOpen_ClosedDay(t *testing.T) {
	hours := weekdaysOnly()
	saturday := time.Date(2026, 3, 7, 12, 0, 0, 0, time.UTC)
	if IsCurrentlyOpen(hours, saturday) {
		t.Fatalf("expected closed on saturday")
	}
}

func TestIsCurrentlyOpen_MissingDayEntry(t *testing.T) {
	hours := models.WeeklyOperatingHours{
		"tuesday": {Open: "09:00", Close: "18:00", IsOpen: true},
	}
	if IsCurrentlyOpen(hours, monday(12, 0)) {
		t.Fatalf("expected closed when the weekday has no entry")
	}
}

func TestNextOpeningTime_Today(t *testing.T) {
	hours := weekdaysOnly()
	if got := NextOpeningTime(hours, monday(7, 0)); got != "today at 09:00" {
		t.Fatalf("NextOpeningTime = %q, want %q", got, "today at 09:00")
	}
}

func TestNextOpeningTime_AfterCloseRollsToNextDay(t *testing.T) {
	hours := weekdaysOnly()
	if got := NextOpeningTime(hours, monday(19, 0)); got != "Tuesday at 09:00" {
		t.Fatalf("NextOpeningTime = %q, want %q", got, "Tuesday at 09:00")
	}
}

func TestNextOpeningTime_WeekendSkipsToMonday(t *testing.T) {
	hours := weekdaysOnly()
	saturday := time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC)
	if got := NextOpeningTime(hours, saturday); got != "Monday at 09:00" {
		t.Fatalf("NextOpeningTime = %q, want %q", got, "Monday at 09:00")
	}
}

// A center open one day a week wraps all the way around to the same weekday
// once today's window has passed.
func TestNextOpeningTime_SingleDayWrapsAround(t *testing.T) {
	hours := models.WeeklyOperatingHours{
		"monday": {Open: "09:00", Close: "12:00", IsOpen: true},
	}
	if got := NextOpeningTime(hours, monday(13, 0)); got != "Monday at 09:00" {
		t.Fatalf("NextOpeningTime = %q, want %q", got, "Monday at 09:00")
	}
}

func TestNextOpeningTime_NoScheduleSentinel(t *testing.T) {
	hours := models.WeeklyOperatingHours{
		"monday": {Open: "09:00", Close: "18:00", IsOpen: false},
	}
	if got := NextOpeningTime(hours, monday(10, 0)); got != NoOpeningSchedule {
		t.Fatalf("NextOpeningTime = %q, want sentinel %q", got, NoOpeningSchedule)
	}
}
