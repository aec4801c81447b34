package domain

import (
	"testing"
	"time"
)

func TestIsWorkDay(t *testing.T) {
	policy := WorkPolicy{
		Load:  WeekendPolicy{},
		Treat: WeekendPolicy{Saturday: true, Sunday: true},
		Dry:   WeekendPolicy{Saturday: true},
	}

	monday := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2025, time.December, 6, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, time.December, 7, 0, 0, 0, 0, time.UTC)

	if !policy.IsWorkDay(monday, ActivityLoad) {
		t.Error("weekdays must always be work days")
	}
	if policy.IsWorkDay(saturday, ActivityLoad) {
		t.Error("saturday should not be a load work day")
	}
	if !policy.IsWorkDay(saturday, ActivityTreat) {
		t.Error("saturday should be a treat work day")
	}
	if !policy.IsWorkDay(sunday, ActivityTreat) {
		t.Error("sunday should be a treat work day")
	}
	if policy.IsWorkDay(sunday, ActivityDry) {
		t.Error("sunday should not be a dry work day (saturday-only policy)")
	}
}

func TestCalendarDaysForWorkdays(t *testing.T) {
	// 2026-01-01 is a Thursday: three workdays with no weekend work span
	// Thu, Fri, (Sat, Sun skipped), Mon = 5 calendar days.
	thursday := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	got := CalendarDaysForWorkdays(3, thursday, WeekendPolicy{})
	if got != 5 {
		t.Errorf("3 workdays from Thursday = %d calendar days, want 5", got)
	}

	got = CalendarDaysForWorkdays(3, thursday, WeekendPolicy{Saturday: true, Sunday: true})
	if got != 3 {
		t.Errorf("3 workdays with full weekend work = %d calendar days, want 3", got)
	}

	if got := CalendarDaysForWorkdays(0, thursday, WeekendPolicy{}); got != 0 {
		t.Errorf("0 workdays = %d calendar days, want 0", got)
	}
}
