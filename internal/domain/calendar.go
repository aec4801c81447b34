package domain

import "time"

// WeekendPolicy says whether an activity runs on each weekend day.
// Monday through Friday are always work days.
type WeekendPolicy struct {
	Saturday bool
	Sunday   bool
}

// WorkPolicy holds the per-activity weekend policies for a facility.
type WorkPolicy struct {
	Load   WeekendPolicy
	Rip    WeekendPolicy
	Treat  WeekendPolicy
	Dry    WeekendPolicy
	Unload WeekendPolicy
}

// For returns the weekend policy governing an activity.
func (w WorkPolicy) For(a Activity) WeekendPolicy {
	switch a {
	case ActivityLoad:
		return w.Load
	case ActivityRip:
		return w.Rip
	case ActivityTreat:
		return w.Treat
	case ActivityDry:
		return w.Dry
	case ActivityUnload:
		return w.Unload
	}
	return WeekendPolicy{}
}

// IsWorkDay reports whether date is a permitted work day for the activity.
// No side effects, no error cases.
func (w WorkPolicy) IsWorkDay(date time.Time, a Activity) bool {
	switch date.Weekday() {
	case time.Saturday:
		return w.For(a).Saturday
	case time.Sunday:
		return w.For(a).Sunday
	}
	return true
}

// CalendarDaysForWorkdays returns how many calendar days starting at start
// are needed to accumulate target workdays under the given weekend policy.
func CalendarDaysForWorkdays(target int, start time.Time, p WeekendPolicy) int {
	if target <= 0 {
		return 0
	}

	workdays := 0
	calendarDays := 0
	current := start

	for workdays < target {
		switch current.Weekday() {
		case time.Saturday:
			if p.Saturday {
				workdays++
			}
		case time.Sunday:
			if p.Sunday {
				workdays++
			}
		default:
			workdays++
		}

		calendarDays++
		current = current.AddDate(0, 0, 1)
	}

	return calendarDays
}
