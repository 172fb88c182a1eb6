package core

import "time"

// ExpandWeekly produces the concrete dates for a "repeat weekly on days
// D for N weeks" request. Expansion anchors at the Sunday on/before
// start and walks the (week, weekday) grid; candidates that fall before
// start (midnight-truncated) are discarded, which excludes days earlier
// in the first week than the chosen start date. The result is ordered
// by (weekIndex, weekday ascending), which is chronological.
//
// The result may be empty when every candidate falls before start; the
// caller is responsible for the single-event fallback in that case.
func ExpandWeekly(start time.Time, daysOfWeek []int, occurrences int) []time.Time {
	if occurrences <= 0 || len(daysOfWeek) == 0 {
		return nil
	}

	startDay := truncateToMidnight(start)
	weekAnchor := startDay.AddDate(0, 0, -int(startDay.Weekday()))

	days := sortedWeekdays(daysOfWeek)

	var dates []time.Time

	for weekIndex := 0; weekIndex < occurrences; weekIndex++ {
		for _, day := range days {
			occurrence := weekAnchor.AddDate(0, 0, weekIndex*7+day)
			if occurrence.Before(startDay) {
				continue
			}

			dates = append(dates, occurrence)
		}
	}

	return dates
}

func truncateToMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// sortedWeekdays dedupes the 0=Sun..6=Sat selections and returns them
// ascending; the UI toggles entries so duplicates are rare but not
// impossible, and values outside the weekday range are ignored.
func sortedWeekdays(daysOfWeek []int) []int {
	var seen [7]bool
	for _, day := range daysOfWeek {
		if day >= 0 && day <= 6 {
			seen[day] = true
		}
	}

	days := make([]int, 0, 7)
	for day, ok := range seen {
		if ok {
			days = append(days, day)
		}
	}

	return days
}
