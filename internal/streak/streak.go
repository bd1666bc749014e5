// Package streak computes habit compliance streaks. A streak counts
// consecutive due-occasions a habit was completed; calendar days on
// which the habit was never due cannot break one. All arithmetic is
// calendar-date based, so the results are independent of time of day
// and timezone offsets once a date string is fixed.
package streak

import (
	"sort"

	"github.com/ksolberg/habitkit/internal/models"
	"github.com/ksolberg/habitkit/internal/utils"
)

// Result holds the two derived streak values for a habit.
type Result struct {
	Current int
	Longest int
}

// Calculate computes the current and longest streaks for a habit with
// the given frequency rule and completion dates, evaluated as of today.
//
// The current streak is only non-zero while the streak is "alive":
// the habit was completed today, or yesterday was due and completed, or
// neither today nor yesterday is due at all (a dormant habit keeps its
// streak until its next due day arrives). Gaps between completions are
// checked day by day; only a due-but-uncompleted day breaks a run.
//
// Malformed completion dates are skipped rather than rejected; input
// validation belongs to the caller.
func Calculate(freq models.Frequency, completedDates []string, today utils.Date) Result {
	dates := parseDescending(completedDates)
	if len(dates) == 0 {
		return Result{}
	}

	yesterday := today.AddDays(-1)
	todayDue := IsDue(freq, today)
	yesterdayDue := IsDue(freq, yesterday)
	completedToday := contains(dates, today)
	completedYesterday := contains(dates, yesterday)

	active := completedToday || (yesterdayDue && completedYesterday) || (!todayDue && !yesterdayDue)

	res := Result{Longest: longestRun(freq, dates)}
	if active {
		res.Current = currentRun(freq, dates)
	}
	return res
}

// longestRun walks the dates from most recent to oldest, accumulating a
// run that survives any gap containing no due day and restarts at 1 on
// the first gap that skipped a due day. Returns the longest run seen.
func longestRun(freq models.Frequency, dates []utils.Date) int {
	longest, run := 0, 0
	for i, d := range dates {
		if i == 0 {
			run = 1
		} else {
			prev := dates[i-1]
			switch gap := utils.DaysBetween(d, prev); {
			case gap == 1:
				run++
			case gap > 1:
				if missedDueDay(freq, d, prev) {
					if run > longest {
						longest = run
					}
					run = 1
				} else {
					run++
				}
			}
		}
	}
	if run > longest {
		longest = run
	}
	return longest
}

// currentRun is the same walk starting at the most recent completion,
// except that it stops at the first gap that skipped a due day.
func currentRun(freq models.Frequency, dates []utils.Date) int {
	run := 0
	for i, d := range dates {
		if i == 0 {
			run = 1
		} else {
			prev := dates[i-1]
			switch gap := utils.DaysBetween(d, prev); {
			case gap == 1:
				run++
			case gap > 1:
				if missedDueDay(freq, d, prev) {
					return run
				}
				run++
			}
		}
	}
	return run
}

// missedDueDay reports whether any calendar day strictly between the
// older and newer dates was due. A multi-day gap may mix due and
// non-due days under non-daily frequencies, so each day is checked.
func missedDueDay(freq models.Frequency, older, newer utils.Date) bool {
	for d := older.AddDays(1); d.Before(newer); d = d.AddDays(1) {
		if IsDue(freq, d) {
			return true
		}
	}
	return false
}

// parseDescending parses the completion set, drops malformed entries
// and duplicates, and sorts most recent first.
func parseDescending(completedDates []string) []utils.Date {
	dates := make([]utils.Date, 0, len(completedDates))
	for _, s := range completedDates {
		d, err := utils.ParseDate(s)
		if err != nil {
			continue
		}
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[j].Before(dates[i]) })
	out := dates[:0]
	for _, d := range dates {
		if len(out) == 0 || !d.Equal(out[len(out)-1]) {
			out = append(out, d)
		}
	}
	return out
}

func contains(dates []utils.Date, d utils.Date) bool {
	for _, x := range dates {
		if x.Equal(d) {
			return true
		}
	}
	return false
}
