package wellness

import (
	"fmt"
	"sort"
	"time"

	"github.com/wellnest/wellness-checkin/internal/domain"
)

// CalculateStreak computes the current and longest consecutive-day check-in
// streaks from the full history. A date counts as checked-in when any entry
// for that date has at least one submitted slot; duplicate entries for one
// date collapse into the set of distinct checked-in dates. The caller passes
// "today" explicitly (in the user's timezone) so the function stays pure.
func CalculateStreak(entries []domain.HistoryEntry, today time.Time) domain.StreakResult {
	dates := checkedInDates(entries)
	if len(dates) == 0 {
		return domain.StreakResult{}
	}

	todayStr := today.Format(domain.DateFormat)
	checkedInToday := dates[todayStr]

	// Walk backward day by day, starting from today if today is checked in,
	// otherwise from yesterday. The streak survives a pending today.
	expected := today
	if !checkedInToday {
		expected = expected.AddDate(0, 0, -1)
	}

	current := 0
	for dates[expected.Format(domain.DateFormat)] {
		current++
		expected = expected.AddDate(0, 0, -1)
	}
	if checkedInToday && current == 0 {
		current = 1
	}

	sorted := sortedDates(dates)

	longest := 1
	run := 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Sub(sorted[i-1]) == 24*time.Hour {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}

	last := sorted[len(sorted)-1].Format(domain.DateFormat)
	return domain.StreakResult{
		CurrentStreak:   current,
		LongestStreak:   longest,
		LastCheckInDate: &last,
	}
}

// checkedInDates reduces the history to the set of distinct dates with at
// least one submitted slot. Entries with malformed dates are dropped silently.
func checkedInDates(entries []domain.HistoryEntry) map[string]bool {
	dates := make(map[string]bool)
	for _, e := range entries {
		if _, err := time.Parse(domain.DateFormat, e.Date); err != nil {
			continue
		}
		if e.Checkins.HasSubmission() {
			dates[e.Date] = true
		}
	}
	return dates
}

func sortedDates(dates map[string]bool) []time.Time {
	out := make([]time.Time, 0, len(dates))
	for d := range dates {
		t, err := time.Parse(domain.DateFormat, d)
		if err != nil {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// StreakMessage returns the motivational flavor line for a streak count.
func StreakMessage(streak int) string {
	switch {
	case streak == 0:
		return "Start your streak today!"
	case streak == 1:
		return "Great start! Keep it going!"
	case streak < 7:
		return fmt.Sprintf("%d day streak! You're on fire!", streak)
	case streak < 30:
		return fmt.Sprintf("%d days strong! Amazing!", streak)
	case streak < 100:
		return fmt.Sprintf("%d days! You're a legend!", streak)
	default:
		return fmt.Sprintf("%d days! Unstoppable!", streak)
	}
}
