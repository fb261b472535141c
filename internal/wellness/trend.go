package wellness

import (
	"math"
	"time"

	"github.com/wellnest/wellness-checkin/internal/domain"
)

// Daily aggregate weights: mood 60, inverted stress 30, sleep deviation 10.
// This is deliberately NOT the per-check-in ComputeScore split; the dashboard
// treats "instant score" and "daily score" as different scales.
const (
	dailyMoodPoints   = 60.0
	dailyStressPoints = 30.0
	dailySleepPoints  = 10.0

	optimalDailySleepHours = 7.5
)

// WeeklyTrend returns exactly 7 trend points covering today and the six
// preceding days, oldest first. Days without a matching history entry (or
// without any submitted slot) come back with score 0 and HasData false.
// When several entries share a date, the most recent by RecordedAt wins.
func WeeklyTrend(entries []domain.HistoryEntry, today time.Time) []domain.TrendPoint {
	byDate := latestPerDate(entries)

	points := make([]domain.TrendPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)
		dateStr := date.Format(domain.DateFormat)

		point := domain.TrendPoint{
			Day:  date.Weekday().String()[:3],
			Date: dateStr,
		}
		if entry, ok := byDate[dateStr]; ok {
			point.Score = DailyScore(entry.Checkins)
			point.HasData = true
		}
		points = append(points, point)
	}
	return points
}

// latestPerDate reduces the append-only history to one entry per date. The
// write model permits multiple snapshots per date (one per submission); the
// newest snapshot is authoritative.
func latestPerDate(entries []domain.HistoryEntry) map[string]domain.HistoryEntry {
	byDate := make(map[string]domain.HistoryEntry)
	for _, e := range entries {
		if _, err := time.Parse(domain.DateFormat, e.Date); err != nil {
			continue
		}
		if prev, ok := byDate[e.Date]; !ok || e.RecordedAt.After(prev.RecordedAt) {
			byDate[e.Date] = e
		}
	}
	return byDate
}

// DailyScore aggregates a day's submitted slots into a 0-100 score:
// average mood scaled to 60 points, inverted average stress to 30, and up to
// 10 points for average sleep near 7.5h (2 points lost per hour of
// deviation). Sleep averages only over slots that recorded a positive value;
// with none, the sleep term is zero. No submitted slots means score 0.
func DailyScore(day domain.DailyCheckIn) int {
	recs := day.SubmittedRecords()
	if len(recs) == 0 {
		return 0
	}

	var moodSum, stressSum, sleepSum float64
	sleepCount := 0
	for _, rec := range recs {
		mood := rec.Mood
		if mood == 0 {
			mood = domain.DefaultMood
		}
		moodSum += float64(mood)
		stressSum += float64(rec.Stress)
		if rec.Sleep > 0 {
			sleepSum += rec.Sleep
			sleepCount++
		}
	}

	avgMood := moodSum / float64(len(recs))
	avgStress := stressSum / float64(len(recs))

	moodScore := (avgMood / 10.0) * dailyMoodPoints
	stressScore := ((10.0 - avgStress) / 10.0) * dailyStressPoints

	sleepScore := 0.0
	if sleepCount > 0 {
		avgSleep := sleepSum / float64(sleepCount)
		sleepScore = math.Max(0, dailySleepPoints-2*math.Abs(avgSleep-optimalDailySleepHours))
	}

	total := moodScore + stressScore + sleepScore
	return int(math.Round(math.Max(0, math.Min(100, total))))
}
