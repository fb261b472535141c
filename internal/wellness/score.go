// Package wellness holds the pure scoring, analysis, streak, and trend
// computations. Everything here is side-effect free and safe to call
// concurrently; inputs arrive already loaded by the service layer.
package wellness

import (
	"math"
	"strings"

	"github.com/wellnest/wellness-checkin/internal/domain"
)

// Weight budget for the per-check-in score: sleep 20, mood 20, hydration 20,
// stress 20, activity 15, food 5.
const (
	sleepMaxPoints     = 20.0
	moodMaxPoints      = 20.0
	hydrationMaxPoints = 20.0
	stressMaxPoints    = 20.0
	activityMaxPoints  = 15.0
	foodMaxPoints      = 5.0

	// OptimalHydrationCups caps the hydration term.
	OptimalHydrationCups = 8.0
)

var exerciseKeywords = []string{"exercise", "workout", "run", "walk", "yoga", "sport", "gym"}

var movementKeywords = []string{"stretch", "dance"}

// ComputeScore computes the 0-100 wellness score for a single check-in
// record. Out-of-range inputs are clamped, never rejected, and the result is
// always within [0,100].
func ComputeScore(rec domain.CheckInRecord) int {
	rec.Normalize()

	score := sleepPoints(rec.Sleep)
	score += (float64(rec.Mood) / 10.0) * moodMaxPoints
	score += math.Min(float64(rec.Hydration)/OptimalHydrationCups, 1.0) * hydrationMaxPoints
	score += (float64(10-rec.Stress) / 10.0) * stressMaxPoints
	score += activityPoints(rec.Activity)
	score += foodPoints(rec.Eaten)

	return int(math.Round(math.Max(0, math.Min(100, score))))
}

// sleepPoints is tiered rather than linear: both too little and too much
// sleep are penalized, with 7-9h as the optimal range.
func sleepPoints(hours float64) float64 {
	switch {
	case hours >= 7 && hours <= 9:
		return 20
	case hours >= 6 && hours < 7:
		return 15
	case hours > 9 && hours <= 10:
		return 15
	case hours >= 5 && hours < 6:
		return 10
	case hours > 10 && hours <= 12:
		return 10
	case hours > 0 && hours < 5:
		return 5
	default:
		return 0
	}
}

// activityPoints tiers the free-text activity field by keyword presence:
// exercise keywords 15, other movement 10, any text 5, empty 0.
func activityPoints(activity string) float64 {
	if strings.TrimSpace(activity) == "" {
		return 0
	}
	lower := strings.ToLower(activity)
	if containsAny(lower, exerciseKeywords) {
		return 15
	}
	if containsAny(lower, movementKeywords) {
		return 10
	}
	return 5
}

// foodPoints treats an unanswered eaten question as neutral.
func foodPoints(eaten *bool) float64 {
	switch {
	case eaten == nil:
		return foodMaxPoints / 2
	case *eaten:
		return foodMaxPoints
	default:
		return 0
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// SimpleScore is the legacy linear variant used by the dashboard's quick
// meter: sleep, mood, hydration, and stress each weighted 20 points linearly,
// activity presence worth the remaining 20, no food term. Kept distinct from
// ComputeScore on purpose; the two surfaces assume different scales.
func SimpleScore(rec domain.CheckInRecord) int {
	rec.Normalize()

	score := math.Min(rec.Sleep/8.0, 1.0) * 20
	score += (float64(rec.Mood) / 10.0) * 20
	score += math.Min(float64(rec.Hydration)/OptimalHydrationCups, 1.0) * 20
	score += (float64(10-rec.Stress) / 10.0) * 20
	if strings.TrimSpace(rec.Activity) != "" {
		score += 20
	}

	return int(math.Round(math.Max(0, math.Min(100, score))))
}
