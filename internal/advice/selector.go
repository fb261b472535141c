// Package advice implements the deterministic keyword-matched advice
// selector. Branch selection is pure and unit-testable; the template pool is
// a plain lookup table so copy edits never touch logic.
package advice

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/wellnest/wellness-checkin/internal/domain"
)

var wellnessKeywords = []string{
	"stress", "anxiety", "mood", "sad", "depress", "down", "feel",
	"sleep", "tired", "exhaust", "insomnia", "rest",
	"energy", "motivat", "lazy", "unmotivat",
	"time manag", "procrastinat", "productivity", "focus", "concentrat", "distract",
	"study", "exam", "test", "homework", "assignment", "learn",
	"exercise", "workout", "fitness", "gym", "active", "movement",
	"eat", "food", "nutrition", "hungry", "meal", "diet",
	"friend", "social", "lonely", "relationship", "people",
	"wellness", "health", "mental", "physical", "emotional",
	"check-in", "checkin", "streak",
	"breathing", "meditation", "mindfulness", "self-care",
	"wellbeing", "well-being", "burnout", "overwhelm",
}

// IsWellnessRelated reports whether a query should be answered from the
// deterministic selector rather than proxied to an external generator.
func IsWellnessRelated(query string) bool {
	lower := strings.ToLower(query)
	for _, kw := range wellnessKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// group is one keyword-group predicate plus its context-threshold branching.
type group struct {
	name   string
	match  func(q string) bool
	branch func(ctx domain.AggregateContext) string
}

func anyOf(keywords ...string) func(string) bool {
	return func(q string) bool {
		for _, kw := range keywords {
			if strings.Contains(q, kw) {
				return true
			}
		}
		return false
	}
}

func allOf(keywords ...string) func(string) bool {
	return func(q string) bool {
		for _, kw := range keywords {
			if !strings.Contains(q, kw) {
				return false
			}
		}
		return true
	}
}

// groups are evaluated in fixed priority order; the first match wins.
var groups = []group{
	{
		name:  groupTimeManagement,
		match: allOf("time", "manag"),
		branch: func(ctx domain.AggregateContext) string {
			switch {
			case ctx.AvgStress > 6:
				return variantHighStress
			case ctx.AvgMood < 5:
				return variantLowMood
			default:
				return variantGeneric
			}
		},
	},
	{
		name:  groupProductivity,
		match: anyOf("productivity", "focus", "concentrat", "distract", "procrastinat"),
		branch: func(ctx domain.AggregateContext) string {
			switch {
			case ctx.AvgStress > 7:
				return variantHighStress
			case lowSleep(ctx):
				return variantLowSleep
			default:
				return variantGeneric
			}
		},
	},
	{
		name:  groupStudy,
		match: anyOf("study", "learn", "exam", "test", "homework", "assignment"),
		branch: func(ctx domain.AggregateContext) string {
			switch {
			case ctx.AvgStress > 6:
				return variantHighStress
			case lowSleep(ctx):
				return variantLowSleep
			default:
				return variantGeneric
			}
		},
	},
	{
		name:  groupStress,
		match: anyOf("stress", "anxiety", "worri", "overwhelm", "pressure"),
		branch: func(ctx domain.AggregateContext) string {
			switch {
			case ctx.AvgStress > 7:
				return variantHighStress
			case ctx.AvgMood < 5:
				return variantLowMood
			default:
				return variantGeneric
			}
		},
	},
	{
		name: groupMood,
		match: func(q string) bool {
			return anyOf("mood", "sad", "depress", "down")(q) ||
				allOf("feel", "bad")(q)
		},
		branch: func(ctx domain.AggregateContext) string {
			switch {
			case ctx.AvgMood < 4:
				return variantLowMood
			case lowSleep(ctx):
				return variantLowSleep
			default:
				return variantGeneric
			}
		},
	},
	{
		name:  groupSleep,
		match: anyOf("sleep", "tired", "exhaust", "rest", "insomnia"),
		branch: func(ctx domain.AggregateContext) string {
			switch {
			case lowSleep(ctx):
				return variantLowSleep
			case ctx.AvgStress > 6:
				return variantHighStress
			default:
				return variantGeneric
			}
		},
	},
	{
		name:  groupEnergy,
		match: anyOf("energy", "tired", "motivat", "lazy", "unmotivat"),
		branch: func(ctx domain.AggregateContext) string {
			switch {
			case lowSleep(ctx):
				return variantLowSleep
			case ctx.AvgMood < 5:
				return variantLowMood
			default:
				return variantGeneric
			}
		},
	},
	{
		name:  groupSocial,
		match: anyOf("friend", "social", "lonely", "relationship", "people"),
		branch: func(ctx domain.AggregateContext) string {
			if ctx.AvgMood < 5 {
				return variantLowMood
			}
			return variantGeneric
		},
	},
	{
		name:  groupExercise,
		match: anyOf("exercise", "workout", "fitness", "active", "gym"),
		branch: func(ctx domain.AggregateContext) string {
			switch {
			case ctx.AvgStress > 6:
				return variantHighStress
			case ctx.AvgMood < 5:
				return variantLowMood
			default:
				return variantGeneric
			}
		},
	},
	{
		name:  groupFood,
		match: anyOf("eat", "food", "nutrition", "diet", "hungry", "meal"),
		branch: func(ctx domain.AggregateContext) string {
			if ctx.AvgMood < 5 {
				return variantLowMood
			}
			return variantGeneric
		},
	},
}

// lowSleep is true only when sleep was actually recorded and is short; an
// average of zero means "no data", not "no sleep".
func lowSleep(ctx domain.AggregateContext) bool {
	return ctx.AvgSleep > 0 && ctx.AvgSleep < 6
}

// Select picks a template for a wellness query: first matching keyword group
// wins, then the group branches on the day's aggregate mood/stress/sleep.
// Queries matching no group fall through to a default branch on the same
// aggregates.
func Select(query string, ctx domain.AggregateContext) (string, BranchTag) {
	if strings.TrimSpace(query) == "" {
		return pick("", BranchEmptyQuery), BranchEmptyQuery
	}

	lower := strings.ToLower(strings.TrimSpace(query))
	for _, g := range groups {
		if g.match(lower) {
			t := tag(g.name, g.branch(ctx))
			return pick(lower, t), t
		}
	}

	var variant string
	switch {
	case ctx.AvgStress > 7:
		variant = variantHighStress
	case ctx.AvgMood < 4:
		variant = variantLowMood
	case lowSleep(ctx):
		variant = variantLowSleep
	default:
		variant = variantGeneric
	}
	t := tag(groupDefault, variant)
	return pick(lower, t), t
}

// pick chooses from the branch's template pool by hashing the query, so the
// same question always gets the same answer while different questions still
// rotate through the pool.
func pick(query string, t BranchTag) string {
	pool := templates[t]
	if len(pool) == 0 {
		return ""
	}
	h := fnv.New32a()
	h.Write([]byte(query))
	h.Write([]byte(t))
	return pool[int(h.Sum32()%uint32(len(pool)))]
}

// FallbackResponse is the terminal answer for non-wellness queries when
// every external provider has failed.
func FallbackResponse() string {
	return nonWellnessFallback
}

// ContextLine renders the personalization prefix shown alongside advice.
func ContextLine(ctx domain.AggregateContext) string {
	if ctx.SubmittedCount == 0 {
		return "Based on your recent check-ins (complete check-ins for personalized tips!)"
	}
	line := fmt.Sprintf("Based on your recent check-ins (mood: %.1f/10, stress: %.1f/10", ctx.AvgMood, ctx.AvgStress)
	if ctx.AvgSleep > 0 {
		line += fmt.Sprintf(", sleep: %.1fh", ctx.AvgSleep)
	}
	return line + ")"
}
