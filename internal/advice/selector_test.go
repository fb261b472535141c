package advice

import (
	"strings"
	"testing"

	"github.com/wellnest/wellness-checkin/internal/domain"
)

func TestIsWellnessRelated(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"I'm so stressed about exams", true},
		{"how do I sleep better", true},
		{"what should I eat for lunch", true},
		{"feeling burnout lately", true},
		{"what's the capital of France", false},
		{"tell me a joke", false},
	}

	for _, tt := range tests {
		if got := IsWellnessRelated(tt.query); got != tt.want {
			t.Errorf("IsWellnessRelated(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestSelect_BranchTags(t *testing.T) {
	calm := domain.AggregateContext{AvgMood: 7, AvgStress: 3, AvgSleep: 8, SubmittedCount: 2}

	tests := []struct {
		name  string
		query string
		ctx   domain.AggregateContext
		want  BranchTag
	}{
		{
			name:  "stressed exam query with high stress picks the stress-high branch",
			query: "I'm so stressed about exams",
			ctx:   domain.AggregateContext{AvgMood: 6, AvgStress: 8, AvgSleep: 7, SubmittedCount: 2},
			want:  "study/high-stress",
		},
		{
			name:  "study query beats stress query in priority order",
			query: "stressed about my exam",
			ctx:   calm,
			want:  "study/generic",
		},
		{
			name:  "time management with high stress",
			query: "how do I manage my time better",
			ctx:   domain.AggregateContext{AvgMood: 6, AvgStress: 7, AvgSleep: 7, SubmittedCount: 1},
			want:  "time-management/high-stress",
		},
		{
			name:  "time management with low mood",
			query: "time management tips please",
			ctx:   domain.AggregateContext{AvgMood: 4, AvgStress: 4, AvgSleep: 7, SubmittedCount: 1},
			want:  "time-management/low-mood",
		},
		{
			name:  "focus query with short sleep",
			query: "I can't focus at all",
			ctx:   domain.AggregateContext{AvgMood: 6, AvgStress: 4, AvgSleep: 5, SubmittedCount: 1},
			want:  "productivity/low-sleep",
		},
		{
			name:  "stress query without elevated aggregates",
			query: "any tips for anxiety",
			ctx:   calm,
			want:  "stress/generic",
		},
		{
			name:  "mood query with very low mood",
			query: "I feel so sad today",
			ctx:   domain.AggregateContext{AvgMood: 3, AvgStress: 5, AvgSleep: 7, SubmittedCount: 2},
			want:  "mood/low-mood",
		},
		{
			name:  "sleep query with short sleep",
			query: "I have insomnia",
			ctx:   domain.AggregateContext{AvgMood: 6, AvgStress: 4, AvgSleep: 5, SubmittedCount: 1},
			want:  "sleep/low-sleep",
		},
		{
			name:  "no sleep data does not count as short sleep",
			query: "how can I sleep better",
			ctx:   domain.AggregateContext{AvgMood: 6, AvgStress: 4, AvgSleep: 0, SubmittedCount: 1},
			want:  "sleep/generic",
		},
		{
			name:  "social query",
			query: "I feel lonely at school",
			ctx:   calm,
			want:  "social/generic",
		},
		{
			name:  "exercise query with high stress",
			query: "should I start a workout routine",
			ctx:   domain.AggregateContext{AvgMood: 6, AvgStress: 7, AvgSleep: 7, SubmittedCount: 1},
			want:  "exercise/high-stress",
		},
		{
			name:  "nutrition query",
			query: "what should I eat before class",
			ctx:   calm,
			want:  "food/generic",
		},
		{
			name:  "unmatched query defaults on high stress",
			query: "help me with my garden",
			ctx:   domain.AggregateContext{AvgMood: 6, AvgStress: 8, AvgSleep: 7, SubmittedCount: 1},
			want:  "default/high-stress",
		},
		{
			name:  "unmatched query defaults to generic",
			query: "help me with my garden",
			ctx:   calm,
			want:  "default/generic",
		},
		{
			name:  "empty query",
			query: "   ",
			ctx:   calm,
			want:  BranchEmptyQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, got := Select(tt.query, tt.ctx)
			if got != tt.want {
				t.Errorf("Select(%q) tag = %q, want %q", tt.query, got, tt.want)
			}
			if text == "" {
				t.Errorf("Select(%q) returned empty text for tag %q", tt.query, got)
			}
		})
	}
}

func TestSelect_RepeatedCallsReturnIdenticalText(t *testing.T) {
	// Branches with more than one template must still answer the same
	// question the same way every time.
	ctx := domain.AggregateContext{AvgMood: 6, AvgStress: 8, AvgSleep: 7, SubmittedCount: 2}
	queries := []string{
		"any tips for anxiety",
		"I'm so stressed about exams",
		"help me with my garden",
		"",
	}

	for _, query := range queries {
		firstText, firstTag := Select(query, ctx)
		for i := 0; i < 50; i++ {
			text, tg := Select(query, ctx)
			if text != firstText || tg != firstTag {
				t.Fatalf("Select(%q) call %d = (%q, %q), first call = (%q, %q)",
					query, i+2, text, tg, firstText, firstTag)
			}
		}
	}
}

func TestSelect_AllTagsHaveTemplates(t *testing.T) {
	for _, g := range groups {
		for _, variant := range []string{variantHighStress, variantLowMood, variantLowSleep, variantGeneric} {
			// Not every group can branch to every variant; only reachable
			// tags need a pool.
			if !reachable(g.name, variant) {
				continue
			}
			tg := tag(g.name, variant)
			if len(templates[tg]) == 0 {
				t.Errorf("no templates for reachable branch %q", tg)
			}
		}
	}
}

// reachable enumerates the variants each group's branch function can return.
func reachable(group, variant string) bool {
	switch group {
	case groupTimeManagement, groupStress, groupExercise:
		return variant != variantLowSleep
	case groupProductivity, groupStudy:
		return variant != variantLowMood
	case groupMood:
		return variant != variantHighStress
	case groupSleep:
		return variant != variantLowMood
	case groupEnergy:
		return variant != variantHighStress
	case groupSocial, groupFood:
		return variant == variantLowMood || variant == variantGeneric
	}
	return false
}

func TestContextLine(t *testing.T) {
	empty := ContextLine(domain.AggregateContext{AvgMood: 5, AvgStress: 5})
	if !strings.Contains(empty, "complete check-ins") {
		t.Errorf("empty context line = %q", empty)
	}

	full := ContextLine(domain.AggregateContext{AvgMood: 6.5, AvgStress: 4, AvgSleep: 7.2, SubmittedCount: 2})
	for _, want := range []string{"mood: 6.5/10", "stress: 4.0/10", "sleep: 7.2h"} {
		if !strings.Contains(full, want) {
			t.Errorf("context line %q missing %q", full, want)
		}
	}

	noSleep := ContextLine(domain.AggregateContext{AvgMood: 6, AvgStress: 4, SubmittedCount: 1})
	if strings.Contains(noSleep, "sleep") {
		t.Errorf("context line %q should omit sleep when unrecorded", noSleep)
	}
}

func TestFallbackResponse(t *testing.T) {
	if FallbackResponse() == "" {
		t.Fatal("fallback response must never be empty")
	}
}
