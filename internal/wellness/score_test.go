package wellness

import (
	"testing"

	"github.com/wellnest/wellness-checkin/internal/domain"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestComputeScore(t *testing.T) {
	tests := []struct {
		name string
		rec  domain.CheckInRecord
		want int
	}{
		{
			name: "perfect day scores 100",
			rec: domain.CheckInRecord{
				Sleep: 8, Mood: 10, Hydration: 8, Stress: 0,
				Activity: "morning workout", Eaten: boolPtr(true),
			},
			want: 100,
		},
		{
			name: "worst day bottoms out at the mood floor",
			rec: domain.CheckInRecord{
				Sleep: 0, Mood: 1, Hydration: 0, Stress: 10,
				Activity: "", Eaten: boolPtr(false),
			},
			want: 2, // mood 1 still contributes 2 points
		},
		{
			name: "defaults only",
			rec:  domain.CheckInRecord{Mood: 5, Stress: 5},
			// mood 10 + stress 10 + food (unanswered) 2.5, rounded
			want: 23,
		},
		{
			name: "optimal sleep band",
			rec:  domain.CheckInRecord{Sleep: 7.5, Mood: 5, Stress: 5},
			want: 43,
		},
		{
			name: "oversleeping is penalized",
			rec:  domain.CheckInRecord{Sleep: 11, Mood: 5, Stress: 5},
			want: 33,
		},
		{
			name: "short sleep tier",
			rec:  domain.CheckInRecord{Sleep: 4, Mood: 5, Stress: 5},
			want: 28,
		},
		{
			name: "hydration capped at 8 cups",
			rec:  domain.CheckInRecord{Mood: 5, Stress: 5, Hydration: 16},
			want: 43,
		},
		{
			name: "movement keyword scores below exercise",
			rec:  domain.CheckInRecord{Mood: 5, Stress: 5, Activity: "stretching before bed"},
			want: 33,
		},
		{
			name: "any activity text earns a little",
			rec:  domain.CheckInRecord{Mood: 5, Stress: 5, Activity: "watched tv"},
			want: 28,
		},
		{
			name: "exercise keyword is case-insensitive",
			rec:  domain.CheckInRecord{Mood: 5, Stress: 5, Activity: "Evening RUN with friends"},
			want: 38,
		},
		{
			name: "zero mood defaults while zero stress counts",
			rec:  domain.CheckInRecord{},
			// mood 0 -> default 5 -> 10 pts; stress 0 is genuine -> 20 pts;
			// food unanswered -> 2.5
			want: 33,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeScore(tt.rec); got != tt.want {
				t.Errorf("ComputeScore() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestComputeScore_Bounds(t *testing.T) {
	// Out-of-range inputs are clamped, never rejected; the result stays in
	// [0,100] for anything the decoder can produce.
	extremes := []domain.CheckInRecord{
		{Sleep: -5, Mood: -3, Hydration: -1, Stress: 99},
		{Sleep: 99, Mood: 99, Hydration: 99, Stress: -10, Activity: "gym", Eaten: boolPtr(true)},
	}
	for _, rec := range extremes {
		got := ComputeScore(rec)
		if got < 0 || got > 100 {
			t.Errorf("ComputeScore(%+v) = %d, out of [0,100]", rec, got)
		}
	}
}

func TestComputeScore_MonotoneInMoodAndStress(t *testing.T) {
	base := domain.CheckInRecord{Sleep: 7, Hydration: 4, Stress: 5, Activity: "walk"}

	prev := -1
	for mood := 1; mood <= 10; mood++ {
		rec := base
		rec.Mood = mood
		got := ComputeScore(rec)
		if got < prev {
			t.Fatalf("score decreased when mood rose to %d: %d < %d", mood, got, prev)
		}
		prev = got
	}

	base.Mood = 5
	prev = 101
	for stress := 0; stress <= 10; stress++ {
		rec := base
		rec.Stress = stress
		got := ComputeScore(rec)
		if got > prev {
			t.Fatalf("score increased when stress rose to %d: %d > %d", stress, got, prev)
		}
		prev = got
	}
}

func TestComputeScore_Idempotent(t *testing.T) {
	rec := domain.CheckInRecord{Sleep: 6.5, Mood: 7, Hydration: 5, Stress: 4, Activity: "yoga"}
	first := ComputeScore(rec)
	second := ComputeScore(rec)
	if first != second {
		t.Fatalf("ComputeScore not idempotent: %d then %d", first, second)
	}
}

func TestSimpleScore(t *testing.T) {
	tests := []struct {
		name string
		rec  domain.CheckInRecord
		want int
	}{
		{
			name: "all factors maxed",
			rec:  domain.CheckInRecord{Sleep: 8, Mood: 10, Hydration: 8, Stress: 0, Activity: "anything"},
			want: 100,
		},
		{
			name: "defaults with no activity",
			rec:  domain.CheckInRecord{Mood: 5, Stress: 5},
			want: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SimpleScore(tt.rec); got != tt.want {
				t.Errorf("SimpleScore() = %d, want %d", got, tt.want)
			}
		})
	}
}
