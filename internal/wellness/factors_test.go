package wellness

import (
	"testing"

	"github.com/wellnest/wellness-checkin/internal/domain"
)

func TestAnalyzeSleep(t *testing.T) {
	tests := []struct {
		name  string
		hours float64
		want  domain.Impact
	}{
		{"zero hours", 0, domain.ImpactHigh},
		{"severely short", 5.5, domain.ImpactHigh},
		{"slightly short", 6.5, domain.ImpactModerate},
		{"lower optimal bound", 7, domain.ImpactOptimal},
		{"upper optimal bound", 9, domain.ImpactOptimal},
		{"oversleeping", 10.5, domain.ImpactModerate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeSleep(tt.hours)
			if got.Impact != tt.want {
				t.Errorf("AnalyzeSleep(%v).Impact = %s, want %s", tt.hours, got.Impact, tt.want)
			}
			if len(got.Insights) == 0 || len(got.Recommendations) == 0 {
				t.Errorf("AnalyzeSleep(%v) returned empty insights or recommendations", tt.hours)
			}
		})
	}
}

func TestAnalyzeFood(t *testing.T) {
	tests := []struct {
		name  string
		eaten *bool
		slot  domain.Slot
		want  domain.Impact
	}{
		{"unanswered", nil, domain.SlotMorning, domain.ImpactNeutral},
		{"eaten", boolPtr(true), domain.SlotEvening, domain.ImpactPositive},
		{"skipped breakfast", boolPtr(false), domain.SlotMorning, domain.ImpactHigh},
		{"skipped lunch", boolPtr(false), domain.SlotAfternoon, domain.ImpactModerate},
		{"skipped dinner", boolPtr(false), domain.SlotEvening, domain.ImpactModerate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeFood(tt.eaten, tt.slot)
			if got.Impact != tt.want {
				t.Errorf("AnalyzeFood(%v, %s).Impact = %s, want %s", tt.eaten, tt.slot, got.Impact, tt.want)
			}
		})
	}
}

func TestAnalyzeHydration(t *testing.T) {
	tests := []struct {
		name string
		cups int
		want domain.Impact
	}{
		{"nothing", 0, domain.ImpactHigh},
		{"very low", 3, domain.ImpactModerate},
		{"moderate", 5, domain.ImpactLow},
		{"target", 8, domain.ImpactOptimal},
		{"above target", 12, domain.ImpactOptimal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AnalyzeHydration(tt.cups); got.Impact != tt.want {
				t.Errorf("AnalyzeHydration(%d).Impact = %s, want %s", tt.cups, got.Impact, tt.want)
			}
		})
	}
}

func TestAnalyzeStress(t *testing.T) {
	tests := []struct {
		name  string
		level int
		want  domain.Impact
	}{
		{"very high", 9, domain.ImpactHigh},
		{"boundary high", 8, domain.ImpactHigh},
		{"elevated", 6, domain.ImpactModerate},
		{"middling", 5, domain.ImpactModerate},
		{"managed", 3, domain.ImpactOptimal},
		{"no stress", 0, domain.ImpactOptimal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AnalyzeStress(tt.level); got.Impact != tt.want {
				t.Errorf("AnalyzeStress(%d).Impact = %s, want %s", tt.level, got.Impact, tt.want)
			}
		})
	}
}

func TestAnalyzeMood(t *testing.T) {
	tests := []struct {
		name  string
		level int
		want  domain.Impact
	}{
		{"very low", 2, domain.ImpactHigh},
		{"below average", 5, domain.ImpactModerate},
		{"stable", 6, domain.ImpactNeutral},
		{"positive", 8, domain.ImpactPositive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AnalyzeMood(tt.level); got.Impact != tt.want {
				t.Errorf("AnalyzeMood(%d).Impact = %s, want %s", tt.level, got.Impact, tt.want)
			}
		})
	}
}

func TestAnalyzeActivity(t *testing.T) {
	tests := []struct {
		name         string
		activity     string
		want         domain.Impact
		wantAffected int
	}{
		{"empty", "", domain.ImpactLow, 4},
		{"whitespace only", "   ", domain.ImpactLow, 4},
		{"exercise", "went for a jog", domain.ImpactPositive, 0},
		{"study", "homework all evening", domain.ImpactNeutral, 2},
		{"other", "watched a movie", domain.ImpactNeutral, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeActivity(tt.activity)
			if got.Impact != tt.want {
				t.Errorf("AnalyzeActivity(%q).Impact = %s, want %s", tt.activity, got.Impact, tt.want)
			}
			if len(got.AffectedFactors) != tt.wantAffected {
				t.Errorf("AnalyzeActivity(%q) affected %d factors, want %d",
					tt.activity, len(got.AffectedFactors), tt.wantAffected)
			}
		})
	}
}

func TestAnalyzeAll_Correlations(t *testing.T) {
	tests := []struct {
		name      string
		rec       domain.CheckInRecord
		slot      domain.Slot
		wantPairs [][2]string
	}{
		{
			name: "sleep deprived and stressed fires both sleep rules",
			rec:  domain.CheckInRecord{Sleep: 5, Stress: 8, Mood: 7, Hydration: 6, Activity: "run"},
			slot: domain.SlotMorning,
			wantPairs: [][2]string{
				{FactorSleep, FactorStress},
				{FactorStress, FactorSleep},
			},
		},
		{
			name:      "low mood without movement",
			rec:       domain.CheckInRecord{Sleep: 8, Stress: 3, Mood: 4, Hydration: 6, Activity: "reading"},
			slot:      domain.SlotEvening,
			wantPairs: [][2]string{{FactorMood, FactorActivity}},
		},
		{
			name:      "skipped meal under stress",
			rec:       domain.CheckInRecord{Sleep: 8, Stress: 7, Mood: 7, Hydration: 6, Eaten: boolPtr(false), Activity: "walk"},
			slot:      domain.SlotAfternoon,
			wantPairs: [][2]string{{FactorFood, FactorStress}},
		},
		{
			name:      "dehydration alone",
			rec:       domain.CheckInRecord{Sleep: 8, Stress: 2, Mood: 8, Hydration: 2, Activity: "gym"},
			slot:      domain.SlotEvening,
			wantPairs: [][2]string{{FactorHydration, FactorEnergy}},
		},
		{
			name:      "all factors healthy fires nothing",
			rec:       domain.CheckInRecord{Sleep: 8, Stress: 2, Mood: 8, Hydration: 8, Eaten: boolPtr(true), Activity: "yoga"},
			slot:      domain.SlotMorning,
			wantPairs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bundle := AnalyzeAll(tt.rec, tt.slot)

			if len(bundle.Correlations) != len(tt.wantPairs) {
				t.Fatalf("got %d correlations, want %d: %+v",
					len(bundle.Correlations), len(tt.wantPairs), bundle.Correlations)
			}
			for _, pair := range tt.wantPairs {
				found := false
				for _, c := range bundle.Correlations {
					if c.Factor1 == pair[0] && c.Factor2 == pair[1] {
						found = true
						if c.Correlation != "negative" {
							t.Errorf("correlation %s/%s direction = %q, want negative", pair[0], pair[1], c.Correlation)
						}
					}
				}
				if !found {
					t.Errorf("missing correlation %s -> %s", pair[0], pair[1])
				}
			}
		})
	}
}

func TestAnalyzeAll_Summary(t *testing.T) {
	tests := []struct {
		name         string
		rec          domain.CheckInRecord
		slot         domain.Slot
		wantPriority string
	}{
		{
			name:         "high impact factor dominates",
			rec:          domain.CheckInRecord{Sleep: 3, Stress: 2, Mood: 8, Hydration: 8, Eaten: boolPtr(true), Activity: "run"},
			slot:         domain.SlotMorning,
			wantPriority: "high",
		},
		{
			name:         "moderate without any high",
			rec:          domain.CheckInRecord{Sleep: 6.5, Stress: 2, Mood: 8, Hydration: 8, Eaten: boolPtr(true), Activity: "run"},
			slot:         domain.SlotMorning,
			wantPriority: "moderate",
		},
		{
			name:         "everything in range",
			rec:          domain.CheckInRecord{Sleep: 8, Stress: 2, Mood: 8, Hydration: 8, Eaten: boolPtr(true), Activity: "yoga"},
			slot:         domain.SlotEvening,
			wantPriority: "optimal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bundle := AnalyzeAll(tt.rec, tt.slot)
			if bundle.Summary.Priority != tt.wantPriority {
				t.Errorf("Summary.Priority = %q, want %q (message: %s)",
					bundle.Summary.Priority, tt.wantPriority, bundle.Summary.Message)
			}
			if len(bundle.Analyses) != 6 {
				t.Errorf("got %d analyses, want 6", len(bundle.Analyses))
			}
		})
	}
}
