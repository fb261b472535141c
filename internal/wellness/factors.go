package wellness

import (
	"fmt"
	"sort"
	"strings"

	"github.com/wellnest/wellness-checkin/internal/domain"
)

// Factor names used as map keys and in correlations.
const (
	FactorSleep     = "sleep"
	FactorFood      = "food"
	FactorHydration = "hydration"
	FactorStress    = "stress"
	FactorMood      = "mood"
	FactorActivity  = "activity"
	FactorEnergy    = "energy"
)

// AnalyzeSleep classifies last night's sleep. Thresholds: 0h and <6h are
// high impact, <7h moderate, 7-9h optimal, above that moderate again.
func AnalyzeSleep(hours float64) domain.FactorAnalysis {
	switch {
	case hours == 0:
		return domain.FactorAnalysis{
			Impact:          domain.ImpactHigh,
			AffectedFactors: []string{"mood", "stress", "energy", "focus"},
			Insights: []string{
				"No sleep recorded - sleep deprivation significantly impacts mood and stress",
				"Chronic sleep loss raises cortisol, the stress hormone",
				"Sleep drives memory consolidation and learning",
			},
			Recommendations: []string{
				"Aim for 7-9 hours of sleep",
				"Keep a consistent sleep schedule, weekends included",
				"Avoid screens for an hour before bed",
			},
		}
	case hours < 6:
		return domain.FactorAnalysis{
			Impact:          domain.ImpactHigh,
			AffectedFactors: []string{"mood", "stress", "energy", "focus", "immune"},
			Insights: []string{
				fmt.Sprintf("Your sleep (%.1fh) is below the optimal 7-9h range", hours),
				"Insufficient sleep can raise cortisol by up to 45%",
				"Mood regulation suffers - irritability and anxiety increase",
			},
			Recommendations: []string{
				"Prioritize sleep - it affects everything else",
				"Try for at least 7 hours tonight",
				"Limit caffeine after 2 PM",
			},
		}
	case hours < 7:
		return domain.FactorAnalysis{
			Impact:          domain.ImpactModerate,
			AffectedFactors: []string{"mood", "stress", "energy"},
			Insights: []string{
				fmt.Sprintf("Your sleep (%.1fh) is slightly below optimal", hours),
				"Even one hour less sleep can affect mood and stress",
			},
			Recommendations: []string{
				"Try to get 7-8 hours for better mood and energy",
				"Move bedtime 15 minutes earlier each night",
			},
		}
	case hours <= 9:
		return domain.FactorAnalysis{
			Impact:          domain.ImpactOptimal,
			AffectedFactors: []string{},
			Insights: []string{
				fmt.Sprintf("Your sleep (%.1fh) is in the optimal range", hours),
				"Optimal sleep supports mood regulation and stress management",
			},
			Recommendations: []string{
				"Keep this sleep schedule",
				"Consistency matters - same sleep and wake times daily",
			},
		}
	default:
		return domain.FactorAnalysis{
			Impact:          domain.ImpactModerate,
			AffectedFactors: []string{"mood", "energy"},
			Insights: []string{
				fmt.Sprintf("Your sleep (%.1fh) is above the recommended 9h maximum", hours),
				"Oversleeping can also affect mood and energy",
			},
			Recommendations: []string{
				"Aim for 7-9 hours",
			},
		}
	}
}

// AnalyzeFood classifies the eaten answer. Skipping a meal weighs heaviest in
// the morning; an unanswered question stays neutral.
func AnalyzeFood(eaten *bool, slot domain.Slot) domain.FactorAnalysis {
	if eaten == nil {
		return domain.FactorAnalysis{
			Impact:          domain.ImpactNeutral,
			AffectedFactors: []string{},
			Insights:        []string{"No meal information recorded for this slot"},
			Recommendations: []string{"Log whether you've eaten for better analysis"},
		}
	}

	if *eaten {
		return domain.FactorAnalysis{
			Impact:          domain.ImpactPositive,
			AffectedFactors: []string{},
			Insights: []string{
				"Regular meals help stabilize blood sugar and mood",
				"Eating regularly supports energy throughout the day",
			},
			Recommendations: []string{
				"Continue with regular meals",
				"Include protein, complex carbs, and vegetables",
			},
		}
	}

	affected := []string{"mood", "stress", "energy", "focus"}
	if slot == domain.SlotMorning {
		return domain.FactorAnalysis{
			Impact:          domain.ImpactHigh,
			AffectedFactors: affected,
			Insights: []string{
				"Skipping breakfast affects blood sugar and energy",
				"Low blood sugar can increase stress and irritability",
			},
			Recommendations: []string{
				"Try a protein-rich breakfast",
				"Even a small snack helps stabilize blood sugar",
			},
		}
	}
	return domain.FactorAnalysis{
		Impact:          domain.ImpactModerate,
		AffectedFactors: affected,
		Insights: []string{
			"Skipping meals causes energy dips and mood swings",
			"May impact stress levels and decision-making",
		},
		Recommendations: []string{
			"A balanced meal with protein helps maintain energy",
			"Have a small healthy snack if skipping a full meal",
		},
	}
}

// AnalyzeHydration classifies cups of water: 0 high, under 4 moderate,
// under 8 low, 8+ optimal.
func AnalyzeHydration(cups int) domain.FactorAnalysis {
	switch {
	case cups <= 0:
		return domain.FactorAnalysis{
			Impact:          domain.ImpactHigh,
			AffectedFactors: []string{"mood", "energy", "focus", "physical_performance"},
			Insights: []string{
				"No water intake recorded",
				"Even mild dehydration (1-2%) lowers mood and energy",
				"Dehydration raises cortisol and dulls attention",
			},
			Recommendations: []string{
				"Drink water now - aim for 8 cups daily",
				"Carry a water bottle with you",
			},
		}
	case cups < 4:
		return domain.FactorAnalysis{
			Impact:          domain.ImpactModerate,
			AffectedFactors: []string{"mood", "energy", "focus"},
			Insights: []string{
				fmt.Sprintf("Your hydration (%d cups) is below the recommended 8 cups", cups),
				"Low hydration affects mood, energy, and cognition",
			},
			Recommendations: []string{
				"Increase water intake toward 8 cups daily",
				"Drink water with and between meals",
			},
		}
	case cups < 8:
		return domain.FactorAnalysis{
			Impact:          domain.ImpactLow,
			AffectedFactors: []string{},
			Insights: []string{
				fmt.Sprintf("Your hydration (%d cups) is moderate", cups),
			},
			Recommendations: []string{
				"Aim for 8 cups for optimal mood and energy",
			},
		}
	default:
		return domain.FactorAnalysis{
			Impact:          domain.ImpactOptimal,
			AffectedFactors: []string{},
			Insights: []string{
				fmt.Sprintf("Your hydration (%d cups) is excellent", cups),
			},
			Recommendations: []string{
				"Keep maintaining good hydration",
			},
		}
	}
}

// AnalyzeStress classifies the 1-10 stress rating: 8+ high, 6+ moderate,
// 4 and below optimal, 5 moderate by default.
func AnalyzeStress(level int) domain.FactorAnalysis {
	switch {
	case level >= 8:
		return domain.FactorAnalysis{
			Impact:          domain.ImpactHigh,
			AffectedFactors: []string{"sleep", "mood", "eating", "immune", "energy"},
			Insights: []string{
				fmt.Sprintf("Your stress level (%d/10) is very high", level),
				"High stress disrupts sleep and eating patterns",
				"Elevated cortisol increases anxiety and irritability",
			},
			Recommendations: []string{
				"Try breathing exercises, meditation, or yoga",
				"Take breaks every 1-2 hours",
				"Physical activity helps lower stress hormones",
			},
		}
	case level >= 6:
		return domain.FactorAnalysis{
			Impact:          domain.ImpactModerate,
			AffectedFactors: []string{"sleep", "mood", "eating"},
			Insights: []string{
				fmt.Sprintf("Your stress level (%d/10) is elevated", level),
				"Elevated stress can affect sleep quality",
			},
			Recommendations: []string{
				"Try deep breathing, a walk, or music",
				"Take regular breaks through the day",
			},
		}
	case level <= 4:
		return domain.FactorAnalysis{
			Impact:          domain.ImpactOptimal,
			AffectedFactors: []string{},
			Insights: []string{
				fmt.Sprintf("Your stress level (%d/10) is well-managed", level),
			},
			Recommendations: []string{
				"Keep up your stress management routine",
			},
		}
	default:
		return domain.FactorAnalysis{
			Impact:          domain.ImpactModerate,
			AffectedFactors: []string{},
			Insights: []string{
				fmt.Sprintf("Your stress level (%d/10) is manageable", level),
			},
			Recommendations: []string{
				"Continue monitoring stress levels",
			},
		}
	}
}

// AnalyzeMood classifies the 1-10 mood rating: 3 and below high impact,
// 5 and below moderate, 7+ positive, 6 neutral.
func AnalyzeMood(level int) domain.FactorAnalysis {
	switch {
	case level <= 3:
		return domain.FactorAnalysis{
			Impact:          domain.ImpactHigh,
			AffectedFactors: []string{"activity", "sleep", "eating", "social"},
			Insights: []string{
				fmt.Sprintf("Your mood (%d/10) is very low", level),
				"Low mood reduces motivation for physical activity",
				"Social withdrawal is common with low mood",
			},
			Recommendations: []string{
				"Start small: a 5-minute walk, text a friend, or music",
				"Get some light - even 10 minutes outside helps",
				"If low mood persists for 2+ weeks, consider professional support",
			},
		}
	case level <= 5:
		return domain.FactorAnalysis{
			Impact:          domain.ImpactModerate,
			AffectedFactors: []string{"activity", "sleep", "social"},
			Insights: []string{
				fmt.Sprintf("Your mood (%d/10) is below average", level),
				"Lower mood can reduce motivation for activities",
			},
			Recommendations: []string{
				"Movement helps - try a short walk or stretch",
				"Connect with others - social support boosts mood",
			},
		}
	case level >= 7:
		return domain.FactorAnalysis{
			Impact:          domain.ImpactPositive,
			AffectedFactors: []string{},
			Insights: []string{
				fmt.Sprintf("Your mood (%d/10) is positive", level),
			},
			Recommendations: []string{
				"Maintain the habits supporting your mood",
			},
		}
	default:
		return domain.FactorAnalysis{
			Impact:          domain.ImpactNeutral,
			AffectedFactors: []string{},
			Insights: []string{
				fmt.Sprintf("Your mood (%d/10) is stable", level),
			},
			Recommendations: []string{
				"Continue activities that support positive mood",
			},
		}
	}
}

var activityExerciseKeywords = []string{
	"exercise", "workout", "gym", "run", "walk", "jog", "bike",
	"yoga", "stretch", "sport",
}

var activityStudyKeywords = []string{"study", "homework", "class", "read"}

// AnalyzeActivity classifies the free-text activity field: empty means low
// (with everything affected), exercise keywords are positive, study keywords
// neutral with stress and mood flagged, anything else plain neutral.
func AnalyzeActivity(activity string) domain.FactorAnalysis {
	if strings.TrimSpace(activity) == "" {
		return domain.FactorAnalysis{
			Impact:          domain.ImpactLow,
			AffectedFactors: []string{"mood", "stress", "sleep", "energy"},
			Insights: []string{
				"No activity recorded - movement matters for wellness",
				"Physical activity releases endorphins, natural mood boosters",
			},
			Recommendations: []string{
				"Aim for 30 minutes of moderate activity daily",
				"Start small: a 10-minute walk or a stretch",
			},
		}
	}

	lower := strings.ToLower(activity)
	if containsAny(lower, activityExerciseKeywords) {
		return domain.FactorAnalysis{
			Impact:          domain.ImpactPositive,
			AffectedFactors: []string{},
			Insights: []string{
				"Physical activity supports mood and reduces stress",
				"Exercise improves sleep quality and energy",
			},
			Recommendations: []string{
				"Keep up the regular activity",
				"Mix up activities to stay engaged",
			},
		}
	}
	if containsAny(lower, activityStudyKeywords) {
		return domain.FactorAnalysis{
			Impact:          domain.ImpactNeutral,
			AffectedFactors: []string{"mood", "stress"},
			Insights: []string{
				"Study time is important but can raise stress",
			},
			Recommendations: []string{
				"Combine study with movement breaks",
				"Try 25 minutes of study, then a 5 minute break",
			},
		}
	}
	return domain.FactorAnalysis{
		Impact:          domain.ImpactNeutral,
		AffectedFactors: []string{},
		Insights: []string{
			"Activity recorded - consider adding physical movement",
		},
		Recommendations: []string{
			"Try to include some physical activity in your routine",
		},
	}
}

// AnalyzeAll runs every factor analysis on a record, evaluates the pairwise
// correlation rules, and rolls up a summary. The correlation rules are
// independent; any subset may fire.
func AnalyzeAll(rec domain.CheckInRecord, slot domain.Slot) domain.FactorBundle {
	rec.Normalize()

	analyses := map[string]domain.FactorAnalysis{
		FactorSleep:     AnalyzeSleep(rec.Sleep),
		FactorFood:      AnalyzeFood(rec.Eaten, slot),
		FactorHydration: AnalyzeHydration(rec.Hydration),
		FactorStress:    AnalyzeStress(rec.Stress),
		FactorMood:      AnalyzeMood(rec.Mood),
		FactorActivity:  AnalyzeActivity(rec.Activity),
	}

	var correlations []domain.Correlation

	if rec.Sleep < 6 && rec.Stress >= 6 {
		correlations = append(correlations, domain.Correlation{
			Factor1:        FactorSleep,
			Factor2:        FactorStress,
			Correlation:    "negative",
			Insight:        "Poor sleep and high stress reinforce each other - each makes the other worse.",
			Recommendation: "Focus on sleep hygiene first; better sleep will help reduce stress.",
		})
	}

	activityLower := strings.ToLower(rec.Activity)
	if rec.Mood <= 5 && !strings.Contains(activityLower, "exercise") && !strings.Contains(activityLower, "walk") {
		correlations = append(correlations, domain.Correlation{
			Factor1:        FactorMood,
			Factor2:        FactorActivity,
			Correlation:    "negative",
			Insight:        "Low mood reduces motivation for activity, but activity actually improves mood.",
			Recommendation: "Try a short 10-minute walk - movement releases endorphins that lift mood.",
		})
	}

	if rec.Eaten != nil && !*rec.Eaten && rec.Stress >= 6 {
		correlations = append(correlations, domain.Correlation{
			Factor1:        FactorFood,
			Factor2:        FactorStress,
			Correlation:    "negative",
			Insight:        "Skipping meals raises stress - low blood sugar triggers the stress response.",
			Recommendation: "Eat regular meals to stabilize blood sugar and reduce stress.",
		})
	}

	if rec.Hydration < 4 {
		correlations = append(correlations, domain.Correlation{
			Factor1:        FactorHydration,
			Factor2:        FactorEnergy,
			Correlation:    "negative",
			Insight:        "Low hydration affects energy levels and cognitive function.",
			Recommendation: "Increase water intake - even mild dehydration reduces energy.",
		})
	}

	if rec.Stress >= 7 && rec.Sleep < 7 {
		correlations = append(correlations, domain.Correlation{
			Factor1:        FactorStress,
			Factor2:        FactorSleep,
			Correlation:    "negative",
			Insight:        "High stress disrupts sleep, and poor sleep increases stress - it's a cycle.",
			Recommendation: "Try winding down before bed: meditation, breathing, or light stretching.",
		})
	}

	return domain.FactorBundle{
		Analyses:     analyses,
		Correlations: correlations,
		Summary:      summarize(analyses),
	}
}

// summarize picks the highest-severity tier present across the analyses.
func summarize(analyses map[string]domain.FactorAnalysis) domain.AnalysisSummary {
	var high, moderate []string
	for factor, a := range analyses {
		switch a.Impact {
		case domain.ImpactHigh:
			high = append(high, factor)
		case domain.ImpactModerate:
			moderate = append(moderate, factor)
		}
	}
	sort.Strings(high)
	sort.Strings(moderate)

	if len(high) > 0 {
		plural := ""
		if len(high) > 1 {
			plural = "s"
		}
		return domain.AnalysisSummary{
			Priority: "high",
			Message: fmt.Sprintf("Your wellness analysis shows %d high-impact area%s: %s. Focus on these first for the biggest impact.",
				len(high), plural, strings.Join(high, ", ")),
		}
	}
	if len(moderate) > 0 {
		return domain.AnalysisSummary{
			Priority: "moderate",
			Message: fmt.Sprintf("Overall wellness is good, but %s could be improved for better results.",
				strings.Join(moderate, " and ")),
		}
	}
	return domain.AnalysisSummary{
		Priority: "optimal",
		Message:  "Your wellness factors are well-balanced. Keep maintaining these healthy habits.",
	}
}
