package domain

// Impact classifies how strongly a wellness factor is affecting the user.
// @Description Impact tier for a single wellness factor.
type Impact string

const (
	ImpactHigh     Impact = "high"
	ImpactModerate Impact = "moderate"
	ImpactLow      Impact = "low"
	ImpactOptimal  Impact = "optimal"
	ImpactPositive Impact = "positive"
	ImpactNeutral  Impact = "neutral"
)

// FactorAnalysis is the derived assessment of one wellness factor.
// @Description Per-factor impact classification with insights.
type FactorAnalysis struct {
	// Impact tier
	Impact Impact `json:"impact"`
	// Other factors this one is currently affecting
	AffectedFactors []string `json:"affected_factors"`
	// Observations about the factor
	Insights []string `json:"insights"`
	// Suggested actions
	Recommendations []string `json:"recommendations"`
}

// Correlation is a heuristic, rule-triggered pairing of two factors. Not a
// statistical coefficient.
// @Description Rule-based pairwise factor correlation.
type Correlation struct {
	Factor1        string `json:"factor1"`
	Factor2        string `json:"factor2"`
	Correlation    string `json:"correlation"`
	Insight        string `json:"insight"`
	Recommendation string `json:"recommendation"`
}

// AnalysisSummary rolls the per-factor analyses up into a single priority.
type AnalysisSummary struct {
	// "high", "moderate", or "optimal"
	Priority string `json:"priority"`
	// Human-readable summary line
	Message string `json:"message"`
}

// FactorBundle is the full analysis of one check-in record.
// @Description Complete factor analysis for a check-in.
type FactorBundle struct {
	// Per-factor analyses keyed by factor name
	Analyses map[string]FactorAnalysis `json:"analyses"`
	// Correlations whose trigger rules fired
	Correlations []Correlation `json:"correlations"`
	// Rolled-up summary
	Summary AnalysisSummary `json:"summary"`
}

// StreakResult is the derived check-in streak state, recomputed on demand
// from the full history; never persisted.
// @Description Current and longest consecutive-day check-in streaks.
type StreakResult struct {
	// Consecutive days ending today (or yesterday if today is pending)
	CurrentStreak int `json:"current_streak"`
	// Longest consecutive-day run in history
	LongestStreak int `json:"longest_streak"`
	// Most recent checked-in date (YYYY-MM-DD), null if none
	LastCheckInDate *string `json:"last_check_in_date"`
}

// StreakResponse is the streak endpoint response.
// @Description Streak stats with a motivational message.
type StreakResponse struct {
	StreakResult
	// Flavor message for the current streak
	Message string `json:"message"`
}

// TrendPoint is one day of the weekly wellness series.
// @Description One day in the 7-day wellness trend.
type TrendPoint struct {
	// Weekday abbreviation (Mon, Tue, ...)
	Day string `json:"day"`
	// Calendar date (YYYY-MM-DD)
	Date string `json:"date"`
	// Daily wellness score (0-100), zero when no data
	Score int `json:"score"`
	// True when at least one submitted check-in backs the score
	HasData bool `json:"has_data"`
}

// WeeklyTrendResponse is the weekly trend endpoint response.
// @Description Last-7-days wellness score series, oldest first.
type WeeklyTrendResponse struct {
	Days []TrendPoint `json:"days"`
}

// AdviceRequest is the request body for the advice endpoint.
// @Description A free-text question for the wellness coach.
type AdviceRequest struct {
	// The user's question (max 1000 chars)
	Query string `json:"query" validate:"max=1000"`
}

// AdviceResponse is the advice endpoint response.
// @Description Advice text with its selection provenance.
type AdviceResponse struct {
	// The advice text
	Text string `json:"text"`
	// Branch tag of the deterministic selector, empty for proxied answers
	Branch string `json:"branch,omitempty"`
	// Answering source: "selector", the external provider name, or "fallback"
	Source string `json:"source"`
	// Aggregates the advice was based on
	Context AggregateContext `json:"context"`
}
