package domain

// Slot identifies one of the three daily check-in windows.
// @Description Check-in slot: morning, afternoon, or evening.
type Slot string

const (
	SlotMorning   Slot = "morning"
	SlotAfternoon Slot = "afternoon"
	SlotEvening   Slot = "evening"
)

// Slots lists all slots in chronological order.
var Slots = []Slot{SlotMorning, SlotAfternoon, SlotEvening}

// ParseSlot validates a slot name from the URL path.
func ParseSlot(s string) (Slot, error) {
	switch Slot(s) {
	case SlotMorning, SlotAfternoon, SlotEvening:
		return Slot(s), nil
	}
	return "", ErrInvalidSlot
}

// DateFormat is the calendar-date layout used throughout (dates, not instants).
const DateFormat = "2006-01-02"

const (
	DefaultMood      = 5
	DefaultStress    = 5
	DefaultHydration = 0
	MaxHydrationCups = 16
	MaxSleepHours    = 12.0
)

// CheckInRecord is the state of a single slot. The sleep field is only
// collected on the morning slot; other slots carry it as zero.
type CheckInRecord struct {
	// Whether the user has eaten this slot; nil means not answered
	Eaten *bool `json:"eaten"`
	// Free-text description of activity
	Activity string `json:"activity"`
	// Mood rating 1 (low) to 10 (high)
	Mood int `json:"mood"`
	// Stress rating 0 (none) to 10 (high)
	Stress int `json:"stress"`
	// Hours slept last night (morning slot only)
	Sleep float64 `json:"sleep"`
	// Cups of water so far today
	Hydration int `json:"hydration"`
	// True once the slot has been submitted
	Submitted bool `json:"submitted"`
	// Advice generated at submit time
	Advice string `json:"advice"`
}

// NewCheckInRecord returns a slot record with the documented defaults.
func NewCheckInRecord() CheckInRecord {
	return CheckInRecord{
		Mood:      DefaultMood,
		Stress:    DefaultStress,
		Hydration: DefaultHydration,
	}
}

// Normalize substitutes defaults for missing numeric fields and clamps
// out-of-range values. Malformed input is recovered, never rejected.
func (r *CheckInRecord) Normalize() {
	if r.Mood == 0 {
		r.Mood = DefaultMood
	}
	r.Mood = clampInt(r.Mood, 1, 10)

	// Stress zero is meaningful (no stress at all), so it is clamped, not
	// defaulted; the creation-time default comes from NewCheckInRecord.
	r.Stress = clampInt(r.Stress, 0, 10)

	r.Hydration = clampInt(r.Hydration, 0, MaxHydrationCups)

	if r.Sleep < 0 {
		r.Sleep = 0
	}
	if r.Sleep > MaxSleepHours {
		r.Sleep = MaxSleepHours
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DailyCheckIn is the per-user, per-day check-in document. It is mutated in
// place throughout the day and superseded by a fresh default document when a
// new calendar day begins.
type DailyCheckIn struct {
	// Calendar date this document belongs to (YYYY-MM-DD)
	Date string `json:"date"`
	// Morning slot
	Morning CheckInRecord `json:"morning"`
	// Afternoon slot
	Afternoon CheckInRecord `json:"afternoon"`
	// Evening slot
	Evening CheckInRecord `json:"evening"`
}

// DefaultDailyCheckIn builds the fresh document for a calendar day. The day
// rollover itself happens in the service layer: whenever the stored date no
// longer matches today, this replaces the stored document.
func DefaultDailyCheckIn(date string) *DailyCheckIn {
	return &DailyCheckIn{
		Date:      date,
		Morning:   NewCheckInRecord(),
		Afternoon: NewCheckInRecord(),
		Evening:   NewCheckInRecord(),
	}
}

// Record returns a pointer to the record for the given slot.
func (d *DailyCheckIn) Record(slot Slot) *CheckInRecord {
	switch slot {
	case SlotMorning:
		return &d.Morning
	case SlotAfternoon:
		return &d.Afternoon
	case SlotEvening:
		return &d.Evening
	}
	return nil
}

// SubmittedRecords returns the records of all submitted slots, in slot order.
func (d *DailyCheckIn) SubmittedRecords() []CheckInRecord {
	var out []CheckInRecord
	for _, slot := range Slots {
		if rec := d.Record(slot); rec.Submitted {
			out = append(out, *rec)
		}
	}
	return out
}

// HasSubmission reports whether any slot of the day was submitted.
func (d *DailyCheckIn) HasSubmission() bool {
	return d.Morning.Submitted || d.Afternoon.Submitted || d.Evening.Submitted
}

// AggregateContext summarizes a day's submitted check-ins for advice
// selection. AvgSleep is zero when no submitted slot recorded sleep.
type AggregateContext struct {
	AvgMood        float64 `json:"avg_mood"`
	AvgStress      float64 `json:"avg_stress"`
	AvgSleep       float64 `json:"avg_sleep"`
	SubmittedCount int     `json:"submitted_count"`
}

// Aggregates computes the advice-selection context from the day's submitted
// slots. With no submissions the neutral defaults (mood 5, stress 5, sleep 0)
// are reported.
func (d *DailyCheckIn) Aggregates() AggregateContext {
	recs := d.SubmittedRecords()
	ctx := AggregateContext{
		AvgMood:        float64(DefaultMood),
		AvgStress:      float64(DefaultStress),
		SubmittedCount: len(recs),
	}
	if len(recs) == 0 {
		return ctx
	}

	var moodSum, stressSum, sleepSum float64
	sleepCount := 0
	for _, rec := range recs {
		mood := rec.Mood
		if mood == 0 {
			mood = DefaultMood
		}
		moodSum += float64(mood)
		stressSum += float64(rec.Stress)
		if rec.Sleep > 0 {
			sleepSum += rec.Sleep
			sleepCount++
		}
	}

	ctx.AvgMood = moodSum / float64(len(recs))
	ctx.AvgStress = stressSum / float64(len(recs))
	if sleepCount > 0 {
		ctx.AvgSleep = sleepSum / float64(sleepCount)
	}
	return ctx
}

// UpdateSlotRequest is the request body for editing a slot before submission.
// All fields are optional; omitted fields keep their current value.
// @Description Partial update of one check-in slot.
type UpdateSlotRequest struct {
	// Whether the user has eaten this slot
	Eaten *bool `json:"eaten,omitempty"`
	// Free-text activity description (max 500 chars)
	Activity *string `json:"activity,omitempty" validate:"omitempty,max=500"`
	// Mood rating 1-10
	Mood *int `json:"mood,omitempty" validate:"omitempty,min=1,max=10"`
	// Stress rating 0-10
	Stress *int `json:"stress,omitempty" validate:"omitempty,min=0,max=10"`
	// Hours slept (0-12, morning slot)
	Sleep *float64 `json:"sleep,omitempty" validate:"omitempty,min=0,max=12"`
	// Cups of water (0-16)
	Hydration *int `json:"hydration,omitempty" validate:"omitempty,min=0,max=16"`
}

// Apply copies the provided fields onto the record and re-normalizes it.
func (req *UpdateSlotRequest) Apply(rec *CheckInRecord) {
	if req.Eaten != nil {
		rec.Eaten = req.Eaten
	}
	if req.Activity != nil {
		rec.Activity = *req.Activity
	}
	if req.Mood != nil {
		rec.Mood = *req.Mood
	}
	if req.Stress != nil {
		rec.Stress = *req.Stress
	}
	if req.Sleep != nil {
		rec.Sleep = *req.Sleep
	}
	if req.Hydration != nil {
		rec.Hydration = *req.Hydration
	}
	rec.Normalize()
}

// SubmitSlotResponse is returned when a slot is submitted.
// @Description Result of finalizing a check-in slot.
type SubmitSlotResponse struct {
	// Slot that was submitted
	Slot Slot `json:"slot"`
	// Wellness score (0-100) for the submitted record
	Score int `json:"score"`
	// Advice stored on the slot
	Advice string `json:"advice"`
	// Factor analysis for the submitted record
	Analysis FactorBundle `json:"analysis"`
	// The full daily document after submission
	Checkins DailyCheckIn `json:"checkins"`
}
