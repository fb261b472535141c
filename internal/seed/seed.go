package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/wellnest/wellness-checkin/internal/domain"
	"gorm.io/gorm"
)

const seededDays = 40

var activities = []string{
	"morning run",
	"studied for exams",
	"gym workout",
	"team meeting",
	"walked the dog",
	"reading",
	"coding project",
	"yoga session",
	"",
}

// Run seeds the database with sample users and check-in history. Safe to call
// multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.User{}, &domain.HistoryEntry{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	users := []domain.User{
		{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Timezone: "Europe/Amsterdam"},
		{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Timezone: "America/New_York"},
		{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Timezone: "Asia/Tokyo"},
		{ID: uuid.MustParse("44444444-4444-4444-4444-444444444444"), Timezone: "Australia/Sydney"},
	}

	for _, user := range users {
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _, user := range users {
		if err := seedHistoryForUser(db, user, rng); err != nil {
			return err
		}
	}

	log.Println("Seed completed")
	return nil
}

func seedHistoryForUser(db *gorm.DB, user domain.User, rng *rand.Rand) error {
	now := time.Now().In(user.Location())
	for i := 1; i <= seededDays; i++ {
		// Occasional skipped day keeps streaks interesting.
		if rng.Float32() < 0.15 {
			continue
		}

		date := now.AddDate(0, 0, -i)
		dateStr := date.Format(domain.DateFormat)

		day := domain.DefaultDailyCheckIn(dateStr)
		seedRecord(&day.Morning, rng, true)
		if rng.Float32() < 0.7 {
			seedRecord(&day.Afternoon, rng, false)
		}
		if rng.Float32() < 0.6 {
			seedRecord(&day.Evening, rng, false)
		}

		recordedAt := time.Date(date.Year(), date.Month(), date.Day(), 20, rng.Intn(60), 0, 0, user.Location()).UTC()
		entry := domain.HistoryEntry{
			ID:         uuid.New(),
			UserID:     user.ID,
			Date:       dateStr,
			Checkins:   *day,
			RecordedAt: recordedAt,
		}

		if err := db.Where("id = ?", entry.ID).FirstOrCreate(&entry).Error; err != nil {
			return fmt.Errorf("failed to create history entry: %w", err)
		}
	}
	return nil
}

func seedRecord(rec *domain.CheckInRecord, rng *rand.Rand, morning bool) {
	eaten := rng.Float32() < 0.8
	rec.Eaten = &eaten
	rec.Activity = activities[rng.Intn(len(activities))]
	rec.Mood = 3 + rng.Intn(8)
	rec.Stress = rng.Intn(9)
	rec.Hydration = rng.Intn(10)
	if morning {
		rec.Sleep = 5 + rng.Float64()*4
	}
	rec.Submitted = true
}
