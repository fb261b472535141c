package main

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/wellnest/wellness-checkin/internal/config"
	"github.com/wellnest/wellness-checkin/internal/seed"
)

func main() {
	cfg := config.Load()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	sampleUsers := []struct {
		id uuid.UUID
		tz string
	}{
		{uuid.MustParse("11111111-1111-1111-1111-111111111111"), "Europe/Amsterdam"},
		{uuid.MustParse("22222222-2222-2222-2222-222222222222"), "America/New_York"},
		{uuid.MustParse("33333333-3333-3333-3333-333333333333"), "Asia/Tokyo"},
		{uuid.MustParse("44444444-4444-4444-4444-444444444444"), "Australia/Sydney"},
	}

	fmt.Println("\nSample user IDs for testing:")
	for _, u := range sampleUsers {
		fmt.Printf("  %s (%s)\n", u.id, u.tz)
	}
}
