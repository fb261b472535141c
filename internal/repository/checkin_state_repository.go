package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/wellnest/wellness-checkin/internal/domain"
)

// checkInStateTTL keeps a stale document around long enough to survive
// timezone skew across the day boundary before it expires on its own.
const checkInStateTTL = 48 * time.Hour

// CheckInStateRepository stores the mutable current-day check-in document,
// one per user. Unlike the history table it is overwritten in place all day;
// the day rollover happens in the service layer.
type CheckInStateRepository interface {
	// Get returns the stored document, or (nil, nil) when none exists.
	Get(ctx context.Context, userID uuid.UUID) (*domain.DailyCheckIn, error)
	Put(ctx context.Context, userID uuid.UUID, day *domain.DailyCheckIn) error
}

type checkInStateRepository struct {
	rdb *redis.Client
}

func NewCheckInStateRepository(rdb *redis.Client) CheckInStateRepository {
	return &checkInStateRepository{rdb: rdb}
}

func stateKey(userID uuid.UUID) string {
	return fmt.Sprintf("checkin:current:%s", userID)
}

func (r *checkInStateRepository) Get(ctx context.Context, userID uuid.UUID) (*domain.DailyCheckIn, error) {
	raw, err := r.rdb.Get(ctx, stateKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load check-in state: %w", err)
	}

	var day domain.DailyCheckIn
	if err := json.Unmarshal(raw, &day); err != nil {
		return nil, fmt.Errorf("decode check-in state: %w", err)
	}
	return &day, nil
}

func (r *checkInStateRepository) Put(ctx context.Context, userID uuid.UUID, day *domain.DailyCheckIn) error {
	raw, err := json.Marshal(day)
	if err != nil {
		return fmt.Errorf("encode check-in state: %w", err)
	}
	if err := r.rdb.Set(ctx, stateKey(userID), raw, checkInStateTTL).Err(); err != nil {
		return fmt.Errorf("store check-in state: %w", err)
	}
	return nil
}
