package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/wellnest/wellness-checkin/internal/domain"
	"github.com/wellnest/wellness-checkin/pkg/pagination"
	"gorm.io/gorm"
)

// HistoryRepository persists the append-only check-in history. Every slot
// submission appends a full snapshot of the day's document; nothing is ever
// updated in place.
type HistoryRepository interface {
	Append(ctx context.Context, entry *domain.HistoryEntry) error
	// List pages entries for a user, newest first, with cursor pagination.
	List(ctx context.Context, userID uuid.UUID, filter domain.HistoryFilter) ([]domain.HistoryEntry, error)
	// ListAll returns every entry for a user, for streak and trend math.
	ListAll(ctx context.Context, userID uuid.UUID) ([]domain.HistoryEntry, error)
}

type historyRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) Append(ctx context.Context, entry *domain.HistoryEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *historyRepository) List(ctx context.Context, userID uuid.UUID, filter domain.HistoryFilter) ([]domain.HistoryEntry, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("recorded_at DESC, id DESC")

	// Date filters compare the lexically-sortable YYYY-MM-DD column
	if filter.FromDate != "" {
		query = query.Where("date >= ?", filter.FromDate)
	}
	if filter.ToDate != "" {
		query = query.Where("date <= ?", filter.ToDate)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			query = query.Where(
				"(recorded_at < ?) OR (recorded_at = ? AND id < ?)",
				cursor.RecordedAt, cursor.RecordedAt, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var entries []domain.HistoryEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *historyRepository) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.HistoryEntry, error) {
	var entries []domain.HistoryEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("recorded_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
