package domain

import (
	"time"

	"github.com/google/uuid"
)

// HistoryEntry is an immutable snapshot of the daily check-in document,
// appended once per slot submission. Entries are never updated or merged, so
// several entries can share a date; consumers that need one value per date
// take the most recent by recorded_at.
type HistoryEntry struct {
	ID         uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID    `gorm:"type:uuid;not null;index:idx_checkin_history_user_recorded" json:"user_id"`
	Date       string       `gorm:"type:varchar(10);not null;index" json:"date"`
	Checkins   DailyCheckIn `gorm:"serializer:json" json:"checkins"`
	RecordedAt time.Time    `gorm:"not null;index:idx_checkin_history_user_recorded,sort:desc" json:"recorded_at"`
	CreatedAt  time.Time    `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (HistoryEntry) TableName() string {
	return "checkin_history"
}

// HistoryEntryResponse is the response body for history endpoints.
// @Description One archived check-in snapshot.
type HistoryEntryResponse struct {
	ID         uuid.UUID    `json:"id"`
	UserID     uuid.UUID    `json:"user_id"`
	Date       string       `json:"date"`
	Checkins   DailyCheckIn `json:"checkins"`
	RecordedAt time.Time    `json:"recorded_at"`
}

func (e *HistoryEntry) ToResponse() HistoryEntryResponse {
	return HistoryEntryResponse{
		ID:         e.ID,
		UserID:     e.UserID,
		Date:       e.Date,
		Checkins:   e.Checkins,
		RecordedAt: e.RecordedAt,
	}
}

// HistoryListResponse is the response body for listing history entries.
// @Description Paginated check-in history.
type HistoryListResponse struct {
	// Archived snapshots, newest first
	Data []HistoryEntryResponse `json:"data"`
	// Pagination metadata
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains cursor pagination metadata.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more"`
}

// HistoryFilter contains filter parameters for listing history entries.
type HistoryFilter struct {
	// Inclusive date bounds (YYYY-MM-DD); empty string means unbounded
	FromDate string
	ToDate   string
	Limit    int
	Cursor   string
}
