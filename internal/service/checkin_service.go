package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wellnest/wellness-checkin/internal/domain"
	"github.com/wellnest/wellness-checkin/internal/metrics"
	"github.com/wellnest/wellness-checkin/internal/repository"
	"github.com/wellnest/wellness-checkin/internal/wellness"
	"github.com/wellnest/wellness-checkin/pkg/pagination"
)

type CheckInService interface {
	// Today returns the current-day document, rolling over to a fresh one
	// when the stored date no longer matches today in the user's timezone.
	Today(ctx context.Context, userID uuid.UUID) (*domain.DailyCheckIn, error)
	// UpdateSlot applies a partial edit to an unsubmitted slot.
	UpdateSlot(ctx context.Context, userID uuid.UUID, slot domain.Slot, req *domain.UpdateSlotRequest) (*domain.DailyCheckIn, error)
	// SubmitSlot finalizes a slot: scores it, analyzes it, stores the advice
	// on the record, and appends a snapshot of the day to history.
	SubmitSlot(ctx context.Context, userID uuid.UUID, slot domain.Slot) (*domain.SubmitSlotResponse, error)
	// Analysis returns the factor analysis for a slot's current values.
	Analysis(ctx context.Context, userID uuid.UUID, slot domain.Slot) (*domain.FactorBundle, error)
	// History pages the append-only history, newest first.
	History(ctx context.Context, userID uuid.UUID, filter domain.HistoryFilter) (*domain.HistoryListResponse, error)
}

type checkInService struct {
	stateRepo   repository.CheckInStateRepository
	historyRepo repository.HistoryRepository
	userRepo    repository.UserRepository
	now         func() time.Time
}

func NewCheckInService(
	stateRepo repository.CheckInStateRepository,
	historyRepo repository.HistoryRepository,
	userRepo repository.UserRepository,
) CheckInService {
	return &checkInService{
		stateRepo:   stateRepo,
		historyRepo: historyRepo,
		userRepo:    userRepo,
		now:         time.Now,
	}
}

// loadToday fetches the user's current document and performs the day
// rollover: a missing document or one dated before today (in the user's
// timezone) is replaced with a fresh default.
func (s *checkInService) loadToday(ctx context.Context, userID uuid.UUID) (*domain.DailyCheckIn, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := s.now().In(user.Location()).Format(domain.DateFormat)

	day, err := s.stateRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if day == nil || day.Date != today {
		day = domain.DefaultDailyCheckIn(today)
		if err := s.stateRepo.Put(ctx, userID, day); err != nil {
			return nil, err
		}
	}
	return day, nil
}

func (s *checkInService) Today(ctx context.Context, userID uuid.UUID) (*domain.DailyCheckIn, error) {
	return s.loadToday(ctx, userID)
}

func (s *checkInService) UpdateSlot(ctx context.Context, userID uuid.UUID, slot domain.Slot, req *domain.UpdateSlotRequest) (*domain.DailyCheckIn, error) {
	day, err := s.loadToday(ctx, userID)
	if err != nil {
		return nil, err
	}

	rec := day.Record(slot)
	if rec == nil {
		return nil, domain.ErrInvalidSlot
	}
	if rec.Submitted {
		return nil, domain.ErrSlotSubmitted
	}

	req.Apply(rec)

	if err := s.stateRepo.Put(ctx, userID, day); err != nil {
		return nil, err
	}
	return day, nil
}

func (s *checkInService) SubmitSlot(ctx context.Context, userID uuid.UUID, slot domain.Slot) (*domain.SubmitSlotResponse, error) {
	day, err := s.loadToday(ctx, userID)
	if err != nil {
		return nil, err
	}

	rec := day.Record(slot)
	if rec == nil {
		return nil, domain.ErrInvalidSlot
	}
	if rec.Submitted {
		return nil, domain.ErrSlotSubmitted
	}

	rec.Normalize()
	rec.Submitted = true

	score := wellness.ComputeScore(*rec)
	bundle := wellness.AnalyzeAll(*rec, slot)
	rec.Advice = bundle.Summary.Message

	if err := s.stateRepo.Put(ctx, userID, day); err != nil {
		return nil, err
	}

	entry := &domain.HistoryEntry{
		ID:         uuid.New(),
		UserID:     userID,
		Date:       day.Date,
		Checkins:   *day,
		RecordedAt: s.now().UTC(),
	}
	if err := s.historyRepo.Append(ctx, entry); err != nil {
		return nil, err
	}

	metrics.CheckInSubmissions.WithLabelValues(string(slot)).Inc()
	metrics.ScoreDistribution.Observe(float64(score))

	return &domain.SubmitSlotResponse{
		Slot:     slot,
		Score:    score,
		Advice:   rec.Advice,
		Analysis: bundle,
		Checkins: *day,
	}, nil
}

func (s *checkInService) Analysis(ctx context.Context, userID uuid.UUID, slot domain.Slot) (*domain.FactorBundle, error) {
	day, err := s.loadToday(ctx, userID)
	if err != nil {
		return nil, err
	}

	rec := day.Record(slot)
	if rec == nil {
		return nil, domain.ErrInvalidSlot
	}

	bundle := wellness.AnalyzeAll(*rec, slot)
	return &bundle, nil
}

func (s *checkInService) History(ctx context.Context, userID uuid.UUID, filter domain.HistoryFilter) (*domain.HistoryListResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	entries, err := s.historyRepo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(entries) > limit

	// Trim to actual limit
	if hasMore {
		entries = entries[:limit]
	}

	response := &domain.HistoryListResponse{
		Data: make([]domain.HistoryEntryResponse, len(entries)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	for i, entry := range entries {
		response.Data[i] = entry.ToResponse()
	}

	if hasMore && len(entries) > 0 {
		last := entries[len(entries)-1]
		cursor := &pagination.Cursor{
			ID:         last.ID,
			RecordedAt: last.RecordedAt,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}
