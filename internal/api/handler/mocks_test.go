package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/wellnest/wellness-checkin/internal/domain"
)

// MockCheckInService is a mock implementation of CheckInService
type MockCheckInService struct {
	todayFunc      func(ctx context.Context, userID uuid.UUID) (*domain.DailyCheckIn, error)
	updateSlotFunc func(ctx context.Context, userID uuid.UUID, slot domain.Slot, req *domain.UpdateSlotRequest) (*domain.DailyCheckIn, error)
	submitSlotFunc func(ctx context.Context, userID uuid.UUID, slot domain.Slot) (*domain.SubmitSlotResponse, error)
	analysisFunc   func(ctx context.Context, userID uuid.UUID, slot domain.Slot) (*domain.FactorBundle, error)
	historyFunc    func(ctx context.Context, userID uuid.UUID, filter domain.HistoryFilter) (*domain.HistoryListResponse, error)
}

func (m *MockCheckInService) Today(ctx context.Context, userID uuid.UUID) (*domain.DailyCheckIn, error) {
	if m.todayFunc != nil {
		return m.todayFunc(ctx, userID)
	}
	return domain.DefaultDailyCheckIn("2024-01-05"), nil
}

func (m *MockCheckInService) UpdateSlot(ctx context.Context, userID uuid.UUID, slot domain.Slot, req *domain.UpdateSlotRequest) (*domain.DailyCheckIn, error) {
	if m.updateSlotFunc != nil {
		return m.updateSlotFunc(ctx, userID, slot, req)
	}
	day := domain.DefaultDailyCheckIn("2024-01-05")
	req.Apply(day.Record(slot))
	return day, nil
}

func (m *MockCheckInService) SubmitSlot(ctx context.Context, userID uuid.UUID, slot domain.Slot) (*domain.SubmitSlotResponse, error) {
	if m.submitSlotFunc != nil {
		return m.submitSlotFunc(ctx, userID, slot)
	}
	day := domain.DefaultDailyCheckIn("2024-01-05")
	day.Record(slot).Submitted = true
	return &domain.SubmitSlotResponse{
		Slot:     slot,
		Score:    50,
		Checkins: *day,
	}, nil
}

func (m *MockCheckInService) Analysis(ctx context.Context, userID uuid.UUID, slot domain.Slot) (*domain.FactorBundle, error) {
	if m.analysisFunc != nil {
		return m.analysisFunc(ctx, userID, slot)
	}
	return &domain.FactorBundle{Analyses: map[string]domain.FactorAnalysis{}}, nil
}

func (m *MockCheckInService) History(ctx context.Context, userID uuid.UUID, filter domain.HistoryFilter) (*domain.HistoryListResponse, error) {
	if m.historyFunc != nil {
		return m.historyFunc(ctx, userID, filter)
	}
	return &domain.HistoryListResponse{
		Data:       []domain.HistoryEntryResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// MockStatsService is a mock implementation of StatsService
type MockStatsService struct {
	streakFunc      func(ctx context.Context, userID uuid.UUID) (*domain.StreakResponse, error)
	weeklyTrendFunc func(ctx context.Context, userID uuid.UUID) (*domain.WeeklyTrendResponse, error)
}

func (m *MockStatsService) Streak(ctx context.Context, userID uuid.UUID) (*domain.StreakResponse, error) {
	if m.streakFunc != nil {
		return m.streakFunc(ctx, userID)
	}
	return &domain.StreakResponse{Message: "Start your streak today!"}, nil
}

func (m *MockStatsService) WeeklyTrend(ctx context.Context, userID uuid.UUID) (*domain.WeeklyTrendResponse, error) {
	if m.weeklyTrendFunc != nil {
		return m.weeklyTrendFunc(ctx, userID)
	}
	return &domain.WeeklyTrendResponse{Days: []domain.TrendPoint{}}, nil
}

// MockAdviceService is a mock implementation of AdviceService
type MockAdviceService struct {
	adviseFunc func(ctx context.Context, userID uuid.UUID, req *domain.AdviceRequest) (*domain.AdviceResponse, error)
}

func (m *MockAdviceService) Advise(ctx context.Context, userID uuid.UUID, req *domain.AdviceRequest) (*domain.AdviceResponse, error) {
	if m.adviseFunc != nil {
		return m.adviseFunc(ctx, userID, req)
	}
	return &domain.AdviceResponse{Text: "Take a short walk.", Source: "selector"}, nil
}
