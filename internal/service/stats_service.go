package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wellnest/wellness-checkin/internal/domain"
	"github.com/wellnest/wellness-checkin/internal/repository"
	"github.com/wellnest/wellness-checkin/internal/wellness"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// StatsService computes streak and trend statistics from the full history.
type StatsService interface {
	Streak(ctx context.Context, userID uuid.UUID) (*domain.StreakResponse, error)
	WeeklyTrend(ctx context.Context, userID uuid.UUID) (*domain.WeeklyTrendResponse, error)
}

type statsService struct {
	historyRepo repository.HistoryRepository
	userRepo    repository.UserRepository
	now         func() time.Time
}

func NewStatsService(historyRepo repository.HistoryRepository, userRepo repository.UserRepository) StatsService {
	return &statsService{
		historyRepo: historyRepo,
		userRepo:    userRepo,
		now:         time.Now,
	}
}

func (s *statsService) Streak(ctx context.Context, userID uuid.UUID) (*domain.StreakResponse, error) {
	tracer := otel.Tracer("wellness-checkin-api/stats")
	ctx, span := tracer.Start(ctx, "StatsService.Streak",
		trace.WithAttributes(attribute.String("user.id", userID.String())),
	)
	defer span.End()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.historyRepo.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := s.todayIn(user)
	result := wellness.CalculateStreak(entries, today)
	span.SetAttributes(
		attribute.Int("streak.current", result.CurrentStreak),
		attribute.Int("streak.longest", result.LongestStreak),
	)

	return &domain.StreakResponse{
		StreakResult: result,
		Message:      wellness.StreakMessage(result.CurrentStreak),
	}, nil
}

func (s *statsService) WeeklyTrend(ctx context.Context, userID uuid.UUID) (*domain.WeeklyTrendResponse, error) {
	tracer := otel.Tracer("wellness-checkin-api/stats")
	ctx, span := tracer.Start(ctx, "StatsService.WeeklyTrend",
		trace.WithAttributes(attribute.String("user.id", userID.String())),
	)
	defer span.End()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.historyRepo.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := s.todayIn(user)
	points := wellness.WeeklyTrend(entries, today)

	return &domain.WeeklyTrendResponse{Days: points}, nil
}

// todayIn truncates now to a calendar date in the user's timezone so day
// arithmetic stays on date boundaries.
func (s *statsService) todayIn(user *domain.User) time.Time {
	local := s.now().In(user.Location())
	day, _ := time.Parse(domain.DateFormat, local.Format(domain.DateFormat))
	return day
}
