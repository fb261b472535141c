package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/wellnest/wellness-checkin/internal/advice"
	"github.com/wellnest/wellness-checkin/internal/domain"
	"github.com/wellnest/wellness-checkin/internal/llm"
	"github.com/wellnest/wellness-checkin/internal/metrics"
)

const (
	adviceSourceSelector = "selector"
	adviceSourceFallback = "fallback"
)

// AdviceService answers chat questions. Wellness questions are answered by
// the deterministic selector against the day's aggregates; anything else is
// proxied through the provider chain with a guaranteed canned fallback.
type AdviceService interface {
	Advise(ctx context.Context, userID uuid.UUID, req *domain.AdviceRequest) (*domain.AdviceResponse, error)
}

type adviceService struct {
	checkIns CheckInService
	chain    *llm.Chain
}

func NewAdviceService(checkIns CheckInService, chain *llm.Chain) AdviceService {
	return &adviceService{
		checkIns: checkIns,
		chain:    chain,
	}
}

func (s *adviceService) Advise(ctx context.Context, userID uuid.UUID, req *domain.AdviceRequest) (*domain.AdviceResponse, error) {
	day, err := s.checkIns.Today(ctx, userID)
	if err != nil {
		return nil, err
	}
	agg := day.Aggregates()

	query := req.Query

	// Wellness questions (and empty ones) never leave the process.
	if query == "" || advice.IsWellnessRelated(query) {
		text, branch := advice.Select(query, agg)
		if branch != advice.BranchEmptyQuery {
			text = advice.ContextLine(agg) + " " + text
		}
		metrics.AdviceRequests.WithLabelValues(adviceSourceSelector).Inc()
		return &domain.AdviceResponse{
			Text:    text,
			Branch:  string(branch),
			Source:  adviceSourceSelector,
			Context: agg,
		}, nil
	}

	if text, provider, ok := s.chain.Generate(ctx, query); ok {
		metrics.AdviceRequests.WithLabelValues(provider).Inc()
		return &domain.AdviceResponse{
			Text:    text,
			Source:  provider,
			Context: agg,
		}, nil
	}

	metrics.AdviceRequests.WithLabelValues(adviceSourceFallback).Inc()
	return &domain.AdviceResponse{
		Text:    advice.FallbackResponse(),
		Source:  adviceSourceFallback,
		Context: agg,
	}, nil
}
