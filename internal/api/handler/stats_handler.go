package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wellnest/wellness-checkin/internal/domain"
	"github.com/wellnest/wellness-checkin/internal/service"
	"github.com/wellnest/wellness-checkin/pkg/problem"
)

type StatsHandler struct {
	service service.StatsService
}

func NewStatsHandler(service service.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// Streak handles GET /v1/users/{userId}/stats/streak
// @Summary Get check-in streaks
// @Description Returns current and longest consecutive-day check-in streaks
// @Tags stats
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Success 200 {object} domain.StreakResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/stats/streak [get]
func (h *StatsHandler) Streak(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Streak(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to compute streak").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// WeeklyTrend handles GET /v1/users/{userId}/stats/weekly-trend
// @Summary Get the 7-day wellness trend
// @Description Returns daily wellness scores for today and the preceding six days
// @Tags stats
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Success 200 {object} domain.WeeklyTrendResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/stats/weekly-trend [get]
func (h *StatsHandler) WeeklyTrend(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}

	resp, err := h.service.WeeklyTrend(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to compute weekly trend").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
