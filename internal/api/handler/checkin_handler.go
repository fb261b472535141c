package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/wellnest/wellness-checkin/internal/api/validation"
	"github.com/wellnest/wellness-checkin/internal/domain"
	"github.com/wellnest/wellness-checkin/internal/service"
	"github.com/wellnest/wellness-checkin/pkg/problem"
)

type CheckInHandler struct {
	service service.CheckInService
}

func NewCheckInHandler(service service.CheckInService) *CheckInHandler {
	return &CheckInHandler{service: service}
}

// pathUserID parses the userId path parameter, writing a problem on failure.
func pathUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return uuid.Nil, false
	}
	return userID, true
}

// pathSlot parses the slot path parameter, writing a problem on failure.
func pathSlot(w http.ResponseWriter, r *http.Request) (domain.Slot, bool) {
	slot, err := domain.ParseSlot(chi.URLParam(r, "slot"))
	if err != nil {
		problem.BadRequest("Slot must be morning, afternoon, or evening").Write(w)
		return "", false
	}
	return slot, true
}

// Today handles GET /v1/users/{userId}/checkins/today
// @Summary Get today's check-in document
// @Description Returns the current-day check-in document, creating a fresh one on day rollover
// @Tags checkins
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Success 200 {object} domain.DailyCheckIn
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/checkins/today [get]
func (h *CheckInHandler) Today(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}

	day, err := h.service.Today(r.Context(), userID)
	if err != nil {
		writeCheckInError(w, err, "Failed to load today's check-ins")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(day)
}

// UpdateSlot handles PUT /v1/users/{userId}/checkins/today/{slot}
// @Summary Edit a check-in slot
// @Description Applies a partial update to an unsubmitted slot of today's check-in
// @Tags checkins
// @Accept json
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param slot path string true "Slot name" Enums(morning, afternoon, evening)
// @Param request body domain.UpdateSlotRequest true "Fields to update"
// @Success 200 {object} domain.DailyCheckIn
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 409 {object} problem.Problem "Slot already submitted"
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/checkins/today/{slot} [put]
func (h *CheckInHandler) UpdateSlot(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}
	slot, ok := pathSlot(w, r)
	if !ok {
		return
	}

	var req domain.UpdateSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	day, err := h.service.UpdateSlot(r.Context(), userID, slot, &req)
	if err != nil {
		writeCheckInError(w, err, "Failed to update check-in slot")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(day)
}

// SubmitSlot handles POST /v1/users/{userId}/checkins/today/{slot}/submit
// @Summary Submit a check-in slot
// @Description Finalizes a slot: computes its score and factor analysis and archives a snapshot
// @Tags checkins
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param slot path string true "Slot name" Enums(morning, afternoon, evening)
// @Success 200 {object} domain.SubmitSlotResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 409 {object} problem.Problem "Slot already submitted"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/checkins/today/{slot}/submit [post]
func (h *CheckInHandler) SubmitSlot(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}
	slot, ok := pathSlot(w, r)
	if !ok {
		return
	}

	resp, err := h.service.SubmitSlot(r.Context(), userID, slot)
	if err != nil {
		writeCheckInError(w, err, "Failed to submit check-in slot")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// Analysis handles GET /v1/users/{userId}/checkins/today/{slot}/analysis
// @Summary Analyze a check-in slot
// @Description Returns the factor analysis for a slot's current values without submitting it
// @Tags checkins
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param slot path string true "Slot name" Enums(morning, afternoon, evening)
// @Success 200 {object} domain.FactorBundle
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/checkins/today/{slot}/analysis [get]
func (h *CheckInHandler) Analysis(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}
	slot, ok := pathSlot(w, r)
	if !ok {
		return
	}

	bundle, err := h.service.Analysis(r.Context(), userID, slot)
	if err != nil {
		writeCheckInError(w, err, "Failed to analyze check-in slot")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(bundle)
}

// History handles GET /v1/users/{userId}/checkins/history
// @Summary List check-in history
// @Description Pages archived check-in snapshots, newest first
// @Tags checkins
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param from query string false "Inclusive start date (YYYY-MM-DD)"
// @Param to query string false "Inclusive end date (YYYY-MM-DD)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param cursor query string false "Cursor from a previous page"
// @Success 200 {object} domain.HistoryListResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/checkins/history [get]
func (h *CheckInHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}

	filter := domain.HistoryFilter{
		FromDate: r.URL.Query().Get("from"),
		ToDate:   r.URL.Query().Get("to"),
		Cursor:   r.URL.Query().Get("cursor"),
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			problem.BadRequest("Invalid limit parameter").Write(w)
			return
		}
		filter.Limit = limit
	}

	resp, err := h.service.History(r.Context(), userID, filter)
	if err != nil {
		writeCheckInError(w, err, "Failed to list check-in history")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// writeCheckInError maps service errors to problem responses.
func writeCheckInError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound("User not found").Write(w)
	case errors.Is(err, domain.ErrSlotSubmitted):
		problem.Conflict("Slot has already been submitted").Write(w)
	case errors.Is(err, domain.ErrInvalidSlot):
		problem.BadRequest("Slot must be morning, afternoon, or evening").Write(w)
	default:
		problem.InternalError(fallback).Write(w)
	}
}
