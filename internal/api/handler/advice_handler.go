package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wellnest/wellness-checkin/internal/api/validation"
	"github.com/wellnest/wellness-checkin/internal/domain"
	"github.com/wellnest/wellness-checkin/internal/service"
	"github.com/wellnest/wellness-checkin/pkg/problem"
)

type AdviceHandler struct {
	service service.AdviceService
}

func NewAdviceHandler(service service.AdviceService) *AdviceHandler {
	return &AdviceHandler{service: service}
}

// Advise handles POST /v1/users/{userId}/advice
// @Summary Ask the wellness coach
// @Description Answers wellness questions from the day's check-in aggregates; proxies other questions to external text generators with a canned fallback
// @Tags advice
// @Accept json
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param request body domain.AdviceRequest true "The question"
// @Success 200 {object} domain.AdviceResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/advice [post]
func (h *AdviceHandler) Advise(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}

	var req domain.AdviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	resp, err := h.service.Advise(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to generate advice").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
