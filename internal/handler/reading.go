package handler

import (
	"errors"
	"net/http"

	"github.com/astroguide/astroguide-go/internal/llm"
	"github.com/astroguide/astroguide-go/internal/middleware"
	"github.com/astroguide/astroguide-go/internal/model"
	"github.com/astroguide/astroguide-go/internal/service"
)

// ReadingHandler handles HTTP requests for generated readings: daily
// horoscopes, compatibility analyses, and friend advice.
type ReadingHandler struct {
	service *service.ReadingService
}

// NewReadingHandler creates a new ReadingHandler.
func NewReadingHandler(svc *service.ReadingService) *ReadingHandler {
	return &ReadingHandler{service: svc}
}

// HandleDailyHoroscope handles POST /horoscope/daily requests.
func (h *ReadingHandler) HandleDailyHoroscope(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.HoroscopeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.DailyHoroscope(r.Context(), userID, req)
	if err != nil {
		writeReadingError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleCompatibility handles POST /compatibility/analyze requests.
func (h *ReadingHandler) HandleCompatibility(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.CompatibilityRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Compatibility(r.Context(), userID, req)
	if err != nil {
		writeReadingError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleFriendAdvice handles POST /friends/advice requests.
func (h *ReadingHandler) HandleFriendAdvice(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.FriendAdviceRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.FriendAdvice(r.Context(), userID, req)
	if err != nil {
		writeReadingError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeReadingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		writeJSON(w, http.StatusUnauthorized, errorResponse("user not found"))
	case errors.Is(err, service.ErrInvalidBirthDate),
		errors.Is(err, service.ErrFriendNamesRequired):
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, llm.ErrBackendUnavailable):
		writeJSON(w, http.StatusInternalServerError, errorResponse("AI service error: "+err.Error()))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
	}
}
