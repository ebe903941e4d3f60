package handler

import (
	"errors"
	"net/http"

	"github.com/astroguide/astroguide-go/internal/middleware"
	"github.com/astroguide/astroguide-go/internal/model"
	"github.com/astroguide/astroguide-go/internal/service"
)

// ProfileHandler handles HTTP requests for the authenticated user's profile.
type ProfileHandler struct {
	service *service.AuthService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(svc *service.AuthService) *ProfileHandler {
	return &ProfileHandler{service: svc}
}

// HandleGetProfile handles GET /profile requests.
func (h *ProfileHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	resp, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		writeProfileError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleUpdateProfile handles PUT /profile requests. Only the provided
// fields are merged; the zodiac sign is recomputed when the birth date
// changes.
func (h *ProfileHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var upd model.UserUpdate
	if !decodeBody(w, r, &upd) {
		return
	}

	resp, err := h.service.UpdateProfile(r.Context(), userID, upd)
	if err != nil {
		if errors.Is(err, service.ErrInvalidBirthDate) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeProfileError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// writeProfileError maps profile lookup failures. A user deleted after token
// issuance is an authentication failure, not an internal error.
func writeProfileError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrUserNotFound) {
		writeJSON(w, http.StatusUnauthorized, errorResponse("user not found"))
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
}
