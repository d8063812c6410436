package http

import (
	"encoding/json"
	"net/http"

	"github.com/mnpat/go-portfolio/internal/logger"
	"github.com/mnpat/go-portfolio/internal/utils"
	"github.com/mnpat/go-portfolio/models"
)

// register handles POST /api/users. On success the response carries the
// public user projection together with a fresh session token:
//
//	{"user": {...}, "token": "..."}
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: "invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	user, token, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("id", user.ID).Msg("user registered")

	utils.WriteJSON(w, models.AuthResponse{User: user.Public(), Token: token.SignedString}, http.StatusCreated)
}

// login handles POST /api/users/login. The response shape matches register,
// with a 200 status.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: "invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	user, token, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("id", user.ID).Msg("user logged in")

	utils.WriteJSON(w, models.AuthResponse{User: user.Public(), Token: token.SignedString}, http.StatusOK)
}

// me handles GET /api/users/me. It returns the authenticated user's current
// record, letting clients pick up role or profile changes made since their
// token was issued.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("me handler reached without authentication")
		utils.WriteJSON(w, models.MessageResponse{Message: "authorization required"}, http.StatusUnauthorized)
		return
	}

	user, err := h.services.AuthService.GetUser(ctx, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user.Public(), http.StatusOK)
}
