package http

import (
	"net/http"

	"github.com/mnpat/go-portfolio/internal/utils"
	"github.com/mnpat/go-portfolio/models"
)

func (h *Handler) welcome(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: "Welcome to the portfolio application"}, http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{Status: "ok"}, http.StatusOK)
}
