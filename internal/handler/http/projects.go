package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mnpat/go-portfolio/internal/logger"
	"github.com/mnpat/go-portfolio/internal/utils"
	"github.com/mnpat/go-portfolio/models"
)

func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.services.ProjectService.ListProjects(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, projects, http.StatusOK)
}

func (h *Handler) getProject(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	project, err := h.services.ProjectService.GetProject(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, project, http.StatusOK)
}

func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var project models.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: "invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	created, err := h.services.ProjectService.CreateProject(r.Context(), project)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateProject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.ProjectUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: "invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	project, err := h.services.ProjectService.UpdateProject(r.Context(), id, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, project, http.StatusOK)
}

func (h *Handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ProjectService.DeleteProject(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "project deleted"}, http.StatusOK)
}

func (h *Handler) deleteAllProjects(w http.ResponseWriter, r *http.Request) {
	count, err := h.services.ProjectService.DeleteAllProjects(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DeleteAllResponse{
		Message:      fmt.Sprintf("%d projects were deleted", count),
		DeletedCount: count,
	}, http.StatusOK)
}
