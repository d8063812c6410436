package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mnpat/go-portfolio/internal/logger"
	"github.com/mnpat/go-portfolio/internal/utils"
	"github.com/mnpat/go-portfolio/models"
)

func (h *Handler) listQualifications(w http.ResponseWriter, r *http.Request) {
	qualifications, err := h.services.QualificationService.ListQualifications(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, qualifications, http.StatusOK)
}

func (h *Handler) getQualification(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	qualification, err := h.services.QualificationService.GetQualification(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, qualification, http.StatusOK)
}

func (h *Handler) createQualification(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var qualification models.Qualification
	if err := json.NewDecoder(r.Body).Decode(&qualification); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: "invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	created, err := h.services.QualificationService.CreateQualification(r.Context(), qualification)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateQualification(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.QualificationUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: "invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	qualification, err := h.services.QualificationService.UpdateQualification(r.Context(), id, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, qualification, http.StatusOK)
}

func (h *Handler) deleteQualification(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.QualificationService.DeleteQualification(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "qualification deleted"}, http.StatusOK)
}

func (h *Handler) deleteAllQualifications(w http.ResponseWriter, r *http.Request) {
	count, err := h.services.QualificationService.DeleteAllQualifications(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DeleteAllResponse{
		Message:      fmt.Sprintf("%d qualifications were deleted", count),
		DeletedCount: count,
	}, http.StatusOK)
}
