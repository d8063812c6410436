package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mnpat/go-portfolio/internal/logger"
	"github.com/mnpat/go-portfolio/internal/utils"
	"github.com/mnpat/go-portfolio/models"
)

// submitContact handles POST /api/contacts. The endpoint is open to
// visitors; no authentication is required to leave a message.
func (h *Handler) submitContact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var contact models.Contact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: "invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	created, err := h.services.ContactService.SubmitContact(r.Context(), contact)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.services.ContactService.ListContacts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, contacts, http.StatusOK)
}

func (h *Handler) getContact(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	contact, err := h.services.ContactService.GetContact(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, contact, http.StatusOK)
}

func (h *Handler) updateContact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.ContactUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: "invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	contact, err := h.services.ContactService.UpdateContact(r.Context(), id, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, contact, http.StatusOK)
}

func (h *Handler) deleteContact(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ContactService.DeleteContact(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "contact deleted"}, http.StatusOK)
}

func (h *Handler) deleteAllContacts(w http.ResponseWriter, r *http.Request) {
	count, err := h.services.ContactService.DeleteAllContacts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DeleteAllResponse{
		Message:      fmt.Sprintf("%d contacts were deleted", count),
		DeletedCount: count,
	}, http.StatusOK)
}
