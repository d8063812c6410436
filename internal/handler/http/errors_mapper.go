package http

import (
	"errors"
	"net/http"

	"github.com/mnpat/go-portfolio/internal/logger"
	"github.com/mnpat/go-portfolio/internal/service"
	"github.com/mnpat/go-portfolio/internal/store"
	"github.com/mnpat/go-portfolio/internal/utils"
	"github.com/mnpat/go-portfolio/internal/validators"
	"github.com/mnpat/go-portfolio/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	ErrAdminAccessRequired: http.StatusForbidden,
	ErrInvalidID:           http.StatusBadRequest,

	store.ErrEmailAlreadyExists:    http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrContactNotFound:       http.StatusNotFound,
	store.ErrProjectNotFound:       http.StatusNotFound,
	store.ErrQualificationNotFound: http.StatusNotFound,
	store.ErrNoFieldsToUpdate:      http.StatusBadRequest,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError serializes err into the API's JSON error shape and writes it
// with the mapped status code.
//
// Validation failures produce `{"errors": [{"field": ..., "message": ...}]}`
// with 400; everything else produces `{"message": ...}`. Internal errors
// are masked behind a generic message so storage details never leak to
// clients.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var ve *validators.ValidationError
	if errors.As(err, &ve) {
		log.Warn().Err(err).Msg("request validation failed")
		utils.WriteJSON(w, models.ValidationErrorResponse{Errors: ve.Fields}, http.StatusBadRequest)
		return
	}

	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("internal error")
		message = http.StatusText(http.StatusInternalServerError)
	}

	switch {
	case errors.Is(err, store.ErrEmailAlreadyExists):
		message = "email already exists"
	case errors.Is(err, service.ErrInvalidCredentials):
		message = "invalid credentials"
	case errors.Is(err, store.ErrNoUserWasFound):
		message = "user not found"
	case errors.Is(err, store.ErrContactNotFound):
		message = "contact not found"
	case errors.Is(err, store.ErrProjectNotFound):
		message = "project not found"
	case errors.Is(err, store.ErrQualificationNotFound):
		message = "qualification not found"
	case errors.Is(err, store.ErrNoFieldsToUpdate):
		message = store.ErrNoFieldsToUpdate.Error()
	}

	utils.WriteJSON(w, models.MessageResponse{Message: message}, status)
}
