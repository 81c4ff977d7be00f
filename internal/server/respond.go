package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/VNoormal7/NeedsConnectV2/pkg/types"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Service) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.WithError(err).Error("failed to encode response")
	}
}

func (s *Service) respondErrorMessage(w http.ResponseWriter, status int, msg string) {
	s.respondJSON(w, status, errorResponse{Error: msg})
}

// respondError maps domain errors onto HTTP statuses: validation failures
// are the caller's fault, unknown ids are 404, anything else is a storage
// or programming failure and stays opaque.
func (s *Service) respondError(w http.ResponseWriter, err error) {
	var validationErr *types.ValidationError
	switch {
	case errors.As(err, &validationErr):
		s.respondErrorMessage(w, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, types.ErrNeedNotFound),
		errors.Is(err, types.ErrTaskNotFound),
		errors.Is(err, types.ErrVolunteerNotFound):
		s.respondErrorMessage(w, http.StatusNotFound, err.Error())
	default:
		s.logger.WithError(err).Error("request failed")
		s.respondErrorMessage(w, http.StatusInternalServerError, "internal server error")
	}
}
