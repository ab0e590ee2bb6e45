package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"solidaria/pkg/types"

	"github.com/alexedwards/flow"
)

func (s *Service) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.WithError(err).Error("failed to encode response")
	}
}

// respondError maps store failures onto HTTP statuses. Business-rule
// failures keep their typed messages; anything unexpected is logged and
// answered generically.
func (s *Service) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *types.ValidationError
	if errors.As(err, &verr) {
		s.respondJSON(w, http.StatusBadRequest, map[string]any{
			"message": "invalid input",
			"fields":  verr.Fields,
		})
		return
	}

	switch {
	case errors.Is(err, types.ErrRequestNotFound),
		errors.Is(err, types.ErrPublicationNotFound),
		errors.Is(err, types.ErrInventoryItemNotFound):
		s.respondJSON(w, http.StatusNotFound, map[string]string{"message": err.Error()})
	case errors.Is(err, types.ErrInvalidCredentials):
		s.respondJSON(w, http.StatusUnauthorized, map[string]string{"message": "invalid credentials"})
	case errors.Is(err, types.ErrRequestAlreadyReviewed):
		s.respondJSON(w, http.StatusConflict, map[string]string{"message": err.Error()})
	default:
		s.logger.WithError(err).WithField("path", r.URL.Path).Error("request failed")
		s.respondJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal error"})
	}
}

func (s *Service) decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return types.NewValidationError(types.FieldError{
			Field:   "body",
			Message: "malformed JSON payload",
		})
	}
	return nil
}

func pathID(r *http.Request) (int, error) {
	raw := flow.Param(r.Context(), "id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, types.NewValidationError(types.FieldError{
			Field:   "id",
			Message: "must be a positive integer",
		})
	}
	return id, nil
}
