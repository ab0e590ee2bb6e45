package server

import (
	"net/http"

	"solidaria/pkg/types"
)

// handleUploadEvidence accepts a single multipart "file" and returns the
// opaque reference callers attach to requests or donations.
func (s *Service) handleUploadEvidence(w http.ResponseWriter, r *http.Request) {
	if s.evidence == nil {
		s.respondJSON(w, http.StatusServiceUnavailable, map[string]string{
			"message": "evidence storage is not configured",
		})
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.respondError(w, r, types.NewValidationError(types.FieldError{
			Field:   "body",
			Message: "malformed multipart payload",
		}))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.respondError(w, r, types.NewValidationError(types.FieldError{
			Field:   "file",
			Message: "failed 'required' validation",
		}))
		return
	}
	defer file.Close()

	url, err := s.evidence.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, http.StatusCreated, map[string]string{"url": url})
}
