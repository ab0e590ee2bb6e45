package server

import (
	"mime/multipart"
	"net/http"
	"sort"
	"strings"

	"solidaria/internal/scoring"
	"solidaria/pkg/types"
)

const maxUploadBytes = 32 << 20

// handleSubmitRequest accepts either a JSON payload with pre-resolved
// evidence references, or a multipart form whose "evidence" files are
// uploaded through the storage collaborator first.
func (s *Service) handleSubmitRequest(w http.ResponseWriter, r *http.Request) {
	var in types.SubmitRequestInput

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			s.respondError(w, r, types.NewValidationError(types.FieldError{
				Field:   "body",
				Message: "malformed multipart payload",
			}))
			return
		}

		if err := decoder.Decode(&in, r.Form); err != nil {
			s.respondError(w, r, types.NewValidationError(types.FieldError{
				Field:   "body",
				Message: "malformed form payload",
			}))
			return
		}

		refs, err := s.uploadEvidenceFiles(r, r.MultipartForm.File["evidence"])
		if err != nil {
			s.respondError(w, r, err)
			return
		}
		in.Evidence = append(in.Evidence, refs...)
	} else {
		if err := s.decodeJSON(r, &in); err != nil {
			s.respondError(w, r, err)
			return
		}
	}

	req, err := s.store.SubmitRequest(r.Context(), in)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, http.StatusCreated, req)
}

func (s *Service) uploadEvidenceFiles(r *http.Request, headers []*multipart.FileHeader) ([]string, error) {
	if len(headers) == 0 {
		return nil, nil
	}
	if s.evidence == nil {
		return nil, types.NewValidationError(types.FieldError{
			Field:   "evidence",
			Message: "file uploads are not configured; supply evidence references instead",
		})
	}

	refs := make([]string, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			return nil, err
		}

		url, err := s.evidence.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
		file.Close()
		if err != nil {
			return nil, err
		}
		refs = append(refs, url)
	}
	return refs, nil
}

func (s *Service) handleListRequests(w http.ResponseWriter, r *http.Request) {
	status := types.RequestStatus(r.URL.Query().Get("status"))

	requests, err := s.store.ListRequests(r.Context(), status)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, http.StatusOK, requests)
}

func (s *Service) handleGetRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	req, err := s.store.GetRequest(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, http.StatusOK, req)
}

func (s *Service) handleChangeRequestStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	var in types.ReviewRequestInput
	if err := s.decodeJSON(r, &in); err != nil {
		s.respondError(w, r, err)
		return
	}

	req, err := s.store.ChangeRequestStatus(r.Context(), id, in)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, http.StatusOK, req)
}

// handleScoredRequests annotates every request with the scoring engine and
// returns them highest score first for the review panel.
func (s *Service) handleScoredRequests(w http.ResponseWriter, r *http.Request) {
	status := types.RequestStatus(r.URL.Query().Get("status"))

	requests, err := s.store.ListRequests(r.Context(), status)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	scored := scoring.ScoreAll(requests)
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	s.respondJSON(w, http.StatusOK, scored)
}
