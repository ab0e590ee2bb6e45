package server

import (
	"net/http"

	"solidaria/pkg/types"
)

func (s *Service) handleRegisterEvent(w http.ResponseWriter, r *http.Request) {
	var in types.RegisterEventInput
	if err := s.decodeJSON(r, &in); err != nil {
		s.respondError(w, r, err)
		return
	}

	event, err := s.store.RegisterEvent(r.Context(), in)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, http.StatusCreated, event)
}

func (s *Service) handleListEvents(w http.ResponseWriter, r *http.Request) {
	status := types.EventStatus(r.URL.Query().Get("status"))
	if status == "ALL" {
		status = ""
	}

	events, err := s.store.ListEvents(r.Context(), status)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, http.StatusOK, events)
}
