package server

import (
	"net/http"

	"solidaria/pkg/types"
)

func (s *Service) handleRegisterInventoryItem(w http.ResponseWriter, r *http.Request) {
	var in types.RegisterInventoryInput
	if err := s.decodeJSON(r, &in); err != nil {
		s.respondError(w, r, err)
		return
	}

	item, err := s.store.RegisterInventoryItem(r.Context(), in)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, http.StatusCreated, item)
}

func (s *Service) handleListInventory(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "ALL" {
		status = ""
	}

	items, err := s.store.ListInventory(r.Context(), status)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, http.StatusOK, items)
}

func (s *Service) handleUpdateInventoryStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	var in struct {
		Status string `json:"status"`
	}
	if err := s.decodeJSON(r, &in); err != nil {
		s.respondError(w, r, err)
		return
	}

	item, err := s.store.UpdateInventoryStatus(r.Context(), id, in.Status)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, http.StatusOK, item)
}
