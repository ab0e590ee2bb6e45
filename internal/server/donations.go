package server

import (
	"net/http"

	"solidaria/pkg/types"
)

func (s *Service) handleRecordDonation(w http.ResponseWriter, r *http.Request) {
	var in types.RecordDonationInput
	if err := s.decodeJSON(r, &in); err != nil {
		s.respondError(w, r, err)
		return
	}

	donation, err := s.store.RecordDonation(r.Context(), in)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, http.StatusCreated, donation)
}

func (s *Service) handleListPublications(w http.ResponseWriter, r *http.Request) {
	publications, err := s.store.ListPublications(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, http.StatusOK, publications)
}

func (s *Service) handleGetPublication(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	pub, err := s.store.GetPublication(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, http.StatusOK, pub)
}

func (s *Service) handleDonationsForPublication(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	donations, err := s.store.DonationsForPublication(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, http.StatusOK, donations)
}
