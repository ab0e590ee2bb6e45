package server

import (
	"net/http"

	"solidaria/pkg/types"
)

func (s *Service) handleLogin(w http.ResponseWriter, r *http.Request) {
	var in types.LoginInput
	if err := s.decodeJSON(r, &in); err != nil {
		s.respondError(w, r, err)
		return
	}

	session, err := s.store.Authenticate(r.Context(), in)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, http.StatusOK, session)
}
