package store

import (
	"context"
	"fmt"

	"solidaria/internal/utils"
	"solidaria/pkg/types"
)

// Authenticate matches credentials against the users collection. The
// failure is typed and generic on purpose: callers never learn which of
// the two fields was wrong. Tokens are opaque strings derived from the
// user id plus a random suffix.
func (s *Store) Authenticate(ctx context.Context, in types.LoginInput) (*types.Session, error) {
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}

	for _, user := range state.Users {
		if user.Email == in.Email && user.Password == in.Password {
			return &types.Session{
				Token: fmt.Sprintf("tok-%d-%s", user.ID, utils.NanoID()),
				User:  user.Summary(),
			}, nil
		}
	}

	return nil, types.ErrInvalidCredentials
}

// GetUser resolves a user id to its summary. Used by the API auth
// middleware when validating bearer tokens.
func (s *Store) GetUser(ctx context.Context, id int) (*types.UserSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}

	for _, user := range state.Users {
		if user.ID == id {
			summary := user.Summary()
			return &summary, nil
		}
	}

	return nil, types.ErrUserNotFound
}
