package store

import (
	"context"

	"solidaria/pkg/types"
)

// Read-only projections over publications and donations. No business logic
// beyond filtering.

func (s *Store) ListPublications(ctx context.Context) ([]types.Publication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}

	return state.Publications, nil
}

func (s *Store) GetPublication(ctx context.Context, id int) (*types.Publication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}

	pub := findPublication(state, id)
	if pub == nil {
		return nil, types.ErrPublicationNotFound
	}

	out := *pub
	return &out, nil
}

func (s *Store) DonationsForPublication(ctx context.Context, publicationID int) ([]types.Donation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]types.Donation, 0)
	for _, donation := range state.Donations {
		if donation.PublicationID == publicationID {
			out = append(out, donation)
		}
	}
	return out, nil
}

func findPublication(state *types.State, id int) *types.Publication {
	if id == 0 {
		return nil
	}
	for i := range state.Publications {
		if state.Publications[i].ID == id {
			return &state.Publications[i]
		}
	}
	return nil
}
