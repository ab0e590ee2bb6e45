// Package store owns the persisted collections and every mutation on them.
// Each operation runs a full load-mutate-save cycle against the snapshot
// backend under one mutex, so readers always observe the state entirely
// before or entirely after a mutation.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"solidaria/internal/seed"
	"solidaria/internal/snapshot"
	"solidaria/pkg/types"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type Store struct {
	logger   *logrus.Logger
	snap     snapshot.Blob
	validate *validator.Validate

	mu sync.Mutex
}

func New(logger *logrus.Logger, snap snapshot.Blob) *Store {
	return &Store{
		logger:   logger,
		snap:     snap,
		validate: validator.New(),
	}
}

// Reset discards any persisted state and writes the default seed.
func (s *Store) Reset(ctx context.Context) (*types.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.reseed(ctx)
}

// State returns a copy of the current persisted state.
func (s *Store) State(ctx context.Context) (*types.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadState(ctx)
}

// loadState reads and decodes the snapshot. A missing snapshot seeds first
// use; an undecodable one is logged and reseeded. The store never stays
// unusable because of a bad blob.
func (s *Store) loadState(ctx context.Context) (*types.State, error) {
	raw, err := s.snap.Load(ctx)
	if err != nil {
		if errors.Is(err, snapshot.ErrNotFound) {
			return s.reseed(ctx)
		}
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	state := new(types.State)
	if err := json.Unmarshal(raw, state); err != nil {
		s.logger.WithError(err).Warn("snapshot corrupted, reseeding defaults")
		return s.reseed(ctx)
	}

	if len(state.Users) == 0 {
		state.Users = seed.DefaultState(time.Now().UTC()).Users
	}

	return state, nil
}

func (s *Store) saveState(ctx context.Context, state *types.State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	if err := s.snap.Save(ctx, raw); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	return nil
}

func (s *Store) reseed(ctx context.Context) (*types.State, error) {
	state := seed.DefaultState(time.Now().UTC())
	if err := s.saveState(ctx, state); err != nil {
		return nil, err
	}

	return state, nil
}

// validateInput runs struct-tag validation and converts failures into a
// typed ValidationError with one entry per offending field.
func (s *Store) validateInput(input any) error {
	err := s.validate.Struct(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate input: %w", err)
	}

	fields := make([]types.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, types.FieldError{
			Field:   fe.Field(),
			Message: fmt.Sprintf("failed '%s' validation", fe.Tag()),
		})
	}

	return types.NewValidationError(fields...)
}

// nextID allocates the next identifier for a collection: max existing + 1,
// or 1 when empty.
func nextID[T any](items []T, id func(T) int) int {
	next := 1
	for _, item := range items {
		if id(item) >= next {
			next = id(item) + 1
		}
	}
	return next
}
