package store

import (
	"context"
	"io"
	"testing"

	"solidaria/internal/snapshot"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *snapshot.Memory) {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	mem := snapshot.NewMemory()
	return New(logger, mem), mem
}

func TestFreshStoreSeedsDefaults(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	state, err := s.State(ctx)
	require.NoError(t, err)

	require.Len(t, state.Users, 2)
	assert.Equal(t, "admin", state.Users[0].Role)
	assert.Equal(t, "donor", state.Users[1].Role)

	require.Len(t, state.Requests, 2)
	assert.Equal(t, "S-0001", state.Requests[0].Code)
	assert.Equal(t, "S-0002", state.Requests[1].Code)

	// The seeded approved request carries its publication.
	require.Len(t, state.Publications, 1)
	assert.Equal(t, "S-0002", state.Publications[0].RequestCode)
}

func TestCorruptedSnapshotReseeds(t *testing.T) {
	s, mem := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, mem.Save(ctx, []byte("{definitely not json")))

	requests, err := s.ListRequests(ctx, "")
	require.NoError(t, err)
	assert.Len(t, requests, 2)

	// The reseeded state was persisted, not just returned.
	raw, err := mem.Load(ctx)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "S-0001")
}

func TestResetOverwritesExistingState(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.RegisterEvent(ctx, eventInput("Feria solidaria"))
	require.NoError(t, err)

	state, err := s.Reset(ctx)
	require.NoError(t, err)
	assert.Empty(t, state.Events)

	events, err := s.ListEvents(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, events)
}
