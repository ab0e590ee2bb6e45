package snapshot

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRoundTrip(t *testing.T) {
	ctx := context.Background()
	f := NewFile(filepath.Join(t.TempDir(), "state", "solidaria.json"))

	_, err := f.Load(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, f.Save(ctx, []byte(`{"users":[]}`)))

	data, err := f.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"users":[]}`, string(data))

	require.NoError(t, f.Save(ctx, []byte(`{}`)))
	data, err = f.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, err := m.Load(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.Save(ctx, []byte("abc")))

	data, err := m.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(data))

	// Loads return copies; mutating one must not affect the stored blob.
	data[0] = 'x'
	again, err := m.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}
