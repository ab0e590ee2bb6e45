package store

import (
	"context"
	"strings"
	"testing"

	"solidaria/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticateIssuesToken(t *testing.T) {
	s, _ := newTestStore(t)

	session, err := s.Authenticate(context.Background(), types.LoginInput{
		Email:    "admin@local.com",
		Password: "admin123",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(session.Token, "tok-1-"), "token %q", session.Token)
	assert.Equal(t, 1, session.User.ID)
	assert.Equal(t, "Administrador", session.User.Name)
	assert.Equal(t, "admin", session.User.Role)
}

func TestAuthenticateFailureIsGeneric(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Authenticate(ctx, types.LoginInput{
		Email:    "admin@local.com",
		Password: "wrong",
	})
	require.ErrorIs(t, err, types.ErrInvalidCredentials)

	_, badEmailErr := s.Authenticate(ctx, types.LoginInput{
		Email:    "nobody@local.com",
		Password: "admin123",
	})
	require.ErrorIs(t, badEmailErr, types.ErrInvalidCredentials)

	// Same message either way: no hint about which field was wrong.
	assert.Equal(t, err.Error(), badEmailErr.Error())
}

func TestAuthenticateValidatesInput(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Authenticate(context.Background(), types.LoginInput{Email: "not-an-email", Password: "x"})

	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestGetUser(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	user, err := s.GetUser(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "donor", user.Role)

	_, err = s.GetUser(ctx, 99)
	assert.ErrorIs(t, err, types.ErrUserNotFound)
}
