package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/SatinderSinghSall/poetry-cli/internal/client/client"
	"github.com/SatinderSinghSall/poetry-cli/internal/client/models"
	"github.com/stretchr/testify/require"
)

func TestUserService_ListAndCount(t *testing.T) {
	fc := &fakeClient{
		UsersRet:     []models.User{{ID: "u1", Name: "Alice"}, {ID: "u2", Name: "Bob"}},
		UserCountRet: 2,
	}
	sessions, _ := newSessionStore()
	svc := NewUserService(fc, sessions)

	users, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)

	n, err := svc.Count(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestUserService_DeletePassesID(t *testing.T) {
	fc := &fakeClient{}
	sessions, _ := newSessionStore()
	svc := NewUserService(fc, sessions)

	require.NoError(t, svc.Delete(context.Background(), "u2"))
	require.Equal(t, "u2", fc.LastID)
	require.Equal(t, 1, fc.count("deleteUser"))
}

func TestUserService_ListAuthFailureClearsSession(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{UsersErr: fmt.Errorf("%w: not an admin", client.ErrUnauthorized)}
	sessions, _ := newSessionStore()
	require.NoError(t, sessions.Login(ctx, models.Session{ID: "u1", Email: "a@b.com", Token: "tok"}))

	svc := NewUserService(fc, sessions)
	_, err := svc.List(ctx)
	require.ErrorIs(t, err, client.ErrUnauthorized)
	require.Nil(t, sessions.Current(ctx))
}
