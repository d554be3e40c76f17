package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/SatinderSinghSall/poetry-cli/internal/client/client"
	"github.com/SatinderSinghSall/poetry-cli/internal/client/models"
	"github.com/SatinderSinghSall/poetry-cli/internal/client/session"
	"github.com/stretchr/testify/require"
)

func newSessionStore() (*session.Store, *fakeStateRepo) {
	repo := newFakeStateRepo()
	return session.NewStore(repo), repo
}

func TestAuthService_RegisterValidatesBeforeNetwork(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name                  string
		inName, email, passwd string
	}{
		{"empty name", "", "a@b.com", "secret1"},
		{"bad email", "Sam", "not-an-email", "secret1"},
		{"short password", "Sam", "a@b.com", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := &fakeClient{}
			sessions, _ := newSessionStore()
			svc := NewAuthService(fc, sessions)

			err := svc.Register(ctx, tt.inName, tt.email, tt.passwd)
			require.ErrorIs(t, err, client.ErrValidation)
			require.Zero(t, fc.count("register"), "no request may be sent for invalid input")
		})
	}
}

func TestAuthService_RegisterSendsValidInput(t *testing.T) {
	fc := &fakeClient{}
	sessions, _ := newSessionStore()
	svc := NewAuthService(fc, sessions)

	require.NoError(t, svc.Register(context.Background(), "Sam", "a@b.com", "secret1"))
	require.Equal(t, 1, fc.count("register"))
}

func TestAuthService_LoginPersistsSession(t *testing.T) {
	ctx := context.Background()
	want := models.Session{ID: "u1", Name: "Sam", Email: "a@b.com", Role: models.RoleAdmin, Token: "tok"}
	fc := &fakeClient{LoginRet: &want}
	sessions, _ := newSessionStore()
	svc := NewAuthService(fc, sessions)

	got, err := svc.Login(ctx, "a@b.com", "secret1")
	require.NoError(t, err)
	require.Equal(t, want, *got)

	current := svc.Current(ctx)
	require.NotNil(t, current)
	require.Equal(t, want, *current)
}

func TestAuthService_LoginFailureLeavesSessionAbsent(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{LoginErr: fmt.Errorf("%w: bad credentials", client.ErrUnauthorized)}
	sessions, _ := newSessionStore()
	svc := NewAuthService(fc, sessions)

	_, err := svc.Login(ctx, "a@b.com", "wrong")
	require.ErrorIs(t, err, client.ErrUnauthorized)
	require.Nil(t, svc.Current(ctx))
}

func TestAuthService_ProfileAuthFailureClearsSession(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{
		LoginRet:   &models.Session{ID: "u1", Email: "a@b.com", Role: models.RoleUser, Token: "tok"},
		ProfileErr: fmt.Errorf("%w: token rejected", client.ErrUnauthorized),
	}
	sessions, _ := newSessionStore()
	svc := NewAuthService(fc, sessions)

	_, err := svc.Login(ctx, "a@b.com", "secret1")
	require.NoError(t, err)
	require.NotNil(t, svc.Current(ctx))

	_, err = svc.Profile(ctx)
	require.ErrorIs(t, err, client.ErrUnauthorized)
	require.Nil(t, svc.Current(ctx), "authorization failure must log the session out")
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{LoginRet: &models.Session{ID: "u1", Email: "a@b.com", Token: "tok"}}
	sessions, _ := newSessionStore()
	svc := NewAuthService(fc, sessions)

	_, err := svc.Login(ctx, "a@b.com", "secret1")
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx))
	require.Nil(t, svc.Current(ctx))
}
