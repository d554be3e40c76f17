package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/SatinderSinghSall/poetry-cli/internal/client/client"
	"github.com/SatinderSinghSall/poetry-cli/internal/client/models"
	"github.com/stretchr/testify/require"
)

func TestSubscriberService_SubscribeRejectsInvalidEmailLocally(t *testing.T) {
	fc := &fakeClient{}
	sessions, _ := newSessionStore()
	svc := NewSubscriberService(fc, sessions)

	err := svc.Subscribe(context.Background(), "not-an-email")
	require.ErrorIs(t, err, client.ErrValidation)
	require.Zero(t, fc.count("subscribe"), "invalid email must be rejected before any network call")
}

func TestSubscriberService_SubscribeSendsExactlyOnePost(t *testing.T) {
	fc := &fakeClient{}
	sessions, _ := newSessionStore()
	svc := NewSubscriberService(fc, sessions)

	require.NoError(t, svc.Subscribe(context.Background(), "a@b.com"))
	require.Equal(t, 1, fc.count("subscribe"))
	require.Equal(t, "a@b.com", fc.LastSubscribeEmail)
}

func TestSubscriberService_ListAuthFailureClearsSession(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{SubsErr: fmt.Errorf("%w: nope", client.ErrUnauthorized)}
	sessions, _ := newSessionStore()
	require.NoError(t, sessions.Login(ctx, models.Session{ID: "u1", Email: "a@b.com", Token: "tok"}))

	svc := NewSubscriberService(fc, sessions)
	_, err := svc.List(ctx)
	require.ErrorIs(t, err, client.ErrUnauthorized)
	require.Nil(t, sessions.Current(ctx))
}

func TestSubscriberService_StatusAndUnsubscribe(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{StatusRet: &models.SubscriptionStatus{Subscribed: true, ID: "sub1"}}
	sessions, _ := newSessionStore()
	svc := NewSubscriberService(fc, sessions)

	status, err := svc.Status(ctx)
	require.NoError(t, err)
	require.True(t, status.Subscribed)

	require.NoError(t, svc.Unsubscribe(ctx, "sub1"))
	require.Equal(t, "sub1", fc.LastID)
}
