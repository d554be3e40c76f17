package services

import (
	"context"
	"fmt"

	"github.com/SatinderSinghSall/poetry-cli/internal/client/client"
	"github.com/SatinderSinghSall/poetry-cli/internal/client/models"
	"github.com/SatinderSinghSall/poetry-cli/internal/client/session"
)

// DashboardStats is the admin overview: collection counts plus the most
// recently added poems.
type DashboardStats struct {
	Poems       int
	Users       int
	Subscribers int
	Recent      []models.Poem
}

// recentPoems is how many poems the dashboard previews.
const recentPoems = 3

// DashboardService fans out to the poems list and the count endpoints.
type DashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}

type dashboardService struct {
	client   client.Client
	sessions *session.Store
}

func NewDashboardService(c client.Client, sessions *session.Store) DashboardService {
	return &dashboardService{client: c, sessions: sessions}
}

func (s *dashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	poems, err := s.client.ListPoems(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading poems: %w", err)
	}

	users, err := s.client.UserCount(ctx)
	if err != nil {
		return nil, invalidateOnAuthError(ctx, s.sessions, fmt.Errorf("error loading user count: %w", err))
	}

	subs, err := s.client.SubscriberCount(ctx)
	if err != nil {
		return nil, invalidateOnAuthError(ctx, s.sessions, fmt.Errorf("error loading subscriber count: %w", err))
	}

	recent := poems
	if len(recent) > recentPoems {
		recent = recent[len(recent)-recentPoems:]
	}

	return &DashboardStats{
		Poems:       len(poems),
		Users:       users,
		Subscribers: subs,
		Recent:      recent,
	}, nil
}
