package services

import (
	"context"
	"fmt"

	"github.com/SatinderSinghSall/poetry-cli/internal/client/client"
	"github.com/SatinderSinghSall/poetry-cli/internal/client/models"
	"github.com/SatinderSinghSall/poetry-cli/internal/client/session"
)

// PoemService covers the poems collection. List and Get are public; the
// mutations require the persisted credential and trigger implicit logout
// when the backend rejects it.
type PoemService interface {
	List(ctx context.Context) ([]models.Poem, error)
	Get(ctx context.Context, id string) (*models.Poem, error)
	Create(ctx context.Context, in models.PoemInput) (*models.Poem, error)
	Update(ctx context.Context, id string, in models.PoemInput) (*models.Poem, error)
	Delete(ctx context.Context, id string) error
}

type poemService struct {
	client   client.Client
	sessions *session.Store
}

func NewPoemService(c client.Client, sessions *session.Store) PoemService {
	return &poemService{client: c, sessions: sessions}
}

func (s *poemService) List(ctx context.Context) ([]models.Poem, error) {
	poems, err := s.client.ListPoems(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing poems: %w", err)
	}
	return poems, nil
}

// Get returns the poem, or an error wrapping client.ErrNotFound when the id
// has no match; callers render that as an empty state, not a failure.
func (s *poemService) Get(ctx context.Context, id string) (*models.Poem, error) {
	return s.client.GetPoem(ctx, id)
}

func (s *poemService) Create(ctx context.Context, in models.PoemInput) (*models.Poem, error) {
	p, err := s.client.CreatePoem(ctx, in)
	if err != nil {
		return nil, invalidateOnAuthError(ctx, s.sessions, err)
	}
	return p, nil
}

func (s *poemService) Update(ctx context.Context, id string, in models.PoemInput) (*models.Poem, error) {
	p, err := s.client.UpdatePoem(ctx, id, in)
	if err != nil {
		return nil, invalidateOnAuthError(ctx, s.sessions, err)
	}
	return p, nil
}

func (s *poemService) Delete(ctx context.Context, id string) error {
	if err := s.client.DeletePoem(ctx, id); err != nil {
		return invalidateOnAuthError(ctx, s.sessions, err)
	}
	return nil
}
