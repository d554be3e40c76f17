package services

import (
	"context"

	"github.com/SatinderSinghSall/poetry-cli/internal/client/client"
	"github.com/SatinderSinghSall/poetry-cli/internal/client/models"
	"github.com/SatinderSinghSall/poetry-cli/internal/client/session"
)

// UserService covers the admin users collection.
type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, id string) error
}

type userService struct {
	client   client.Client
	sessions *session.Store
}

func NewUserService(c client.Client, sessions *session.Store) UserService {
	return &userService{client: c, sessions: sessions}
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.client.ListUsers(ctx)
	if err != nil {
		return nil, invalidateOnAuthError(ctx, s.sessions, err)
	}
	return users, nil
}

func (s *userService) Count(ctx context.Context) (int, error) {
	return s.client.UserCount(ctx)
}

func (s *userService) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteUser(ctx, id); err != nil {
		return invalidateOnAuthError(ctx, s.sessions, err)
	}
	return nil
}
