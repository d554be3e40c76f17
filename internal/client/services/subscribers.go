package services

import (
	"context"
	"fmt"

	"github.com/SatinderSinghSall/poetry-cli/internal/client/client"
	"github.com/SatinderSinghSall/poetry-cli/internal/client/models"
	"github.com/SatinderSinghSall/poetry-cli/internal/client/session"
	"github.com/go-playground/validator/v10"
)

// SubscriberService covers newsletter subscriptions: the admin collection
// plus the current user's own subscription state.
type SubscriberService interface {
	List(ctx context.Context) ([]models.Subscriber, error)
	Count(ctx context.Context) (int, error)
	Status(ctx context.Context) (*models.SubscriptionStatus, error)
	Subscribe(ctx context.Context, email string) error
	Unsubscribe(ctx context.Context, id string) error
}

type subscriberService struct {
	client   client.Client
	sessions *session.Store
	validate *validator.Validate
}

func NewSubscriberService(c client.Client, sessions *session.Store) SubscriberService {
	return &subscriberService{client: c, sessions: sessions, validate: validator.New()}
}

func (s *subscriberService) List(ctx context.Context) ([]models.Subscriber, error) {
	subs, err := s.client.ListSubscribers(ctx)
	if err != nil {
		return nil, invalidateOnAuthError(ctx, s.sessions, err)
	}
	return subs, nil
}

func (s *subscriberService) Count(ctx context.Context) (int, error) {
	return s.client.SubscriberCount(ctx)
}

func (s *subscriberService) Status(ctx context.Context) (*models.SubscriptionStatus, error) {
	status, err := s.client.SubscriptionStatus(ctx)
	if err != nil {
		return nil, invalidateOnAuthError(ctx, s.sessions, err)
	}
	return status, nil
}

// Subscribe rejects an invalid address client-side; no request is sent until
// the email validates.
func (s *subscriberService) Subscribe(ctx context.Context, email string) error {
	if err := s.validate.Var(email, "required,email"); err != nil {
		return fmt.Errorf("%w: invalid email address", client.ErrValidation)
	}
	return s.client.Subscribe(ctx, email)
}

func (s *subscriberService) Unsubscribe(ctx context.Context, id string) error {
	if err := s.client.Unsubscribe(ctx, id); err != nil {
		return invalidateOnAuthError(ctx, s.sessions, err)
	}
	return nil
}
