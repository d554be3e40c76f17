package client

import (
	"context"

	"github.com/SatinderSinghSall/poetry-cli/internal/client/models"
)

// Client is the transport seam between the services and the poetry backend.
// Implementations must attach the current bearer credential (when one exists)
// to every call; callers never pass the credential explicitly.
type Client interface {
	Register(ctx context.Context, name, email, password string) error
	Login(ctx context.Context, email, password string) (*models.Session, error)

	ListPoems(ctx context.Context) ([]models.Poem, error)
	GetPoem(ctx context.Context, id string) (*models.Poem, error)
	CreatePoem(ctx context.Context, in models.PoemInput) (*models.Poem, error)
	UpdatePoem(ctx context.Context, id string, in models.PoemInput) (*models.Poem, error)
	DeletePoem(ctx context.Context, id string) error

	ListUsers(ctx context.Context) ([]models.User, error)
	UserCount(ctx context.Context) (int, error)
	DeleteUser(ctx context.Context, id string) error
	Profile(ctx context.Context) (*models.User, error)

	ListSubscribers(ctx context.Context) ([]models.Subscriber, error)
	SubscriberCount(ctx context.Context) (int, error)
	SubscriptionStatus(ctx context.Context) (*models.SubscriptionStatus, error)
	Subscribe(ctx context.Context, email string) error
	Unsubscribe(ctx context.Context, id string) error
}

// TokenSource yields the current bearer credential, or "" when no session
// exists. The session store satisfies this interface.
type TokenSource interface {
	Token() string
}
