package services

import (
	"context"
	"fmt"

	"github.com/SatinderSinghSall/poetry-cli/internal/client/client"
	"github.com/SatinderSinghSall/poetry-cli/internal/client/models"
	"github.com/SatinderSinghSall/poetry-cli/internal/client/session"
	"github.com/go-playground/validator/v10"
)

// AuthService defines account and session operations for the CLI.
//
// Contract:
//   - Register: validate locally, then create the account on the backend.
//   - Login: authenticate and persist the returned identity plus credential.
//   - Logout: clear the persisted session.
//   - Current: the persisted session, nil when signed out.
//   - Profile: fetch the authenticated user's profile.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) error
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) *models.Session
	Profile(ctx context.Context) (*models.User, error)
}

type authService struct {
	client   client.Client
	sessions *session.Store
	validate *validator.Validate
}

func NewAuthService(c client.Client, sessions *session.Store) AuthService {
	return &authService{client: c, sessions: sessions, validate: validator.New()}
}

type registerInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// Register validates the fields client-side; nothing is sent to the backend
// until they pass.
func (a *authService) Register(ctx context.Context, name, email, password string) error {
	in := registerInput{Name: name, Email: email, Password: password}
	if err := a.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", client.ErrValidation, err)
	}
	return a.client.Register(ctx, name, email, password)
}

// Login authenticates and replaces the persisted session wholesale with the
// returned identity and credential.
func (a *authService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	sess, err := a.client.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}
	if err := a.sessions.Login(ctx, *sess); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return sess, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.sessions.Logout(ctx)
}

func (a *authService) Current(ctx context.Context) *models.Session {
	return a.sessions.Current(ctx)
}

func (a *authService) Profile(ctx context.Context) (*models.User, error) {
	u, err := a.client.Profile(ctx)
	if err != nil {
		return nil, invalidateOnAuthError(ctx, a.sessions, err)
	}
	return u, nil
}
