// Package session holds the durable session store: the single place the
// authenticated identity and bearer credential live between runs.
package session

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/SatinderSinghSall/poetry-cli/internal/client/models"
	"github.com/SatinderSinghSall/poetry-cli/internal/client/repositories/state"
	"github.com/golang-jwt/jwt/v5"
)

const storageKey = "session"

// Store persists the session in the state repository. Login replaces the
// session wholesale, Logout clears it; there is no partial update. Corrupt
// or partially missing persisted data reads back as an absent session, never
// as an error.
type Store struct {
	repo state.Repository
}

func NewStore(repo state.Repository) *Store {
	return &Store{repo: repo}
}

// Login persists the given session, replacing any previous one.
func (s *Store) Login(ctx context.Context, sess models.Session) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.repo.Set(ctx, storageKey, b)
}

// Logout clears the persisted session.
func (s *Store) Logout(ctx context.Context) error {
	return s.repo.Delete(ctx, storageKey)
}

// Current returns the persisted session, or nil when none exists. Unreadable
// or expired data is purged and treated as absent.
func (s *Store) Current(ctx context.Context) *models.Session {
	b, err := s.repo.Get(ctx, storageKey)
	if err != nil {
		log.Printf("error reading session: %v", err)
		return nil
	}
	if b == nil {
		return nil
	}

	var sess models.Session
	if err := json.Unmarshal(b, &sess); err != nil || sess.Token == "" || sess.Email == "" {
		s.purge(ctx)
		return nil
	}
	if credentialExpired(sess.Token) {
		s.purge(ctx)
		return nil
	}
	return &sess
}

// Token implements client.TokenSource.
func (s *Store) Token() string {
	sess := s.Current(context.Background())
	if sess == nil {
		return ""
	}
	return sess.Token
}

func (s *Store) purge(ctx context.Context) {
	if err := s.repo.Delete(ctx, storageKey); err != nil {
		log.Printf("error purging session: %v", err)
	}
}

// credentialExpired inspects the credential's exp claim without verifying the
// signature (the token is otherwise opaque to the client). Tokens that do not
// parse as JWTs, or carry no exp claim, are treated as still valid and left
// for the backend to reject.
func credentialExpired(token string) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
