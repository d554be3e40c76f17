// Package services contains the application services of the poetry CLI:
// authentication, poem/user/subscriber collections, the admin dashboard and
// the poem authoring form. Services sit between the CLI views and the
// transport client and own the implicit-logout policy: any authorization
// failure reported by the backend clears the persisted session.
package services

import (
	"context"
	"errors"
	"log"

	"github.com/SatinderSinghSall/poetry-cli/internal/client/client"
	"github.com/SatinderSinghSall/poetry-cli/internal/client/session"
)

// invalidateOnAuthError clears the persisted session when the backend has
// rejected the credential, then returns err unchanged.
func invalidateOnAuthError(ctx context.Context, sessions *session.Store, err error) error {
	if err != nil && errors.Is(err, client.ErrUnauthorized) {
		if lerr := sessions.Logout(ctx); lerr != nil {
			log.Printf("error clearing session: %v", lerr)
		}
	}
	return err
}
