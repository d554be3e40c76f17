package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/SatinderSinghSall/poetry-cli/internal/client/client"
)

// Register prompts for account details and creates a new account. The user
// still logs in separately afterwards.
func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Name: ", os.Stdout)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Email: ", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer wipeByteArray(password)

	if err := a.auth.Register(ctx, name, email, string(password)); err != nil {
		log.Printf("Registration failed: %v", err)
		return err
	}
	printlnFn("Account created. You can login now.")
	return nil
}

// Login prompts for credentials and starts a session.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Email: ", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer wipeByteArray(password)

	s, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			log.Printf("Server unreachable: %v", err)
		} else {
			log.Printf("Login failed: %v", err)
		}
		return err
	}
	printlnFn(fmt.Sprintf("Logged in as %s (%s).", s.Name, s.Role))
	return nil
}

// Logout ends the current session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		log.Printf("Logout failed: %v", err)
		return err
	}
	printlnFn("Logged out.")
	return nil
}

// Profile shows the signed-in user's account details and newsletter state.
func (a *App) Profile(ctx context.Context) error {
	if !a.guard(ctx, AuthenticatedGate) {
		return nil
	}

	u, err := a.auth.Profile(ctx)
	if err != nil {
		log.Printf("error loading profile: %v", err)
		return err
	}
	printlnFn(fmt.Sprintf("%s <%s>, role %s", u.Name, u.Email, u.Role))

	st, err := a.subscribers.Status(ctx)
	if err != nil {
		log.Printf("error loading subscription status: %v", err)
		return nil
	}
	if st.Subscribed {
		printlnFn(fmt.Sprintf("Subscribed to the newsletter since %s.", st.SubscribedAt.Format("2006-01-02")))
	} else {
		printlnFn("Not subscribed to the newsletter.")
	}
	return nil
}

// Subscribe prompts for an email address and joins the newsletter.
func (a *App) Subscribe(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Email: ", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.subscribers.Subscribe(ctx, email); err != nil {
		log.Printf("Subscribe failed: %v", err)
		return err
	}
	printlnFn("Subscribed. Thank you!")
	return nil
}

// Unsubscribe removes the signed-in user's newsletter subscription.
func (a *App) Unsubscribe(ctx context.Context) error {
	if !a.guard(ctx, AuthenticatedGate) {
		return nil
	}

	st, err := a.subscribers.Status(ctx)
	if err != nil {
		log.Printf("error loading subscription status: %v", err)
		return err
	}
	if !st.Subscribed {
		printlnFn("You are not subscribed.")
		return nil
	}
	if err := a.subscribers.Unsubscribe(ctx, st.ID); err != nil {
		log.Printf("Unsubscribe failed: %v", err)
		return err
	}
	printlnFn("Unsubscribed.")
	return nil
}
