package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/SatinderSinghSall/poetry-cli/internal/client/client"
	"github.com/SatinderSinghSall/poetry-cli/internal/client/config"
	"github.com/SatinderSinghSall/poetry-cli/internal/client/models"
	"github.com/SatinderSinghSall/poetry-cli/internal/client/services"
	"github.com/SatinderSinghSall/poetry-cli/internal/client/session"
	"github.com/SatinderSinghSall/poetry-cli/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the configuration, local state store, API client and services
// together behind the terminal front end.
type App struct {
	config      *config.Config
	repos       *client.Repositories
	sessions    *session.Store
	auth        services.AuthService
	poems       services.PoemService
	users       services.UserService
	subscribers services.SubscriberService
	dashboard   services.DashboardService
	reader      *bufio.Reader
}

// NewApp builds the application: opens the local state database, runs
// migrations, and constructs the API client and services on top of it.
func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	repos, err := client.InitDatabase(ctx, cfg.StateDBPath)
	if err != nil {
		log.Printf("error initializing local state db: %v", err)
		return nil, err
	}

	sessions := session.NewStore(repos.State)
	api := client.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, sessions)
	api.SetLogger(logging.NewSlogLogger(slog.Default()).With("component", "httpclient"))

	subscribers := services.NewSubscriberService(api, sessions)

	a := &App{
		config:      cfg,
		repos:       repos,
		sessions:    sessions,
		auth:        services.NewAuthService(api, sessions),
		poems:       services.NewPoemService(api, sessions),
		users:       services.NewUserService(api, sessions),
		subscribers: subscribers,
		dashboard:   services.NewDashboardService(api, sessions),
		reader:      bufio.NewReader(os.Stdin),
	}
	return a, nil
}

// Run starts the interactive session and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

// Root prints the greeting and hands control to the REPL.
func (a *App) Root(ctx context.Context) {
	printlnFn("Poetry terminal client. Type 'help' for commands.")
	if s := a.sessions.Current(ctx); s != nil {
		printlnFn(fmt.Sprintf("Welcome back, %s!", s.Name))
	}
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// getStatus renders the prompt status fragment for the current session.
func (a *App) getStatus() string {
	s := a.sessions.Current(context.Background())
	if s == nil {
		return "(guest)"
	}
	return fmt.Sprintf("(%s %s)", s.Email, s.Role)
}

func (a *App) isLoggedIn() bool {
	return a.sessions.Current(context.Background()) != nil
}

func (a *App) isAdmin() bool {
	return a.sessions.Current(context.Background()).IsAdmin()
}

// guard evaluates a gate against the current session and reports the
// decision to the user. It returns true when the caller may proceed.
func (a *App) guard(ctx context.Context, gate func(s *models.Session) GateDecision) bool {
	d := gate(a.sessions.Current(ctx))
	switch d {
	case GateDenyLogin:
		printlnFn("Please login first.")
		return false
	case GateDenyHome:
		printlnFn("Admins only. Returning home.")
		return false
	}
	return true
}
