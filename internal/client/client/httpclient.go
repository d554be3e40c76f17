package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SatinderSinghSall/poetry-cli/internal/client/models"
	"github.com/SatinderSinghSall/poetry-cli/internal/logging"
	"github.com/google/uuid"
)

// HTTPClient talks JSON over HTTP to the poetry backend. Every request gets
// a single attempt under a per-call timeout; there is no retry or queuing.
// If the token source yields a credential it is attached as a bearer header,
// otherwise the request is dispatched unauthenticated. Mutating requests
// carry an Idempotency-Key header so an accidental double submission is the
// backend's problem to collapse, not a duplicate write.
type HTTPClient struct {
	baseURL string
	timeout time.Duration
	tokens  TokenSource
	http    *http.Client
	log     logging.Logger
}

func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		tokens:  tokens,
		http:    &http.Client{},
	}
}

// SetLogger enables request logging. A nil logger keeps the client silent.
func (c *HTTPClient) SetLogger(l logging.Logger) {
	c.log = l
}

// errorResponse is the backend's error body shape.
type errorResponse struct {
	Message string `json:"message"`
}

type countResponse struct {
	Count int `json:"count"`
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if method != http.MethodGet {
		req.Header.Set("Idempotency-Key", uuid.NewString())
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if c.log != nil {
			c.log.Warn(ctx, "request failed", "method", method, "path", path, "err", err)
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if c.log != nil {
		c.log.Debug(ctx, "request done",
			"method", method, "path", path,
			"status", resp.StatusCode, "duration", time.Since(start))
	}

	if resp.StatusCode >= 300 {
		return c.errorFromResponse(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *HTTPClient) errorFromResponse(resp *http.Response) error {
	var body errorResponse
	_ = json.NewDecoder(resp.Body).Decode(&body)
	msg := body.Message
	if msg == "" {
		msg = resp.Status
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrValidation, msg)
	default:
		return fmt.Errorf("backend http %d: %s", resp.StatusCode, msg)
	}
}

func (c *HTTPClient) Register(ctx context.Context, name, email, password string) error {
	body := map[string]string{"name": name, "email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/auth/register", body, nil)
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.Session, error) {
	body := map[string]string{"email": email, "password": password}
	var session models.Session
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *HTTPClient) ListPoems(ctx context.Context) ([]models.Poem, error) {
	var poems []models.Poem
	if err := c.do(ctx, http.MethodGet, "/poems", nil, &poems); err != nil {
		return nil, err
	}
	return poems, nil
}

func (c *HTTPClient) GetPoem(ctx context.Context, id string) (*models.Poem, error) {
	var poem models.Poem
	if err := c.do(ctx, http.MethodGet, "/poems/"+url.PathEscape(id), nil, &poem); err != nil {
		return nil, err
	}
	return &poem, nil
}

func (c *HTTPClient) CreatePoem(ctx context.Context, in models.PoemInput) (*models.Poem, error) {
	var poem models.Poem
	if err := c.do(ctx, http.MethodPost, "/poems", in, &poem); err != nil {
		return nil, err
	}
	return &poem, nil
}

func (c *HTTPClient) UpdatePoem(ctx context.Context, id string, in models.PoemInput) (*models.Poem, error) {
	var poem models.Poem
	if err := c.do(ctx, http.MethodPut, "/poems/"+url.PathEscape(id), in, &poem); err != nil {
		return nil, err
	}
	return &poem, nil
}

func (c *HTTPClient) DeletePoem(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/poems/"+url.PathEscape(id), nil, nil)
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTPClient) UserCount(ctx context.Context) (int, error) {
	var out countResponse
	if err := c.do(ctx, http.MethodGet, "/users/count", nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(id), nil, nil)
}

func (c *HTTPClient) Profile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) ListSubscribers(ctx context.Context) ([]models.Subscriber, error) {
	var subs []models.Subscriber
	if err := c.do(ctx, http.MethodGet, "/subscribe", nil, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

func (c *HTTPClient) SubscriberCount(ctx context.Context) (int, error) {
	var out countResponse
	if err := c.do(ctx, http.MethodGet, "/subscribe/count", nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

func (c *HTTPClient) SubscriptionStatus(ctx context.Context) (*models.SubscriptionStatus, error) {
	var status models.SubscriptionStatus
	if err := c.do(ctx, http.MethodGet, "/subscribe/status", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *HTTPClient) Subscribe(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/subscribe", map[string]string{"email": email}, nil)
}

func (c *HTTPClient) Unsubscribe(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/subscribe/"+url.PathEscape(id), nil, nil)
}
