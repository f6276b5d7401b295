package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"userdeck/internal/client/models"
	"userdeck/internal/common"
)

const (
	basePath = "/api/auth"

	loginSuccessMessage    = "Login successful"
	registerSuccessMessage = "User registered successfully"
)

// HTTPClient implements Client over the backend's JSON/REST contract.
// It attaches the current bearer token (when one exists) and a per-request
// X-Request-Id to every call. It is safe for concurrent use.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// NewHTTPClient builds a client for the backend at baseURL (scheme://host).
// A zero timeout means no client-side deadline; per-call deadlines still
// apply through ctx. tokens may be nil for a client that never authenticates.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+basePath+path, rdr)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	if c.tokens != nil {
		if token := c.tokens.Token(ctx); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	return req, nil
}

// do executes the request and decodes a JSON body into out (when non-nil).
// Transport failures map to common.ErrUnavailable; HTTP error statuses map
// to the matching sentinel.
func (c *HTTPClient) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp.StatusCode, resp.Body)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// statusError maps an HTTP error status to a sentinel, keeping the backend's
// own {error} message when it sent one.
func statusError(code int, body io.Reader) error {
	var eb struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(body).Decode(&eb)

	var sentinel error
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		sentinel = common.ErrUnauthorized
	case http.StatusNotFound:
		sentinel = common.ErrNotFound
	default:
		sentinel = common.ErrInternal
	}

	if eb.Error != "" {
		return fmt.Errorf("%w: %s", sentinel, eb.Error)
	}
	return fmt.Errorf("%w: status %d", sentinel, code)
}

type loginResponse struct {
	Message string             `json:"message"`
	Error   string             `json:"error"`
	Token   string             `json:"token"`
	User    models.UserSummary `json:"user"`
}

func (c *HTTPClient) Login(ctx context.Context, email string, password []byte) (string, models.UserSummary, error) {
	body := map[string]string{"email": email, "password": string(password)}

	req, err := c.newRequest(ctx, http.MethodPost, "/login", body)
	if err != nil {
		return "", models.UserSummary{}, err
	}

	var lr loginResponse
	if err := c.do(req, &lr); err != nil {
		// The backend answers bad credentials with a 401; collapse that to
		// the credentials sentinel so callers see one failure mode.
		if errors.Is(err, common.ErrUnauthorized) {
			return "", models.UserSummary{}, common.ErrInvalidCredentials
		}
		return "", models.UserSummary{}, err
	}

	if lr.Message != loginSuccessMessage {
		return "", models.UserSummary{}, fmt.Errorf("%w: %s", common.ErrInvalidCredentials, lr.Error)
	}
	return lr.Token, lr.User, nil
}

type registerResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *HTTPClient) Register(ctx context.Context, payload RegisterRequest) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/register", payload)
	if err != nil {
		return err
	}

	var rr registerResponse
	if err := c.do(req, &rr); err != nil {
		return err
	}

	if rr.Message != registerSuccessMessage {
		return fmt.Errorf("registration rejected: %s", rr.Error)
	}
	return nil
}

type listResponse struct {
	Users []models.UserSummary `json:"users"`
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/all", nil)
	if err != nil {
		return nil, err
	}

	var lr listResponse
	if err := c.do(req, &lr); err != nil {
		return nil, fmt.Errorf("fetching users: %w", err)
	}
	return lr.Users, nil
}

type profileResponse struct {
	User models.UserSummary `json:"user"`
}

func (c *HTTPClient) Profile(ctx context.Context) (models.UserSummary, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/profile", nil)
	if err != nil {
		return models.UserSummary{}, err
	}

	var pr profileResponse
	if err := c.do(req, &pr); err != nil {
		return models.UserSummary{}, fmt.Errorf("fetching profile: %w", err)
	}
	return pr.User, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, id string, upd models.UserUpdate) error {
	req, err := c.newRequest(ctx, http.MethodPut, "/update/"+url.PathEscape(id), upd)
	if err != nil {
		return err
	}

	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("updating user %s: %w", id, err)
	}
	return nil
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/delete/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}

	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("deleting user %s: %w", id, err)
	}
	return nil
}
