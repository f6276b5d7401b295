package api

import (
	"context"

	"userdeck/internal/client/models"
)

// TokenSource supplies the current bearer token for outbound requests.
// An empty string means "no token": the request is still issued and the
// server decides whether to reject it.
type TokenSource interface {
	Token(ctx context.Context) string
}

// TokenSourceFunc adapts a plain function to the TokenSource interface.
type TokenSourceFunc func(ctx context.Context) string

func (f TokenSourceFunc) Token(ctx context.Context) string { return f(ctx) }

// Client is the transport-agnostic contract for talking to the user-account
// backend. The concrete implementation is HTTPClient.
type Client interface {
	// Login exchanges credentials for a bearer token and the caller's user
	// record. Bad credentials map to common.ErrInvalidCredentials.
	Login(ctx context.Context, email string, password []byte) (string, models.UserSummary, error)

	// Register creates a new account from an already-validated draft.
	Register(ctx context.Context, req RegisterRequest) error

	// ListUsers fetches every record in the directory.
	ListUsers(ctx context.Context) ([]models.UserSummary, error)

	// Profile fetches the record belonging to the current token.
	Profile(ctx context.Context) (models.UserSummary, error)

	// UpdateUser sends a partial update for one record. The server owns the
	// merge; callers must re-fetch to observe authoritative state.
	UpdateUser(ctx context.Context, id string, upd models.UserUpdate) error

	// DeleteUser removes one record. Deleting an id that no longer exists is
	// the server's call to report; the answer is surfaced unchanged.
	DeleteUser(ctx context.Context, id string) error
}

// RegisterRequest is the registration payload. Image is the durable URL
// produced by the upload pipeline, or the placeholder when no image was
// supplied.
type RegisterRequest struct {
	Name        string `json:"name"`
	Mobile      string `json:"mobile"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	State       string `json:"state"`
	City        string `json:"city"`
	Description string `json:"description"`
	Image       string `json:"image"`
}
