// Package services contains the application services of the userdeck client:
// session lifecycle, directory CRUD, and registration submission.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"userdeck/internal/client/api"
	"userdeck/internal/client/models"
	"userdeck/internal/client/repositories/sessionstore"
	"userdeck/internal/dbx"
)

// SessionService is the single authority for session state and its durable
// mirror in the local session database.
//
// Contract:
//   - Login: authenticate and commit the whole session record, or commit
//     nothing at all.
//   - Current: reconstruct session state from the store; never fails. A
//     corrupted or partial store reads as "unauthenticated".
//   - Logout: clear every session key; idempotent.
//   - Token: read-only accessor used to authorize directory calls.
type SessionService interface {
	Login(ctx context.Context, email string, password []byte) (models.Session, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) models.Session
	Token(ctx context.Context) string
	TokenExpiry(ctx context.Context) (time.Time, bool)
}

type sessionService struct {
	client api.Client
	db     *sql.DB
}

// NewSessionService constructs a SessionService bound to the given API
// client and session database.
func NewSessionService(client api.Client, db *sql.DB) SessionService {
	return &sessionService{client: client, db: db}
}

func (s *sessionService) repo(db dbx.DBTX) sessionstore.Repository {
	return sessionstore.NewSQLiteRepository(db)
}

// Login exchanges credentials for a token and user record, then writes
// isAuth, token, and user to the store in a single transaction. A failed
// login leaves the store untouched.
func (s *sessionService) Login(ctx context.Context, email string, password []byte) (models.Session, error) {
	token, user, err := s.client.Login(ctx, email, password)
	if err != nil {
		return models.Unauthenticated(), err
	}

	userJSON, err := json.Marshal(user)
	if err != nil {
		return models.Unauthenticated(), err
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Set(ctx, sessionstore.KeyIsAuth, []byte("true")); err != nil {
			return err
		}
		if err := repo.Set(ctx, sessionstore.KeyToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, sessionstore.KeyUser, userJSON)
	})
	if err != nil {
		return models.Unauthenticated(), err
	}

	return models.Session{Authenticated: true, Token: token, User: user}, nil
}

// Current rebuilds the session from the store. Any failure mode (missing
// keys, unreadable database, undecodable user record) collapses to the
// unauthenticated session.
func (s *sessionService) Current(ctx context.Context) models.Session {
	record, err := s.repo(s.db).List(ctx)
	if err != nil {
		return models.Unauthenticated()
	}

	if string(record[sessionstore.KeyIsAuth]) != "true" {
		return models.Unauthenticated()
	}

	token := string(record[sessionstore.KeyToken])
	if token == "" {
		return models.Unauthenticated()
	}

	var user models.UserSummary
	if err := json.Unmarshal(record[sessionstore.KeyUser], &user); err != nil || user.ID == "" {
		return models.Unauthenticated()
	}

	return models.Session{Authenticated: true, Token: token, User: user}
}

// Logout clears the whole session record in one transaction. Logging out
// with no active session is a no-op.
func (s *sessionService) Logout(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repo(tx).Clear(ctx)
	})
}

// Token returns the current bearer token, or an empty string when there is
// no authenticated session. It never mutates state.
func (s *sessionService) Token(ctx context.Context) string {
	return s.Current(ctx).Token
}

// TokenExpiry reports the unverified exp claim of the current token, when
// the token happens to be a JWT. It is informational only: requests are
// issued with whatever token exists and the server stays the authority.
func (s *sessionService) TokenExpiry(ctx context.Context) (time.Time, bool) {
	token := s.Token(ctx)
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
