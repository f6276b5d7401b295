package services

import (
	"context"
	"sync"

	"userdeck/internal/client/api"
	"userdeck/internal/client/models"
)

// fakeClient implements api.Client for unit tests. Last* fields capture the
// most recent call arguments; the mutex keeps concurrent-use tests honest.
type fakeClient struct {
	mu sync.Mutex

	LoginToken string
	LoginUser  models.UserSummary
	LoginErr   error

	RegisterErr error

	ListRet []models.UserSummary
	ListErr error

	ProfileRet models.UserSummary
	ProfileErr error

	UpdateErr error
	DeleteErr error

	LastLoginEmail    string
	LastLoginPassword []byte
	LastRegister      api.RegisterRequest

	Updates []struct {
		ID  string
		Upd models.UserUpdate
	}
	Deletes []string
}

func (f *fakeClient) Login(ctx context.Context, email string, password []byte) (string, models.UserSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastLoginEmail = email
	f.LastLoginPassword = append([]byte(nil), password...)
	if f.LoginErr != nil {
		return "", models.UserSummary{}, f.LoginErr
	}
	return f.LoginToken, f.LoginUser, nil
}

func (f *fakeClient) Register(ctx context.Context, req api.RegisterRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastRegister = req
	return f.RegisterErr
}

func (f *fakeClient) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.UserSummary(nil), f.ListRet...), f.ListErr
}

func (f *fakeClient) Profile(ctx context.Context) (models.UserSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ProfileRet, f.ProfileErr
}

func (f *fakeClient) UpdateUser(ctx context.Context, id string, upd models.UserUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Updates = append(f.Updates, struct {
		ID  string
		Upd models.UserUpdate
	}{id, upd})
	return f.UpdateErr
}

func (f *fakeClient) DeleteUser(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Deletes = append(f.Deletes, id)
	return f.DeleteErr
}
