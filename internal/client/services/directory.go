package services

import (
	"context"
	"fmt"

	"userdeck/internal/client/api"
	"userdeck/internal/client/models"
)

// DirectoryService is the authenticated CRUD view over the backend's user
// collection. It never caches: after a successful mutation the caller
// re-fetches to observe authoritative state, so client and server truth
// cannot diverge. Concurrent calls are independent; the backend is the sole
// point of serialization.
type DirectoryService interface {
	ListAll(ctx context.Context) ([]models.UserSummary, error)
	Profile(ctx context.Context) (models.UserSummary, error)
	Update(ctx context.Context, id string, upd models.UserUpdate) error
	Delete(ctx context.Context, id string) error
}

type directoryService struct {
	client api.Client
}

func NewDirectoryService(client api.Client) DirectoryService {
	return &directoryService{client: client}
}

func (s *directoryService) ListAll(ctx context.Context) ([]models.UserSummary, error) {
	users, err := s.client.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

func (s *directoryService) Profile(ctx context.Context) (models.UserSummary, error) {
	user, err := s.client.Profile(ctx)
	if err != nil {
		return models.UserSummary{}, fmt.Errorf("fetching profile: %w", err)
	}
	return user, nil
}

// Update sends a partial update. An empty update is rejected locally; there
// is nothing for the server to merge.
func (s *directoryService) Update(ctx context.Context, id string, upd models.UserUpdate) error {
	if upd.IsEmpty() {
		return fmt.Errorf("update for %s carries no fields", id)
	}
	return s.client.UpdateUser(ctx, id, upd)
}

// Delete is irreversible. Confirmation is the caller's concern; deleting an
// id that is already gone surfaces the server's answer unchanged.
func (s *directoryService) Delete(ctx context.Context, id string) error {
	return s.client.DeleteUser(ctx, id)
}
