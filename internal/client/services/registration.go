package services

import (
	"context"
	"fmt"

	"userdeck/internal/client/api"
	"userdeck/internal/client/models"
	"userdeck/internal/client/upload"
	"userdeck/internal/client/validation"
)

// PlaceholderImage is used when a draft carries no profile picture.
const PlaceholderImage = "/profile-placeholder.png"

// RegistrationService submits a new-account draft. Submission is two-phase:
// the image (when present) is uploaded first, and an upload failure aborts
// the registration; the account is never created without its image.
type RegistrationService interface {
	Submit(ctx context.Context, draft models.RegistrationDraft) error
}

type registrationService struct {
	client   api.Client
	pipeline *upload.Pipeline
}

func NewRegistrationService(client api.Client, pipeline *upload.Pipeline) RegistrationService {
	return &registrationService{client: client, pipeline: pipeline}
}

// Submit validates the draft, runs the optional image upload, and sends the
// registration. Validation failures are returned as validation.Errors and
// never reach the network.
func (s *registrationService) Submit(ctx context.Context, draft models.RegistrationDraft) error {
	if err := validation.Validate(draft); err != nil {
		return err
	}

	imageURL := PlaceholderImage
	if draft.ImagePath != "" {
		asset, err := models.LoadImageAsset(draft.ImagePath)
		if err != nil {
			return err
		}
		url, err := s.pipeline.Run(ctx, asset)
		if err != nil {
			return fmt.Errorf("registration aborted: %w", err)
		}
		imageURL = url
	}

	req := api.RegisterRequest{
		Name:        draft.Name,
		Mobile:      draft.Mobile,
		Email:       draft.Email,
		Password:    draft.Password,
		State:       draft.State,
		City:        draft.City,
		Description: draft.Description,
		Image:       imageURL,
	}

	if err := s.client.Register(ctx, req); err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}
	return nil
}
