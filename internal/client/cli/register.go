package cli

import (
	"context"
	"errors"
	"os"

	"userdeck/internal/client/models"
	"userdeck/internal/client/validation"
	"userdeck/internal/common"
)

// Register collects a full registration draft and submits it.
//
// Every prompt is answered before anything is validated, and every
// validation failure is reported in one pass so the user can fix all fields
// on the next attempt. An upload failure for the optional profile picture
// aborts the registration without creating the account.
func (a *App) Register(ctx context.Context) error {
	draft := models.RegistrationDraft{}

	prompts := []struct {
		prompt string
		dst    *string
	}{
		{"Enter name", &draft.Name},
		{"Enter mobile number", &draft.Mobile},
		{"Enter email", &draft.Email},
		{"Enter state", &draft.State},
		{"Enter city", &draft.City},
		{"Enter description", &draft.Description},
		{"Enter profile picture path (optional)", &draft.ImagePath},
	}

	for _, p := range prompts {
		v, err := getSimpleText(a.reader, p.prompt, os.Stdout)
		if err != nil {
			return err
		}
		*p.dst = v
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	draft.Password = string(password)
	common.WipeByteArray(password)

	if err := a.registration.Submit(ctx, draft); err != nil {
		var verrs validation.Errors
		switch {
		case errors.As(err, &verrs):
			printlnFn("Please fix the following fields:")
			for _, field := range verrs.Fields() {
				printlnFn(" -", field+":", verrs[field])
			}
		case errors.Is(err, common.ErrUnavailable):
			printlnFn("Server unavailable, try again later.")
		default:
			a.logger.Error(ctx, "registration failed", "error", err)
			printlnFn("Registration failed:", err.Error())
		}
		return err
	}

	printlnFn("Registered! You can now login.")
	return nil
}
