package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"userdeck/internal/client/models"
	"userdeck/internal/common"
)

// reportDirectoryError translates service errors into operator guidance.
// A rejected token means the durable session is stale; the fix is a fresh
// login, not a retry.
func (a *App) reportDirectoryError(err error) {
	switch {
	case errors.Is(err, common.ErrUnauthorized):
		printlnFn("Session rejected by the server; please login again.")
	case errors.Is(err, common.ErrNotFound):
		printlnFn("No such user.")
	case errors.Is(err, common.ErrUnavailable):
		printlnFn("Server unavailable, try again later.")
	default:
		a.logger.Error(context.Background(), "directory call failed", "error", err)
		printlnFn("Error:", err.Error())
	}
}

// List prints one line per directory record.
func (a *App) List(ctx context.Context) error {
	users, err := a.directory.ListAll(ctx)
	if err != nil {
		a.reportDirectoryError(err)
		return err
	}

	for _, u := range users {
		printlnFn(fmt.Sprintf("%s  %s  %s  %s/%s", u.ID, u.Name, u.Email, u.City, u.State))
	}
	printlnFn(fmt.Sprintf("%d user(s)", len(users)))
	return nil
}

// View shows all fields of a single record. The record comes from a fresh
// list fetch; the client never trusts a cached copy.
func (a *App) View(ctx context.Context, id string) error {
	user, err := a.findUser(ctx, id)
	if err != nil {
		a.reportDirectoryError(err)
		return err
	}

	printlnFn("Id:         ", user.ID)
	printlnFn("Name:       ", user.Name)
	printlnFn("Email:      ", user.Email)
	printlnFn("Mobile:     ", user.Mobile)
	printlnFn("State:      ", user.State)
	printlnFn("City:       ", user.City)
	printlnFn("Description:", user.Description)
	printlnFn("Image:      ", user.Image)
	return nil
}

func (a *App) findUser(ctx context.Context, id string) (models.UserSummary, error) {
	users, err := a.directory.ListAll(ctx)
	if err != nil {
		return models.UserSummary{}, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.UserSummary{}, common.ErrNotFound
}

// Update prompts for each editable field; a blank answer keeps the current
// value and is left out of the request entirely.
func (a *App) Update(ctx context.Context, id string) error {
	current, err := a.findUser(ctx, id)
	if err != nil {
		a.reportDirectoryError(err)
		return err
	}

	upd := models.UserUpdate{}

	prompts := []struct {
		prompt  string
		current string
		dst     **string
	}{
		{"Name", current.Name, &upd.Name},
		{"Mobile", current.Mobile, &upd.Mobile},
		{"Email", current.Email, &upd.Email},
		{"State", current.State, &upd.State},
		{"City", current.City, &upd.City},
		{"Description", current.Description, &upd.Description},
	}

	for _, p := range prompts {
		v, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s] (blank keeps current)", p.prompt, p.current), os.Stdout)
		if err != nil {
			return err
		}
		if v != "" {
			*p.dst = &v
		}
	}

	if upd.IsEmpty() {
		printlnFn("Nothing to update.")
		return nil
	}

	if err := a.directory.Update(ctx, id, upd); err != nil {
		a.reportDirectoryError(err)
		return err
	}

	printlnFn("Updated.")
	return nil
}

// Delete removes a record after an explicit confirmation. Answering anything
// but yes leaves the directory untouched.
func (a *App) Delete(ctx context.Context, id string) error {
	if !GetConfirm(a.reader, fmt.Sprintf("Delete user %s?", id), os.Stdout) {
		printlnFn("Cancelled.")
		return nil
	}

	if err := a.directory.Delete(ctx, id); err != nil {
		a.reportDirectoryError(err)
		return err
	}

	printlnFn("Deleted.")
	return nil
}
