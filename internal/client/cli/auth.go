package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"userdeck/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts the user for credentials and tries to authenticate.
//
// On success the durable session is written by the SessionService and the
// in-memory mirror is refreshed from its result. Bad credentials and an
// unreachable backend are reported to the user; the session store is left
// untouched in both cases.
//
// The password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	session, err := a.sessions.Login(ctx, email, password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidCredentials):
			printlnFn("Invalid email or password.")
		case errors.Is(err, common.ErrUnavailable):
			printlnFn("Server unavailable, try again later.")
		default:
			a.logger.Error(ctx, "login failed", "error", err)
			printlnFn("Login failed:", err.Error())
		}
		return err
	}

	a.session = session
	printlnFn(fmt.Sprintf("Welcome, %s!", session.User.Name))
	return nil
}

// Logout clears the durable session and the in-memory mirror. Logging out
// while already logged out is a no-op.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Logout(ctx); err != nil {
		a.logger.Error(ctx, "logout failed", "error", err)
		return err
	}
	a.session = a.sessions.Current(ctx)
	printlnFn("Logged out.")
	return nil
}

// WhoAmI prints the current identity and, when the token carries an expiry
// claim, how long the session has left.
func (a *App) WhoAmI(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in.")
		return nil
	}

	u := a.session.User
	printlnFn(fmt.Sprintf("%s <%s> (id %s)", u.Name, u.Email, u.ID))

	if exp, ok := a.sessions.TokenExpiry(ctx); ok {
		if left := time.Until(exp); left > 0 {
			printlnFn(fmt.Sprintf("Token expires %s (%s left)", exp.Format(time.RFC3339), left.Round(time.Second)))
		} else {
			printlnFn("Token expired; please login again.")
		}
	}
	return nil
}
