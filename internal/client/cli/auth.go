package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/resumerag/internal/client/services"
	"github.com/dmitrijs2005/resumerag/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login authenticates against the login endpoint.
func (a *App) Login(ctx context.Context) error {
	a.auth.SetMode(services.ModeLogin)
	return a.submitAuth(ctx)
}

// Signup creates an account and logs in with it.
func (a *App) Signup(ctx context.Context) error {
	a.auth.SetMode(services.ModeSignup)
	return a.submitAuth(ctx)
}

// Switch toggles the auth screen between login and signup.
func (a *App) Switch(ctx context.Context) error {
	mode := a.auth.Toggle()
	fmt.Fprintf(a.out, "Switched to %s.\n", mode)
	return nil
}

// submitAuth prompts for credentials and submits them in the current mode.
// An empty answer keeps the previously typed value.
func (a *App) submitAuth(ctx context.Context) error {
	prompt := "Enter email"
	if email := a.auth.Email(); email != "" {
		prompt = fmt.Sprintf("Enter email [%s]", email)
	}
	email, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	if email != "" {
		a.auth.SetEmail(email)
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	if len(password) > 0 || !a.auth.HasPassword() {
		a.auth.SetPassword(password)
	} else {
		common.WipeByteArray(password)
	}

	sess, err := a.auth.Submit(ctx)
	if err != nil {
		fmt.Fprintln(a.out, a.auth.Message())
		return err
	}

	a.syncScreen()
	fmt.Fprintf(a.out, "Welcome, %s!\n", displayName(sess.User))
	return nil
}

// Logout ends the session. The in-memory session is gone even when the
// local database could not be cleared.
func (a *App) Logout(ctx context.Context) error {
	err := a.store.Logout(ctx)
	a.syncScreen()
	if err != nil {
		a.logger.Error(ctx, "logout error", "error", err.Error())
		fmt.Fprintln(a.out, "Logged out, but the stored session could not be removed.")
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
