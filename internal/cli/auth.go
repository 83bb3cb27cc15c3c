package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/yameogo/gestock/internal/services"
)

// Login prompts for store, username and password and opens a session.
func (a *App) Login(ctx context.Context) error {
	store, err := GetSimpleText(a.reader, "Boutique", outWriter)
	if err != nil {
		return err
	}
	username, err := GetSimpleText(a.reader, "Nom d'utilisateur", outWriter)
	if err != nil {
		return err
	}
	password, err := GetPassword(outWriter)
	if err != nil {
		return err
	}

	user, err := a.auth.Login(ctx, services.Credentials{
		StoreName: store,
		Username:  username,
		Password:  string(password),
	})
	if err != nil {
		a.log.Error(ctx, "login failed", "error", err)
		printlnFn("Connexion impossible, vérifiez vos identifiants.")
		return err
	}

	a.user = user
	printlnFn(fmt.Sprintf("Connecté en tant que %s (%s)", user.Username, user.Store.Name))
	return nil
}

// Logout ends the session server-side and clears the local user.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.log.Warn(ctx, "logout failed", "error", err)
	}
	a.user = nil
	printlnFn("Déconnecté.")
	return nil
}

// Whoami prints the current operator and the remaining session time.
func (a *App) Whoami(ctx context.Context) error {
	user, err := a.auth.CurrentUser(ctx)
	if err != nil {
		printlnFn("Aucune session active.")
		return err
	}
	printlnFn(fmt.Sprintf("%s — %s (%s)", user.Username, user.FullName, user.Store.Name))
	if exp, ok := a.auth.SessionExpiry(); ok {
		printlnFn(fmt.Sprintf("Session valable encore %s", time.Until(exp).Round(time.Second)))
	}
	return nil
}
