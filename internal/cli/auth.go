package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tweetheure/internal/common"
	"github.com/dmitrijs2005/tweetheure/internal/services"
)

// Register asks for name, email and password. An invalid email or an
// over-long password is asked again; cancelling the name or the email aborts.
func (a *App) Register(ctx context.Context) error {
	a.screen.Clear()

	name := a.screen.Prompt("Entrez votre nom : ")
	if name == "" {
		return errCancelled
	}

	var email string
	for {
		email = a.screen.Prompt("Entrez votre email : ")
		if email == "" {
			return errCancelled
		}
		if err := services.ValidateEmail(email); err != nil {
			a.message("❌ Erreur : Email invalide")
			continue
		}
		break
	}

	var password []byte
	for {
		password = []byte(a.screen.PromptSecret("Entrez votre mot de passe : "))
		if err := services.ValidatePassword(password); err != nil {
			common.WipeByteArray(password)
			a.message(fmt.Sprintf("❌ Erreur : Mot de passe trop long (%d octets maximum)", services.MaxPasswordLen))
			continue
		}
		break
	}
	defer common.WipeByteArray(password)

	_, err := a.accounts.Register(ctx, name, email, password)
	switch {
	case err == nil:
		a.message("✅ Compte créé avec succès !")
		return nil
	case errors.Is(err, common.ErrDuplicateEmail):
		a.message("❌ Erreur : Utilisateur déjà existant.")
		return err
	case errors.Is(err, common.ErrInvalidEmail):
		a.message("❌ Erreur : Email invalide")
		return err
	case errors.Is(err, common.ErrPasswordTooLong):
		a.message(fmt.Sprintf("❌ Erreur : Mot de passe trop long (%d octets maximum)", services.MaxPasswordLen))
		return err
	default:
		return a.internalError(ctx, "register", err)
	}
}

func (a *App) Login(ctx context.Context) error {
	a.screen.Clear()

	email := a.screen.Prompt("Entrez votre email : ")
	password := []byte(a.screen.PromptSecret("Entrez votre mot de passe : "))
	defer common.WipeByteArray(password)

	user, err := a.accounts.Login(ctx, &a.user, email, password)
	switch {
	case err == nil:
		a.message(fmt.Sprintf("✅ connecté(e) en tant que %s", user.Name))
		return nil
	case errors.Is(err, common.ErrInvalidCredentials):
		a.message("❌ Identifiants incorrects.")
		return err
	default:
		return a.internalError(ctx, "login", err)
	}
}

func (a *App) Logout(ctx context.Context) error {
	name := a.user.Name()

	ok, err := a.accounts.Logout(ctx, &a.user)
	if err != nil {
		a.log.Error(ctx, "clearing session failed", "error", err)
	}
	if !ok {
		a.message("⚠️ Vous n'êtes pas connecté(e).")
		return nil
	}
	a.message(fmt.Sprintf("👋 Au revoir %s !", name))
	return nil
}

// SwitchBackend moves to the other storage variant. User ids are local to a
// backend, so the current user is logged out first.
func (a *App) SwitchBackend(ctx context.Context) error {
	target := a.backend.Kind().Other()

	if _, err := a.accounts.Logout(ctx, &a.user); err != nil {
		a.log.Error(ctx, "clearing session failed", "error", err)
	}

	if err := a.useBackend(ctx, target); err != nil {
		return a.internalError(ctx, "switch backend", err)
	}

	a.message(fmt.Sprintf("🔁 Stockage : %s", backendLabel(target)))
	return nil
}
