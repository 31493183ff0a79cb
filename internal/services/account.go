package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tweetheure/internal/common"
	"github.com/dmitrijs2005/tweetheure/internal/cryptox"
	"github.com/dmitrijs2005/tweetheure/internal/logging"
	"github.com/dmitrijs2005/tweetheure/internal/models"
	"github.com/dmitrijs2005/tweetheure/internal/session"
	"github.com/dmitrijs2005/tweetheure/internal/storage"
)

// AccountService manages accounts and the login state.
//
//   - Register validates the email and password length, hashes the password and creates the user.
//     It does not log the new user in.
//   - Login authenticates and persists a session record. Unknown email and
//     wrong password both yield common.ErrInvalidCredentials.
//   - Logout reports false when nobody was logged in.
//   - Restore re-resolves the user of a saved session record.
type AccountService interface {
	Register(ctx context.Context, name, email string, password []byte) (*models.User, error)
	Login(ctx context.Context, us *UserSession, email string, password []byte) (*models.User, error)
	Logout(ctx context.Context, us *UserSession) (bool, error)
	Restore(ctx context.Context, us *UserSession, rec *models.Session) (bool, error)
}

type accountService struct {
	users    storage.UserRepository
	kind     models.BackendKind
	hasher   cryptox.PasswordHasher
	sessions session.Store
	log      logging.Logger
}

// NewAccountService builds an AccountService over backend. Session records
// it writes name backend.Kind().
func NewAccountService(backend storage.Backend, hasher cryptox.PasswordHasher, sessions session.Store, log logging.Logger) AccountService {
	return &accountService{
		users:    backend,
		kind:     backend.Kind(),
		hasher:   hasher,
		sessions: sessions,
		log:      log.With("service", "account"),
	}
}

func (a *accountService) Register(ctx context.Context, name, email string, password []byte) (*models.User, error) {
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := a.users.CreateUser(ctx, name, email, hash)
	if err != nil {
		return nil, err
	}

	a.log.Info(ctx, "user registered", "user_id", user.ID, "backend", a.kind)
	return user, nil
}

func (a *accountService) Login(ctx context.Context, us *UserSession, email string, password []byte) (*models.User, error) {
	user, err := a.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			a.log.Info(ctx, "login failed", "reason", "unknown email")
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if !a.hasher.Verify(password, user.PasswordHash) {
		a.log.Info(ctx, "login failed", "reason", "bad password", "user_id", user.ID)
		return nil, common.ErrInvalidCredentials
	}

	us.set(user)

	if err := a.sessions.Save(ctx, user.ID, a.kind); err != nil {
		a.log.Error(ctx, "session save failed", "user_id", user.ID, "error", err)
	}

	a.log.Info(ctx, "user logged in", "user_id", user.ID, "backend", a.kind)
	return user, nil
}

func (a *accountService) Logout(ctx context.Context, us *UserSession) (bool, error) {
	if !us.Authenticated() {
		return false, nil
	}

	userID := us.UserID()
	us.reset()

	if err := a.sessions.Clear(ctx); err != nil {
		return true, err
	}

	a.log.Info(ctx, "user logged out", "user_id", userID)
	return true, nil
}

// Restore authenticates us from rec when rec belongs to this backend and its
// user still exists. A record naming a vanished user is cleared.
func (a *accountService) Restore(ctx context.Context, us *UserSession, rec *models.Session) (bool, error) {
	if rec == nil || rec.BackendKind != a.kind {
		return false, nil
	}

	user, err := a.users.FindUserByID(ctx, rec.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			a.log.Warn(ctx, "session user not found, clearing session", "user_id", rec.UserID)
			us.reset()
			return false, a.sessions.Clear(ctx)
		}
		return false, err
	}

	us.set(user)
	a.log.Info(ctx, "session restored", "user_id", user.ID, "session_id", rec.SessionID)
	return true, nil
}
