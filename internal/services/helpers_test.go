package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/tweetheure/internal/cryptox"
	"github.com/dmitrijs2005/tweetheure/internal/dbx"
	"github.com/dmitrijs2005/tweetheure/internal/logging"
	"github.com/dmitrijs2005/tweetheure/internal/models"
	"github.com/dmitrijs2005/tweetheure/internal/storage"
	"github.com/dmitrijs2005/tweetheure/internal/storage/jsonstore"
	"github.com/dmitrijs2005/tweetheure/internal/storage/sqlstore"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fakeSessions is an in-memory session.Store.
type fakeSessions struct {
	rec      *models.Session
	saveErr  error
	clearErr error

	saves  int
	clears int
}

func (f *fakeSessions) Save(_ context.Context, userID int64, kind models.BackendKind) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.rec = &models.Session{SessionID: "s", UserID: userID, BackendKind: kind}
	return nil
}

func (f *fakeSessions) Load(_ context.Context) (*models.Session, bool) {
	return f.rec, f.rec != nil
}

func (f *fakeSessions) Clear(_ context.Context) error {
	f.clears++
	if f.clearErr != nil {
		return f.clearErr
	}
	f.rec = nil
	return nil
}

var errBoom = errors.New("boom")

func newHasher(t *testing.T) cryptox.PasswordHasher {
	t.Helper()
	h, err := cryptox.NewPasswordHasher(cryptox.AlgorithmBcrypt, bcrypt.MinCost)
	require.NoError(t, err)
	return h
}

func openBackends(t *testing.T) map[string]storage.Backend {
	t.Helper()
	dir := t.TempDir()
	ctx := context.Background()

	js, err := jsonstore.Open(ctx, jsonstore.Options{Path: filepath.Join(dir, "data.json")})
	require.NoError(t, err)

	ss, err := sqlstore.Open(ctx, sqlstore.Options{Dialect: dbx.DialectSQLite, Path: filepath.Join(dir, "t.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = ss.Close() })

	return map[string]storage.Backend{"json": js, "sql": ss}
}

func newServices(t *testing.T, b storage.Backend) (AccountService, ContentService, *fakeSessions) {
	t.Helper()
	sessions := &fakeSessions{}
	return NewAccountService(b, newHasher(t), sessions, logging.Nop()),
		NewContentService(b, logging.Nop()),
		sessions
}
