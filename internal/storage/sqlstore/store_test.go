package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/tweetheure/internal/common"
	"github.com/dmitrijs2005/tweetheure/internal/dbx"
	"github.com/dmitrijs2005/tweetheure/internal/models"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSQLite(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tweetheure.db")
	s, err := Open(context.Background(), Options{Dialect: dbx.DialectSQLite, Path: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpen_CreatesSchema(t *testing.T) {
	s := openSQLite(t)

	for _, table := range []string{"users", "posts", "comments"} {
		var name string
		err := s.db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}
	assert.Equal(t, models.BackendSQL, s.Kind())
}

func TestOpen_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "tweetheure.db")

	s, err := Open(ctx, Options{Dialect: dbx.DialectSQLite, Path: path})
	require.NoError(t, err)
	u, err := s.CreateUser(ctx, "alice", "a@x.io", []byte("h"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(ctx, Options{Dialect: dbx.DialectSQLite, Path: path})
	require.NoError(t, err)
	defer s.Close()

	got, err := s.FindUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Name)
}

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"tweetheure.db", "file:tweetheure.db?"},
		{"/var/lib/app/tweetheure.db", "file:/var/lib/app/tweetheure.db?"},
		{"/tmp/a?b#c%d.db", "file:/tmp/a%3Fb%23c%25d.db?"},
	}
	for _, tt := range tests {
		got := sqliteDSN(tt.path)
		assert.Equal(t, tt.want+"_pragma=foreign_keys%281%29&_pragma=busy_timeout%285000%29", got, tt.path)
	}
}

func TestOpen_PathWithURISpecialCharacters(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "odd?name#1%.db")

	s, err := Open(ctx, Options{Dialect: dbx.DialectSQLite, Path: path})
	require.NoError(t, err)
	defer s.Close()

	var fk int
	require.NoError(t, s.db.QueryRowContext(ctx, `PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk)

	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestOpen_UnsupportedDialect(t *testing.T) {
	_, err := Open(context.Background(), Options{Dialect: "oracle"})
	require.Error(t, err)
}

func TestRunMigrations_Error(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	old := gooseUpContext
	defer func() { gooseUpContext = old }()

	var gotDir string
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		gotDir = dir
		return errors.New("boom")
	}

	err = New(db, dbx.DialectPostgres).RunMigrations(context.Background())
	require.EqualError(t, err, "boom")
	assert.Equal(t, "postgres", gotDir)
}

func TestSQLite_UserLifecycle(t *testing.T) {
	s := openSQLite(t)
	ctx := context.Background()

	u, err := s.CreateUser(ctx, "alice", "alice@example.com", []byte("$2a$10$hash"))
	require.NoError(t, err)
	assert.Positive(t, u.ID)

	byEmail, err := s.FindUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)
	assert.Equal(t, []byte("$2a$10$hash"), byEmail.PasswordHash)

	_, err = s.CreateUser(ctx, "alice2", "alice@example.com", []byte("x"))
	assert.ErrorIs(t, err, common.ErrDuplicateEmail)

	_, err = s.FindUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = s.FindUserByID(ctx, 999)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSQLite_PostsAndComments(t *testing.T) {
	s := openSQLite(t)
	ctx := context.Background()

	alice, err := s.CreateUser(ctx, "alice", "alice@example.com", []byte("h"))
	require.NoError(t, err)
	bob, err := s.CreateUser(ctx, "bob", "bob@example.com", []byte("h"))
	require.NoError(t, err)

	p1, err := s.CreatePost(ctx, alice.ID, "Hello", "first")
	require.NoError(t, err)
	p2, err := s.CreatePost(ctx, bob.ID, "Again", "second")
	require.NoError(t, err)

	_, err = s.CreatePost(ctx, 42, "ghost", "nobody")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	posts, err := s.ListPostsWithAuthors(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, p1.ID, posts[0].ID)
	assert.Equal(t, "alice", posts[0].AuthorName)
	assert.Equal(t, p2.ID, posts[1].ID)
	assert.Equal(t, "bob", posts[1].AuthorName)

	ok, err := s.PostExists(ctx, p1.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = s.PostExists(ctx, 999)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = s.CreateComment(ctx, p1.ID, bob.ID, "nice")
	require.NoError(t, err)
	_, err = s.CreateComment(ctx, p1.ID, alice.ID, "thanks")
	require.NoError(t, err)

	_, err = s.CreateComment(ctx, 999, bob.ID, "lost")
	assert.ErrorIs(t, err, common.ErrPostNotFound)

	_, err = s.CreateComment(ctx, p1.ID, 777, "who")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	comments, err := s.ListCommentsForPost(ctx, p1.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "bob", comments[0].AuthorName)
	assert.Equal(t, "nice", comments[0].Content)
	assert.Equal(t, "alice", comments[1].AuthorName)

	comments, err = s.ListCommentsForPost(ctx, p2.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestSQLite_EmptyListing(t *testing.T) {
	s := openSQLite(t)

	posts, err := s.ListPostsWithAuthors(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}
