// Package storagetest holds the behaviour checks every storage.Backend must
// pass. Both backends run the same suite so they stay observably equivalent.
package storagetest

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/tweetheure/internal/common"
	"github.com/dmitrijs2005/tweetheure/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunBackendSuite runs the shared checks. open must return a fresh, empty
// backend for each call.
func RunBackendSuite(t *testing.T, open func(t *testing.T) storage.Backend) {
	t.Helper()

	t.Run("users", func(t *testing.T) { testUsers(t, open(t)) })
	t.Run("duplicate email", func(t *testing.T) { testDuplicateEmail(t, open(t)) })
	t.Run("posts", func(t *testing.T) { testPosts(t, open(t)) })
	t.Run("post with missing author", func(t *testing.T) { testPostMissingAuthor(t, open(t)) })
	t.Run("comments", func(t *testing.T) { testComments(t, open(t)) })
	t.Run("comment on missing post", func(t *testing.T) { testCommentMissingPost(t, open(t)) })
	t.Run("empty listing", func(t *testing.T) { testEmpty(t, open(t)) })
}

func testUsers(t *testing.T, b storage.Backend) {
	ctx := context.Background()

	alice, err := b.CreateUser(ctx, "Alice", "alice@example.com", []byte("hash-a"))
	require.NoError(t, err)
	bob, err := b.CreateUser(ctx, "Bob", "bob@example.com", []byte("hash-b"))
	require.NoError(t, err)
	assert.Positive(t, alice.ID)
	assert.Greater(t, bob.ID, alice.ID)

	got, err := b.FindUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.ID)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, []byte("hash-a"), got.PasswordHash)

	got, err = b.FindUserByID(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", got.Email)

	_, err = b.FindUserByEmail(ctx, "ALICE@example.com")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = b.FindUserByID(ctx, bob.ID+100)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func testDuplicateEmail(t *testing.T, b storage.Backend) {
	ctx := context.Background()

	_, err := b.CreateUser(ctx, "Alice", "alice@example.com", []byte("h"))
	require.NoError(t, err)

	_, err = b.CreateUser(ctx, "Other", "alice@example.com", []byte("h2"))
	require.ErrorIs(t, err, common.ErrDuplicateEmail)

	got, err := b.FindUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
}

func testPosts(t *testing.T, b storage.Backend) {
	ctx := context.Background()

	alice, err := b.CreateUser(ctx, "Alice", "alice@example.com", []byte("h"))
	require.NoError(t, err)
	bob, err := b.CreateUser(ctx, "Bob", "bob@example.com", []byte("h"))
	require.NoError(t, err)

	p1, err := b.CreatePost(ctx, alice.ID, "Bonjour", "premier post")
	require.NoError(t, err)
	p2, err := b.CreatePost(ctx, bob.ID, "Salut", "")
	require.NoError(t, err)
	assert.Greater(t, p2.ID, p1.ID)

	posts, err := b.ListPostsWithAuthors(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)

	assert.Equal(t, p1.ID, posts[0].ID)
	assert.Equal(t, "Bonjour", posts[0].Title)
	assert.Equal(t, "premier post", posts[0].Content)
	assert.Equal(t, "Alice", posts[0].AuthorName)
	assert.Equal(t, alice.ID, posts[0].AuthorID)

	assert.Equal(t, p2.ID, posts[1].ID)
	assert.Equal(t, "", posts[1].Content)
	assert.Equal(t, "Bob", posts[1].AuthorName)

	ok, err := b.PostExists(ctx, p2.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = b.PostExists(ctx, p2.ID+100)
	require.NoError(t, err)
	assert.False(t, ok)
}

func testPostMissingAuthor(t *testing.T, b storage.Backend) {
	ctx := context.Background()

	_, err := b.CreatePost(ctx, 12345, "t", "c")
	require.ErrorIs(t, err, common.ErrorNotFound)

	posts, err := b.ListPostsWithAuthors(ctx)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func testComments(t *testing.T, b storage.Backend) {
	ctx := context.Background()

	alice, err := b.CreateUser(ctx, "Alice", "alice@example.com", []byte("h"))
	require.NoError(t, err)
	bob, err := b.CreateUser(ctx, "Bob", "bob@example.com", []byte("h"))
	require.NoError(t, err)

	p1, err := b.CreatePost(ctx, alice.ID, "one", "1")
	require.NoError(t, err)
	p2, err := b.CreatePost(ctx, alice.ID, "two", "2")
	require.NoError(t, err)

	c1, err := b.CreateComment(ctx, p1.ID, bob.ID, "first!")
	require.NoError(t, err)
	assert.Equal(t, p1.ID, c1.PostID)
	assert.Equal(t, bob.ID, c1.AuthorID)

	_, err = b.CreateComment(ctx, p1.ID, alice.ID, "merci")
	require.NoError(t, err)
	_, err = b.CreateComment(ctx, p2.ID, bob.ID, "other post")
	require.NoError(t, err)

	comments, err := b.ListCommentsForPost(ctx, p1.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "Bob", comments[0].AuthorName)
	assert.Equal(t, "first!", comments[0].Content)
	assert.Equal(t, "Alice", comments[1].AuthorName)
	assert.Equal(t, "merci", comments[1].Content)
	assert.Less(t, comments[0].ID, comments[1].ID)

	comments, err = b.ListCommentsForPost(ctx, p2.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)

	_, err = b.CreateComment(ctx, p1.ID, bob.ID+100, "ghost")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func testCommentMissingPost(t *testing.T, b storage.Backend) {
	ctx := context.Background()

	u, err := b.CreateUser(ctx, "Alice", "alice@example.com", []byte("h"))
	require.NoError(t, err)

	_, err = b.CreateComment(ctx, 99, u.ID, "nowhere")
	require.ErrorIs(t, err, common.ErrPostNotFound)

	comments, err := b.ListCommentsForPost(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func testEmpty(t *testing.T, b storage.Backend) {
	posts, err := b.ListPostsWithAuthors(context.Background())
	require.NoError(t, err)
	assert.Empty(t, posts)
}
