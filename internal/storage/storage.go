// Package storage defines the persistence contract that both TweetHeure
// backends satisfy: a relational one (sqlstore) and a JSON document one
// (jsonstore). Services depend only on Backend and never on a variant.
//
// Error contract (match with errors.Is):
//   - common.ErrDuplicateEmail from CreateUser when the email is taken
//   - common.ErrorNotFound from FindUser* and when a referenced author is missing
//   - common.ErrPostNotFound from CreateComment when the post is missing
package storage

import (
	"context"

	"github.com/dmitrijs2005/tweetheure/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, name, email string, passwordHash []byte) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, id int64) (*models.User, error)
}

type PostRepository interface {
	CreatePost(ctx context.Context, authorID int64, title, content string) (*models.Post, error)
	// ListPostsWithAuthors returns every post whose author resolves, oldest
	// first. Each call reads fresh state.
	ListPostsWithAuthors(ctx context.Context) ([]models.PostWithAuthor, error)
	PostExists(ctx context.Context, postID int64) (bool, error)
}

type CommentRepository interface {
	CreateComment(ctx context.Context, postID, authorID int64, content string) (*models.Comment, error)
	ListCommentsForPost(ctx context.Context, postID int64) ([]models.CommentWithAuthor, error)
}

// Backend is one opened storage variant.
type Backend interface {
	UserRepository
	PostRepository
	CommentRepository

	Kind() models.BackendKind
	Close() error
}
