package services

import (
	"context"
	"math/rand"

	"github.com/dmitrijs2005/tweetheure/internal/common"
	"github.com/dmitrijs2005/tweetheure/internal/logging"
	"github.com/dmitrijs2005/tweetheure/internal/models"
	"github.com/dmitrijs2005/tweetheure/internal/storage"
)

// ContentService publishes and lists posts and comments. Writing requires an
// authenticated UserSession; reading does not.
type ContentService interface {
	AddPost(ctx context.Context, us *UserSession, title, content string) (*models.Post, error)
	ListPosts(ctx context.Context) ([]models.PostView, error)
	PostExists(ctx context.Context, postID int64) (bool, error)
	AddComment(ctx context.Context, us *UserSession, postID int64, content string) (*models.Comment, error)
	RandomPost(ctx context.Context) (*models.PostView, error)
}

type contentService struct {
	backend storage.Backend
	log     logging.Logger
}

func NewContentService(backend storage.Backend, log logging.Logger) ContentService {
	return &contentService{backend: backend, log: log.With("service", "content")}
}

// randIntN is a seam for tests.
var randIntN = rand.Intn

func (c *contentService) AddPost(ctx context.Context, us *UserSession, title, content string) (*models.Post, error) {
	if !us.Authenticated() {
		return nil, common.ErrNotAuthenticated
	}

	post, err := c.backend.CreatePost(ctx, us.UserID(), title, content)
	if err != nil {
		return nil, err
	}

	c.log.Info(ctx, "post created", "post_id", post.ID, "user_id", us.UserID())
	return post, nil
}

// ListPosts returns every post with its comments, oldest first, or
// common.ErrNoPosts when there are none.
func (c *contentService) ListPosts(ctx context.Context) ([]models.PostView, error) {
	posts, err := c.backend.ListPostsWithAuthors(ctx)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, common.ErrNoPosts
	}

	views := make([]models.PostView, 0, len(posts))
	for _, p := range posts {
		v, err := c.view(ctx, p)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (c *contentService) PostExists(ctx context.Context, postID int64) (bool, error) {
	return c.backend.PostExists(ctx, postID)
}

func (c *contentService) AddComment(ctx context.Context, us *UserSession, postID int64, content string) (*models.Comment, error) {
	if !us.Authenticated() {
		return nil, common.ErrNotAuthenticated
	}

	comment, err := c.backend.CreateComment(ctx, postID, us.UserID(), content)
	if err != nil {
		return nil, err
	}

	c.log.Info(ctx, "comment created", "comment_id", comment.ID, "post_id", postID, "user_id", us.UserID())
	return comment, nil
}

// RandomPost picks one post uniformly, or returns common.ErrNoPosts.
func (c *contentService) RandomPost(ctx context.Context) (*models.PostView, error) {
	posts, err := c.backend.ListPostsWithAuthors(ctx)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, common.ErrNoPosts
	}

	v, err := c.view(ctx, posts[randIntN(len(posts))])
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *contentService) view(ctx context.Context, p models.PostWithAuthor) (models.PostView, error) {
	comments, err := c.backend.ListCommentsForPost(ctx, p.ID)
	if err != nil {
		return models.PostView{}, err
	}
	return models.PostView{PostWithAuthor: p, Comments: comments}, nil
}
