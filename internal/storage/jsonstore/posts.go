package jsonstore

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tweetheure/internal/common"
	"github.com/dmitrijs2005/tweetheure/internal/models"
)

func (s *Store) CreatePost(ctx context.Context, authorID int64, title, content string) (*models.Post, error) {
	var post *models.Post

	err := s.update(ctx, func(doc *document) error {
		if _, ok := doc.userByID(authorID); !ok {
			return fmt.Errorf("author %d: %w", authorID, common.ErrorNotFound)
		}

		p := postDoc{ID: nextPostID(doc), UserID: authorID, Title: title, Content: content}
		doc.Posts = append(doc.Posts, p)
		post = &models.Post{ID: p.ID, AuthorID: p.UserID, Title: p.Title, Content: p.Content}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

// ListPostsWithAuthors returns posts in file order. Posts whose author is
// missing are skipped, matching the relational join.
func (s *Store) ListPostsWithAuthors(ctx context.Context) ([]models.PostWithAuthor, error) {
	result := make([]models.PostWithAuthor, 0)

	err := s.view(ctx, func(doc *document) error {
		for _, p := range doc.Posts {
			author, ok := doc.userByID(p.UserID)
			if !ok {
				s.log.Warn(ctx, "post author missing", "post_id", p.ID, "user_id", p.UserID)
				continue
			}
			result = append(result, models.PostWithAuthor{
				Post:       models.Post{ID: p.ID, AuthorID: p.UserID, Title: p.Title, Content: p.Content},
				AuthorName: author.Name,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Store) PostExists(ctx context.Context, postID int64) (bool, error) {
	var exists bool
	err := s.view(ctx, func(doc *document) error {
		_, exists = doc.postByID(postID)
		return nil
	})
	return exists, err
}
