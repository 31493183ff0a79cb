package jsonstore

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tweetheure/internal/common"
	"github.com/dmitrijs2005/tweetheure/internal/models"
)

func (s *Store) CreateComment(ctx context.Context, postID, authorID int64, content string) (*models.Comment, error) {
	var comment *models.Comment

	err := s.update(ctx, func(doc *document) error {
		if _, ok := doc.postByID(postID); !ok {
			return common.ErrPostNotFound
		}
		if _, ok := doc.userByID(authorID); !ok {
			return fmt.Errorf("author %d: %w", authorID, common.ErrorNotFound)
		}

		c := commentDoc{ID: nextCommentID(doc), PostID: postID, UserID: authorID, Content: content}
		doc.Comments = append(doc.Comments, c)
		comment = &models.Comment{ID: c.ID, PostID: c.PostID, AuthorID: c.UserID, Content: c.Content}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *Store) ListCommentsForPost(ctx context.Context, postID int64) ([]models.CommentWithAuthor, error) {
	result := make([]models.CommentWithAuthor, 0)

	err := s.view(ctx, func(doc *document) error {
		for _, c := range doc.Comments {
			if c.PostID != postID {
				continue
			}
			author, ok := doc.userByID(c.UserID)
			if !ok {
				continue
			}
			result = append(result, models.CommentWithAuthor{ID: c.ID, AuthorName: author.Name, Content: c.Content})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
