package sqlstore

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tweetheure/internal/common"
	"github.com/dmitrijs2005/tweetheure/internal/dbx"
	"github.com/dmitrijs2005/tweetheure/internal/models"
)

// CreateComment checks the post and inserts the comment in one transaction.
func (s *Store) CreateComment(ctx context.Context, postID, authorID int64, content string) (*models.Comment, error) {
	query :=
		`INSERT INTO comments (post_id, user_id, content)
		 VALUES (?, ?, ?)
		 RETURNING id`

	comment := &models.Comment{PostID: postID, AuthorID: authorID, Content: content}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		ok, err := postExists(ctx, s, tx, postID)
		if err != nil {
			return err
		}
		if !ok {
			return common.ErrPostNotFound
		}

		err = tx.QueryRowContext(ctx, s.q(query), postID, authorID, content).Scan(&comment.ID)
		if err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("author %d: %w", authorID, common.ErrorNotFound)
			}
			return fmt.Errorf("db error: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *Store) ListCommentsForPost(ctx context.Context, postID int64) ([]models.CommentWithAuthor, error) {
	query :=
		`SELECT comments.id, users.name, comments.content
		 FROM comments
		 JOIN users ON comments.user_id = users.id
		 WHERE comments.post_id = ?
		 ORDER BY comments.id`

	rows, err := s.db.QueryContext(ctx, s.q(query), postID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.CommentWithAuthor, 0)
	for rows.Next() {
		var c models.CommentWithAuthor
		if err := rows.Scan(&c.ID, &c.AuthorName, &c.Content); err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comment rows: %w", err)
	}
	return result, nil
}

func postExists(ctx context.Context, s *Store, db dbx.DBTX, postID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM posts WHERE id = ?)`

	var exists bool
	if err := db.QueryRowContext(ctx, s.q(query), postID).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}
