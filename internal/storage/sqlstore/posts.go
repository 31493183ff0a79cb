package sqlstore

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tweetheure/internal/common"
	"github.com/dmitrijs2005/tweetheure/internal/models"
)

func (s *Store) CreatePost(ctx context.Context, authorID int64, title, content string) (*models.Post, error) {
	query :=
		`INSERT INTO posts (user_id, title, content)
		 VALUES (?, ?, ?)
		 RETURNING id`

	post := &models.Post{AuthorID: authorID, Title: title, Content: content}
	err := s.db.QueryRowContext(ctx, s.q(query), authorID, title, content).Scan(&post.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("author %d: %w", authorID, common.ErrorNotFound)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return post, nil
}

func (s *Store) ListPostsWithAuthors(ctx context.Context) ([]models.PostWithAuthor, error) {
	query :=
		`SELECT posts.id, posts.user_id, posts.title, posts.content, users.name
		 FROM posts
		 JOIN users ON posts.user_id = users.id
		 ORDER BY posts.id`

	rows, err := s.db.QueryContext(ctx, s.q(query))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.PostWithAuthor, 0)
	for rows.Next() {
		var p models.PostWithAuthor
		if err := rows.Scan(&p.ID, &p.AuthorID, &p.Title, &p.Content, &p.AuthorName); err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate post rows: %w", err)
	}
	return result, nil
}

func (s *Store) PostExists(ctx context.Context, postID int64) (bool, error) {
	return postExists(ctx, s, s.db, postID)
}
