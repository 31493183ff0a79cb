package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tweetheure/internal/common"
	"github.com/dmitrijs2005/tweetheure/internal/models"
)

func (s *Store) CreateUser(ctx context.Context, name, email string, passwordHash []byte) (*models.User, error) {
	query :=
		`INSERT INTO users (name, email, password)
		 VALUES (?, ?, ?)
		 RETURNING id`

	user := &models.User{Name: name, Email: email, PasswordHash: passwordHash}
	err := s.db.QueryRowContext(ctx, s.q(query), name, email, string(passwordHash)).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query :=
		`SELECT id, name, email, password FROM users
		 WHERE email = ?`

	return s.scanUser(s.db.QueryRowContext(ctx, s.q(query), email))
}

func (s *Store) FindUserByID(ctx context.Context, id int64) (*models.User, error) {
	query :=
		`SELECT id, name, email, password FROM users
		 WHERE id = ?`

	return s.scanUser(s.db.QueryRowContext(ctx, s.q(query), id))
}

func (s *Store) scanUser(row *sql.Row) (*models.User, error) {
	var (
		user models.User
		hash string
	)
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &hash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	user.PasswordHash = []byte(hash)
	return &user, nil
}
