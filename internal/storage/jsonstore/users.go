package jsonstore

import (
	"context"

	"github.com/dmitrijs2005/tweetheure/internal/common"
	"github.com/dmitrijs2005/tweetheure/internal/models"
)

func (s *Store) CreateUser(ctx context.Context, name, email string, passwordHash []byte) (*models.User, error) {
	var user *models.User

	err := s.update(ctx, func(doc *document) error {
		for _, u := range doc.Users {
			if u.Email == email {
				return common.ErrDuplicateEmail
			}
		}

		u := userDoc{ID: nextUserID(doc), Name: name, Email: email, Password: string(passwordHash)}
		doc.Users = append(doc.Users, u)
		user = toUser(u)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user *models.User

	err := s.view(ctx, func(doc *document) error {
		for _, u := range doc.Users {
			if u.Email == email {
				user = toUser(u)
				return nil
			}
		}
		return common.ErrorNotFound
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Store) FindUserByID(ctx context.Context, id int64) (*models.User, error) {
	var user *models.User

	err := s.view(ctx, func(doc *document) error {
		u, ok := doc.userByID(id)
		if !ok {
			return common.ErrorNotFound
		}
		user = toUser(u)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func toUser(u userDoc) *models.User {
	return &models.User{ID: u.ID, Name: u.Name, Email: u.Email, PasswordHash: []byte(u.Password)}
}
