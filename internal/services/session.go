package services

import "github.com/dmitrijs2005/tweetheure/internal/models"

// UserSession is the in-memory login state: anonymous or one authenticated
// user. The zero value is anonymous.
type UserSession struct {
	userID int64
	name   string
}

func (s *UserSession) Authenticated() bool {
	return s != nil && s.userID > 0
}

func (s *UserSession) UserID() int64 {
	if s == nil {
		return 0
	}
	return s.userID
}

func (s *UserSession) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

func (s *UserSession) set(u *models.User) {
	s.userID = u.ID
	s.name = u.Name
}

func (s *UserSession) reset() {
	s.userID = 0
	s.name = ""
}
