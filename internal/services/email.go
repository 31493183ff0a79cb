package services

import (
	"regexp"

	"github.com/dmitrijs2005/tweetheure/internal/common"
)

// Only ASCII letters are accepted, so addresses with accented characters
// are rejected.
var emailRe = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9.-]+$`)

// ValidateEmail returns common.ErrInvalidEmail unless email looks like
// local@domain.tld.
func ValidateEmail(email string) error {
	if !emailRe.MatchString(email) {
		return common.ErrInvalidEmail
	}
	return nil
}

// MaxPasswordLen is the longest password accepted, in bytes. It is the bcrypt
// input limit and applies whatever hasher is configured.
const MaxPasswordLen = 72

// ValidatePassword returns common.ErrPasswordTooLong for passwords longer
// than MaxPasswordLen bytes.
func ValidatePassword(password []byte) error {
	if len(password) > MaxPasswordLen {
		return common.ErrPasswordTooLong
	}
	return nil
}
