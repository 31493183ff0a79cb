// Package common defines the error taxonomy shared by the storage, session and
// service layers of TweetHeure. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound     = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrPostNotFound   = errors.New("post not found")

	// Validation errors.
	ErrInvalidEmail    = errors.New("invalid email")
	ErrPasswordTooLong = errors.New("password too long")

	// Account/session errors.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")

	// ErrNoPosts is informational: the post collection is empty.
	ErrNoPosts = errors.New("no posts")

	// Corruption errors are never shown to the user; the affected record is
	// treated as absent and the program carries on with an empty state.
	ErrCorruptSession = errors.New("corrupt session record")
	ErrCorruptStore   = errors.New("corrupt data store")
)
