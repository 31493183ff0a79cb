// Package models holds the TweetHeure domain records shared by the storage
// backends, the services and the shell.
package models

// User is a registered account. PasswordHash is the opaque hasher output,
// never the raw password.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash []byte
}
