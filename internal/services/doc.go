// Package services holds the TweetHeure application logic: the account
// service (register, login, logout, session restore) and the content service
// (posts and comments). Services are built over a storage.Backend and never
// know which variant they talk to.
//
// The login state lives in an explicit *UserSession owned by the caller,
// so nothing here is global.
package services
