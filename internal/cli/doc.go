// Package cli is the interactive TweetHeure shell: a single-key menu over
// the account and content services, drawn on a screen.Screen.
//
// User-facing messages go to the screen; operational events and errors go
// to the logger.
package cli
