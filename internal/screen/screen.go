// Package screen is the terminal the menu talks to. Display is best effort:
// write errors are dropped so a broken terminal never aborts a data
// operation.
package screen

import (
	"errors"
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

// Screen is everything the shell needs from a terminal.
//
// Prompt returns "" when the user cancels with Escape or input ends.
// ReadKey returns the next key press, or an error once input is exhausted
// or the user interrupts with Ctrl-C (ErrInterrupted).
type Screen interface {
	Display(text string)
	Clear()
	Prompt(label string) string
	PromptSecret(label string) string
	ReadKey() (rune, error)
	Pause(message string, delay time.Duration)
}

// ErrInterrupted is returned by ReadKey for Ctrl-C.
var ErrInterrupted = errors.New("interrupted")

// sleepFn is a seam for tests.
var sleepFn = time.Sleep

// isTerminal is a seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// New returns a raw-mode Terminal when in is a terminal and a line based
// reader otherwise (pipes, redirected files).
func New(in *os.File, out io.Writer) Screen {
	if isTerminal(int(in.Fd())) {
		return NewTerminal(int(in.Fd()), in, out)
	}
	return NewLines(in, out)
}
