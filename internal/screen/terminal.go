package screen

import (
	"bufio"
	"io"
	"time"
	"unicode"

	"golang.org/x/term"
)

const (
	keyCtrlC     = 3
	keyBackspace = 8
	keyEscape    = 27
	keyDelete    = 127
)

// seams for the raw mode switch
var (
	makeRaw = term.MakeRaw
	restore = term.Restore
)

// Terminal edits input key by key with the terminal in raw mode. Raw mode is
// only held while reading, so ordinary output keeps its line discipline.
type Terminal struct {
	fd  int
	in  *bufio.Reader
	out io.Writer
}

func NewTerminal(fd int, in io.Reader, out io.Writer) *Terminal {
	return &Terminal{fd: fd, in: bufio.NewReader(in), out: out}
}

func (t *Terminal) Display(text string) {
	_, _ = io.WriteString(t.out, text)
}

func (t *Terminal) Clear() {
	_, _ = io.WriteString(t.out, "\x1b[2J\x1b[H")
}

func (t *Terminal) Pause(message string, delay time.Duration) {
	t.Clear()
	t.Display(message + "\n")
	sleepFn(delay)
}

func (t *Terminal) Prompt(label string) string {
	return t.readLine(label, false)
}

func (t *Terminal) PromptSecret(label string) string {
	return t.readLine(label, true)
}

func (t *Terminal) ReadKey() (rune, error) {
	state, err := makeRaw(t.fd)
	if err == nil {
		defer func() { _ = restore(t.fd, state) }()
	}

	r, _, err := t.in.ReadRune()
	if err != nil {
		return 0, err
	}
	switch r {
	case keyCtrlC:
		return 0, ErrInterrupted
	case keyEscape:
		t.skipEscapeSequence()
	}
	return r, nil
}

// readLine collects printable runes until Enter. Escape or Ctrl-C cancel
// and return "". Backspace removes the last rune.
func (t *Terminal) readLine(label string, secret bool) string {
	t.Display(label)

	state, err := makeRaw(t.fd)
	if err == nil {
		defer func() { _ = restore(t.fd, state) }()
	}

	var buf []rune
	for {
		r, _, err := t.in.ReadRune()
		if err != nil {
			t.Display("\r\n")
			if len(buf) > 0 && err == io.EOF {
				return string(buf)
			}
			return ""
		}

		switch {
		case r == '\r' || r == '\n':
			t.Display("\r\n")
			return string(buf)

		case r == keyEscape:
			if t.skipEscapeSequence() {
				continue
			}
			t.Display("\r\n")
			return ""

		case r == keyCtrlC:
			t.Display("\r\n")
			return ""

		case r == keyDelete || r == keyBackspace:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
				t.Display("\b \b")
			}

		case unicode.IsPrint(r):
			buf = append(buf, r)
			if secret {
				t.Display("*")
			} else {
				t.Display(string(r))
			}
		}
	}
}

// skipEscapeSequence consumes a CSI/SS3 sequence (arrow keys and friends)
// that follows an Escape already read. It reports whether one was found.
func (t *Terminal) skipEscapeSequence() bool {
	if t.in.Buffered() == 0 {
		return false
	}
	next, err := t.in.Peek(1)
	if err != nil || (next[0] != '[' && next[0] != 'O') {
		return false
	}
	_, _ = t.in.ReadByte()
	for t.in.Buffered() > 0 {
		b, err := t.in.ReadByte()
		if err != nil || (b >= 0x40 && b <= 0x7e) {
			break
		}
	}
	return true
}
