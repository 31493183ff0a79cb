package screen

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"time"
)

// Lines reads whole lines. It serves non-interactive input where raw mode
// is unavailable. A line consisting of a lone Escape cancels a prompt.
type Lines struct {
	in  *bufio.Reader
	out io.Writer
}

func NewLines(in io.Reader, out io.Writer) *Lines {
	return &Lines{in: bufio.NewReader(in), out: out}
}

func (l *Lines) Display(text string) {
	_, _ = io.WriteString(l.out, text)
}

func (l *Lines) Clear() {
	l.Display("\n")
}

func (l *Lines) Pause(message string, delay time.Duration) {
	l.Display(message + "\n")
	sleepFn(delay)
}

func (l *Lines) Prompt(label string) string {
	l.Display(label)
	line, err := l.readLine()
	if err != nil && line == "" {
		return ""
	}
	if line == "\x1b" {
		return ""
	}
	return line
}

func (l *Lines) PromptSecret(label string) string {
	return l.Prompt(label)
}

// ReadKey returns the first rune of the next non-blank line.
func (l *Lines) ReadKey() (rune, error) {
	for {
		line, err := l.readLine()
		if s := strings.TrimSpace(line); s != "" {
			return []rune(s)[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}

func (l *Lines) readLine() (string, error) {
	line, err := l.in.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return line, err
	}
	return line, nil
}
