// Package lineedit reads answer lines from the user with tab completion.
package lineedit

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

// ErrInterrupted is returned when the user cancels a prompt (Ctrl+C).
var ErrInterrupted = errors.New("interrupted")

// DefaultDelimiters only splits on newlines, so whole answers such as
// "Cape May" complete as a single token.
const DefaultDelimiters = "\n"

// DefaultListLimit caps how many alternatives a listing shows.
const DefaultListLimit = 40

// Completer is the query interface the editor calls on every Tab press.
type Completer interface {
	Complete(text string, index int) (string, bool)
	Matches(text string) []string
}

// Reader prompts for and returns one line of input.
type Reader interface {
	ReadLine(ctx context.Context, prompt string) (string, error)
}

// Config holds line editor settings.
type Config struct {
	// Delimiters are the characters that separate the completion token from
	// the rest of the buffer.
	Delimiters string
	// ListLimit caps the alternatives listed on a repeated Tab. Zero means DefaultListLimit.
	ListLimit int
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{Delimiters: DefaultDelimiters, ListLimit: DefaultListLimit}
}

func (c Config) listLimit() int {
	if c.ListLimit <= 0 {
		return DefaultListLimit
	}
	return c.ListLimit
}

// SplitToken splits buffer after its last delimiter. With no delimiter
// present the whole buffer is the token.
func SplitToken(buffer, delimiters string) (head, token string) {
	if delimiters == "" {
		return "", buffer
	}
	i := strings.LastIndexAny(buffer, delimiters)
	if i < 0 {
		return "", buffer
	}
	_, size := utf8.DecodeRuneInString(buffer[i:])
	return buffer[:i+size], buffer[i+size:]
}

// New returns an interactive editor when in is a terminal and a plain line
// reader otherwise.
func New(in io.Reader, out io.Writer, completer Completer, cfg Config) Reader {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return NewEditor(in, out, completer, cfg)
	}
	return NewPlain(in, out)
}

// TerminalWidth returns the column count of out, or 0 when out is not a terminal.
func TerminalWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
