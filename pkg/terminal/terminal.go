// pkg/terminal/terminal.go

// Package terminal provides the line-reading capability that the prompt
// package depends on: echoed reads, no-echo reads for secrets, and a
// scripted fake for tests and automation.
//
// Prompts are written to stderr so stdout stays clean for automation.
package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	cerr "github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/term"
)

const (
	// MaxLineLength caps a single echoed input line.
	MaxLineLength = 4096

	// MaxSecretLength caps a no-echo input line.
	MaxSecretLength = 256
)

// ErrNotTerminal is returned when a no-echo read is requested but the
// input stream cannot suppress echo (stdin is not a TTY).
var ErrNotTerminal = cerr.New("no-echo input requires a terminal")

// LineReader reads one line of text from the user, showing a prompt first.
// Implementations block until a full line is available.
type LineReader interface {
	// ReadLine shows the prompt and returns one line with its line
	// terminator stripped. Interior and leading whitespace is preserved.
	ReadLine(prompt string) (string, error)

	// ReadSecret behaves like ReadLine but must not echo the typed
	// characters. It fails with ErrNotTerminal when echo cannot be
	// suppressed.
	ReadSecret(prompt string) (string, error)
}

var (
	controlChars = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F-\x9F]`)
	ansiEscapes  = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]|\x9b[0-9;]*[A-Za-z]`)
)

// Stdio is the real-terminal LineReader. Prompts go to out, input comes
// from in, and secrets are read straight from the terminal file descriptor.
type Stdio struct {
	in  *bufio.Reader
	out io.Writer
	fd  int
}

// NewStdio returns a Stdio wired to os.Stdin and os.Stderr.
func NewStdio() *Stdio {
	return &Stdio{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stderr,
		fd:  int(os.Stdin.Fd()),
	}
}

// New returns a Stdio over arbitrary streams. Secrets are unavailable
// (there is no terminal to stop echoing), so ReadSecret fails with
// ErrNotTerminal.
func New(in io.Reader, out io.Writer) *Stdio {
	return &Stdio{in: bufio.NewReader(in), out: out, fd: -1}
}

// ReadLine shows the prompt and reads one sanitized line.
func (s *Stdio) ReadLine(prompt string) (string, error) {
	zap.L().Debug("Prompting for input", zap.String("prompt", prompt))

	if _, err := fmt.Fprint(s.out, prompt); err != nil {
		return "", cerr.Wrap(err, "write prompt")
	}

	text, err := s.in.ReadString('\n')
	if err != nil && text == "" {
		return "", cerr.Wrap(err, "read input")
	}

	line := chomp(text)
	if len(line) > MaxLineLength {
		return "", cerr.Newf("input too long (%d bytes, max %d)", len(line), MaxLineLength)
	}
	return sanitizeLine(line), nil
}

// ReadSecret reads one line without echoing it back.
func (s *Stdio) ReadSecret(prompt string) (string, error) {
	if !term.IsTerminal(s.fd) {
		return "", cerr.WithHint(ErrNotTerminal, "run from an interactive terminal")
	}

	if _, err := fmt.Fprint(s.out, prompt); err != nil {
		return "", cerr.Wrap(err, "write prompt")
	}

	raw, err := term.ReadPassword(s.fd)
	fmt.Fprintln(s.out)
	if err != nil {
		return "", cerr.Wrap(err, "read secret")
	}
	if len(raw) > MaxSecretLength {
		return "", cerr.Newf("secret too long (%d bytes, max %d)", len(raw), MaxSecretLength)
	}
	return string(raw), nil
}

// chomp strips the trailing line terminator only. A line of spaces is a
// real answer, not an empty one.
func chomp(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

// sanitizeLine removes ANSI escape sequences, dangerous control characters
// and invalid UTF-8 before the line reaches any coercer.
func sanitizeLine(s string) string {
	s = ansiEscapes.ReplaceAllString(s, "")
	s = controlChars.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "\x00", "")

	if !utf8.ValidString(s) {
		var b strings.Builder
		for _, r := range s {
			if r != utf8.RuneError {
				b.WriteRune(r)
			}
		}
		s = b.String()
	}
	return s
}
