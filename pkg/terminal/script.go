// pkg/terminal/script.go

package terminal

import (
	"io"

	cerr "github.com/cockroachdb/errors"
)

// Script is a LineReader that replays a fixed sequence of input lines and
// records every prompt it was shown. Tests and non-interactive automation
// inject it instead of monkeying with os.Stdin.
type Script struct {
	// Prompts collects every prompt passed to ReadLine/ReadSecret, in order.
	Prompts []string

	// SecretReads counts how many lines were consumed through ReadSecret.
	SecretReads int

	// DenySecrets simulates a terminal that cannot suppress echo:
	// ReadSecret fails with ErrNotTerminal without consuming a line.
	DenySecrets bool

	lines []string
	pos   int
}

// NewScript returns a Script that will answer with the given lines, one
// per read. Reads past the end fail with io.EOF.
func NewScript(lines ...string) *Script {
	return &Script{lines: lines}
}

func (s *Script) ReadLine(prompt string) (string, error) {
	s.Prompts = append(s.Prompts, prompt)
	if s.pos >= len(s.lines) {
		return "", cerr.Wrap(io.EOF, "script exhausted")
	}
	line := s.lines[s.pos]
	s.pos++
	return line, nil
}

func (s *Script) ReadSecret(prompt string) (string, error) {
	if s.DenySecrets {
		return "", ErrNotTerminal
	}
	s.SecretReads++
	return s.ReadLine(prompt)
}

// Remaining reports how many scripted lines are still unread.
func (s *Script) Remaining() int {
	return len(s.lines) - s.pos
}
