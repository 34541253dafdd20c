// pkg/prompt/prompt.go

// Package prompt implements small interactive command-line prompting
// helpers: each helper reads a line from the terminal, coerces it to a
// typed value, and keeps asking until the input is valid or an allowed
// empty/default answer is given.
//
// Helpers return a pointer: nil with a nil error is the "no answer"
// sentinel, reachable only when AllowEmpty is set, no default is given
// and the user just presses Enter.
//
// The package is synchronous and blocking, and is not safe for
// concurrent prompts from multiple goroutines: there is only one
// terminal.
package prompt

import (
	"io"
	"os"

	"github.com/CodeMonkeyCybersecurity/prompt/pkg/terminal"
	"go.uber.org/zap"
)

// Marker is the prompt shown when no prompt text and no default value
// are supplied.
const Marker = "? "

// Prompter owns the retry loop shared by every prompt kind. The zero
// value is not usable; construct with New.
type Prompter struct {
	term terminal.LineReader
	out  io.Writer
	log  *zap.Logger
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithLineReader swaps the line source, e.g. a terminal.Script in tests.
func WithLineReader(r terminal.LineReader) Option {
	return func(p *Prompter) { p.term = r }
}

// WithOutput redirects instruction/choice listings (stderr by default).
func WithOutput(w io.Writer) Option {
	return func(p *Prompter) { p.out = w }
}

// WithLogger overrides the process-global zap logger.
func WithLogger(l *zap.Logger) Option {
	return func(p *Prompter) { p.log = l }
}

// New returns a Prompter over the real terminal unless options say
// otherwise.
func New(opts ...Option) *Prompter {
	p := &Prompter{
		term: terminal.NewStdio(),
		out:  os.Stderr,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Prompter) logger() *zap.Logger {
	if p.log != nil {
		return p.log
	}
	return zap.L()
}

func (p *Prompter) read(label string, secret bool) (string, error) {
	if secret {
		return p.term.ReadSecret(label)
	}
	return p.term.ReadLine(label)
}

// Ptr is a convenience for filling Options.Default from a literal.
func Ptr[T any](v T) *T {
	return &v
}

var std = New()

// Package-level wrappers over a default Prompter on the real terminal.

func Character(o Options[string]) (*string, error) { return std.Character(o) }
func Email(o EmailOptions) (*string, error)        { return std.Email(o) }
func Integer(o Options[int]) (*int, error)         { return std.Integer(o) }
func Real(o Options[float64]) (*float64, error)    { return std.Real(o) }
func Secret(o Options[string]) (*string, error)    { return std.Secret(o) }
func String(o Options[string]) (*string, error)    { return std.String(o) }
func Boolean(o BooleanOptions) (bool, error)       { return std.Boolean(o) }

func Regex(pattern string, o RegexOptions) (*Match, error) {
	return std.Regex(pattern, o)
}

func Choice(choices []string, o ChoiceOptions) (*string, error) {
	return std.Choice(choices, o)
}
