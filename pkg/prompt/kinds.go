// pkg/prompt/kinds.go

package prompt

import (
	"regexp"
	"strconv"
	"unicode/utf8"

	cerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

// Character prompts for exactly one character. Multi-character input
// re-prompts.
func (p *Prompter) Character(o Options[string]) (*string, error) {
	return ask(p, o, false, nil, func(s string) (string, error) {
		if utf8.RuneCountInString(s) != 1 {
			return "", cerr.Newf("expected a single character, got %d", utf8.RuneCountInString(s))
		}
		return s, nil
	})
}

// Integer prompts for a base-10 integer.
func (p *Prompter) Integer(o Options[int]) (*int, error) {
	return ask(p, o, false, nil, func(s string) (int, error) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, cerr.Wrap(err, "not an integer")
		}
		return n, nil
	})
}

// Real prompts for a floating point number.
func (p *Prompter) Real(o Options[float64]) (*float64, error) {
	return ask(p, o, false, nil, func(s string) (float64, error) {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, cerr.Wrap(err, "not a number")
		}
		return f, nil
	})
}

// String prompts for any non-empty string.
func (p *Prompter) String(o Options[string]) (*string, error) {
	return ask(p, o, false, nil, func(s string) (string, error) {
		return s, nil
	})
}

// Secret prompts for any non-empty string without echoing the input.
// Fails with terminal.ErrNotTerminal when echo cannot be suppressed;
// that error is propagated, never retried.
func (p *Prompter) Secret(o Options[string]) (*string, error) {
	return ask(p, o, true, nil, func(s string) (string, error) {
		return s, nil
	})
}

// Email validation modes.
const (
	// EmailSimple checks the input against a permissive shape:
	// something@something.something, no '@' in the parts.
	EmailSimple = "simple"

	// EmailStrict delegates to go-playground/validator's email rule.
	EmailStrict = "strict"
)

// EmailOptions configures the Email helper.
type EmailOptions struct {
	Options[string]

	// Mode selects the validation mode; empty means EmailSimple. Any
	// other value fails with ErrUnsupportedMode before any I/O.
	Mode string
}

var (
	emailSimpleRE  = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)
	emailValidator = validator.New()
)

// Email prompts for an email address. The check is shape-only; it does
// not verify the address exists.
func (p *Prompter) Email(o EmailOptions) (*string, error) {
	var check func(string) error

	switch o.Mode {
	case "", EmailSimple:
		check = func(s string) error {
			if !emailSimpleRE.MatchString(s) {
				return cerr.New("not an email address")
			}
			return nil
		}
	case EmailStrict:
		check = func(s string) error {
			return emailValidator.Var(s, "email")
		}
	default:
		return nil, cerr.Wrapf(ErrUnsupportedMode, "mode %q", o.Mode)
	}

	return ask(p, o.Options, false, nil, func(s string) (string, error) {
		if err := check(s); err != nil {
			return "", err
		}
		return s, nil
	})
}
