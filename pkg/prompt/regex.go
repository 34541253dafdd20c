// pkg/prompt/regex.go

package prompt

import (
	"regexp"

	cerr "github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Match is the result of a successful Regex prompt.
type Match struct {
	// Text is the matched portion of the input line.
	Text string

	// Groups holds the capture groups, first group at index 0. A group
	// that did not participate in the match is the empty string.
	Groups []string

	// Start and End are the byte offsets of the match within the line.
	Start, End int
}

// RegexOptions configures the Regex helper.
type RegexOptions struct {
	Prompt     string
	AllowEmpty bool

	// Default is substituted as the input line when the user answers
	// with an empty line, and is then matched against the pattern like
	// any typed input. A default that does not match the pattern
	// re-prompts forever, so make sure it matches.
	Default *string
}

// Regex prompts for a string matching pattern. The pattern is anchored
// at the start of the line, like a match-from-the-beginning check; use
// `$` to also anchor the end and inline flags such as `(?i)` for case
// folding.
//
// Unlike every other kind, a default here is not trusted: it is run
// through the pattern as if the user typed it. That asymmetry is kept
// on purpose.
func (p *Prompter) Regex(pattern string, o RegexOptions) (*Match, error) {
	re, err := regexp.Compile(`\A(?:` + pattern + `)`)
	if err != nil {
		return nil, cerr.Wrapf(err, "invalid pattern %q", pattern)
	}

	label := makePrompt(o.Prompt, o.Default)
	log := p.logger()

	for {
		line, err := p.term.ReadLine(label)
		if err != nil {
			return nil, err
		}

		if line == "" {
			switch {
			case o.Default != nil:
				line = *o.Default
			case o.AllowEmpty:
				return nil, nil
			default:
				log.Debug("Empty input not allowed, asking again", zap.String("prompt", label))
				continue
			}
		}

		idx := re.FindStringSubmatchIndex(line)
		if idx == nil {
			log.Warn("Input does not match pattern, asking again",
				zap.String("prompt", label),
				zap.String("pattern", pattern))
			continue
		}

		sub := re.FindStringSubmatch(line)
		return &Match{
			Text:   line[idx[0]:idx[1]],
			Groups: sub[1:],
			Start:  idx[0],
			End:    idx[1],
		}, nil
	}
}
