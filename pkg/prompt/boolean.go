// pkg/prompt/boolean.go

package prompt

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Default yes/no tokens.
const (
	YesToken = "y"
	NoToken  = "n"
)

// BooleanOptions configures the Boolean helper.
type BooleanOptions struct {
	// Prompt is shown verbatim when non-empty. Otherwise a prompt is
	// built from the tokens, with the default's token in brackets:
	// "[y]/n? ".
	Prompt string

	// Yes and No are the accepted tokens; empty means "y" and "n".
	Yes string
	No  string

	// Default is returned on an empty line, before any token matching.
	Default *bool

	// CaseSensitive disables case folding of input and tokens.
	CaseSensitive bool

	// Exact disables prefix matching, requiring the full token. With
	// prefix matching on (the default), "y" and "ye" both select a
	// "yes" token.
	Exact bool
}

// Boolean prompts for a yes/no answer. Under prefix matching an input
// selects a token when either is a prefix of the other, so "no" answers
// a "n" token and "ye" answers a "yes" token. The yes token is checked
// first: an input that could select both tokens answers yes. Unmatched
// input re-prompts with identical parameters.
func (p *Prompter) Boolean(o BooleanOptions) (bool, error) {
	yes, no := o.Yes, o.No
	if yes == "" {
		yes = YesToken
	}
	if no == "" {
		no = NoToken
	}

	label := o.Prompt
	if label == "" {
		y, n := yes, no
		if o.Default != nil {
			if *o.Default {
				y = "[" + yes + "]"
			} else {
				n = "[" + no + "]"
			}
		}
		label = fmt.Sprintf("%s/%s? ", y, n)
	}

	norm := func(s string) string {
		if o.CaseSensitive {
			return s
		}
		return strings.ToLower(s)
	}

	log := p.logger()
	for {
		line, err := p.term.ReadLine(label)
		if err != nil {
			return false, err
		}

		if line == "" && o.Default != nil {
			return *o.Default, nil
		}

		if !o.Exact && line != "" {
			switch {
			case tokenMatch(norm(yes), norm(line)):
				return true, nil
			case tokenMatch(norm(no), norm(line)):
				return false, nil
			}
		} else {
			switch norm(line) {
			case norm(yes):
				return true, nil
			case norm(no):
				return false, nil
			}
		}

		log.Warn("Unrecognized yes/no answer, asking again",
			zap.String("prompt", label),
			zap.String("input", line))
	}
}

// tokenMatch reports whether input selects token under prefix matching:
// either side may be the prefix.
func tokenMatch(token, input string) bool {
	return strings.HasPrefix(token, input) || strings.HasPrefix(input, token)
}
