// pkg/prompt/ask.go

package prompt

import (
	"fmt"

	"go.uber.org/zap"
)

// Options carries the parameters shared by every prompt kind.
type Options[T any] struct {
	// Prompt is shown verbatim when non-empty. Otherwise the prompt is
	// synthesized: "[<default>]? " when Default is set, Marker when not.
	Prompt string

	// AllowEmpty lets an empty line answer "nothing": the helper returns
	// (nil, nil). Ignored while Default is set.
	AllowEmpty bool

	// Default is returned as-is on an empty line, without running the
	// kind's coercer. It wins over AllowEmpty.
	Default *T
}

// makePrompt synthesizes the displayed prompt text. Pure; the retry loop
// derives it once and never re-derives it mid-loop.
func makePrompt[T any](supplied string, def *T) string {
	if supplied != "" {
		return supplied
	}
	if def != nil {
		return fmt.Sprintf("[%v]? ", *def)
	}
	return Marker
}

// ask is the retry engine behind every kind. It loops (never recurses)
// until the coercer accepts a line or the empty/default policy answers
// first. Parse failures stay internal to the loop; read errors abort it.
func ask[T any](p *Prompter, o Options[T], secret bool, banner func(), parse func(string) (T, error)) (*T, error) {
	label := makePrompt(o.Prompt, o.Default)
	log := p.logger()

	for {
		if banner != nil {
			banner()
		}

		line, err := p.read(label, secret)
		if err != nil {
			return nil, err
		}

		if line == "" {
			if o.Default != nil {
				log.Debug("Empty input, using default", zap.String("prompt", label))
				return o.Default, nil
			}
			if o.AllowEmpty {
				log.Debug("Empty input accepted as no answer", zap.String("prompt", label))
				return nil, nil
			}
			log.Debug("Empty input not allowed, asking again", zap.String("prompt", label))
			continue
		}

		v, perr := parse(line)
		if perr != nil {
			log.Warn("Invalid input, asking again",
				zap.String("prompt", label),
				zap.Error(perr))
			continue
		}
		return &v, nil
	}
}
