// pkg/prompt/choice.go

package prompt

import (
	"fmt"
	"strconv"

	cerr "github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// DefaultInstruction is printed above the numbered choices when no
// instruction is supplied.
const DefaultInstruction = "Select one of the following: "

// ChoiceOptions configures the Choice helper.
type ChoiceOptions struct {
	Options[string]

	// Instruction is the line printed above the choices; empty means
	// DefaultInstruction.
	Instruction string
}

// Choice prompts for a selection from an ordered, non-empty set of
// choices. Choices are listed with 1-based indexes and the answer is the
// index; the instruction and the list are re-printed on every retry.
// Zero choices fail with ErrNoChoices before any I/O.
func (p *Prompter) Choice(choices []string, o ChoiceOptions) (*string, error) {
	if len(choices) == 0 {
		return nil, ErrNoChoices
	}

	instruction := o.Instruction
	if instruction == "" {
		instruction = DefaultInstruction
	}

	banner := func() {
		fmt.Fprintln(p.out, instruction)
		for i, c := range choices {
			fmt.Fprintf(p.out, "    %d: %s\n", i+1, c)
		}
	}

	result, err := ask(p, o.Options, false, banner, func(s string) (string, error) {
		idx, convErr := strconv.Atoi(s)
		if convErr != nil {
			return "", cerr.Wrap(convErr, "not a choice number")
		}
		if idx < 1 || idx > len(choices) {
			return "", cerr.Newf("choice %d out of range 1-%d", idx, len(choices))
		}
		return choices[idx-1], nil
	})
	if err != nil {
		return nil, err
	}
	if result != nil {
		p.logger().Debug("Choice selected", zap.String("value", *result))
	}
	return result, nil
}
