// pkg/prompt/errors.go

package prompt

import (
	cerr "github.com/cockroachdb/errors"
)

// Invalid-argument errors. These are fatal and raised before any I/O;
// the retry loop never sees them. Parse failures, by contrast, never
// escape the loop, and terminal.ErrNotTerminal propagates untouched.
var (
	// ErrNoChoices is returned by Choice when the choice set is empty.
	ErrNoChoices = cerr.WithHint(
		cerr.New("need at least one choice"),
		"pass a non-empty slice of choices")

	// ErrUnsupportedMode is returned by Email for an unknown mode.
	ErrUnsupportedMode = cerr.WithHint(
		cerr.New("unsupported email mode"),
		`use "simple" or "strict"`)
)
