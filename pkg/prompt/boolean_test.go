// pkg/prompt/boolean_test.go

package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooleanPrefixMatching(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		opts  BooleanOptions
		lines []string
		want  bool
		reads int
	}{
		{name: "y_for_yes", opts: BooleanOptions{Yes: "yes"}, lines: []string{"y"}, want: true, reads: 1},
		{name: "ye_for_yes", opts: BooleanOptions{Yes: "yes"}, lines: []string{"ye"}, want: true, reads: 1},
		{name: "full_yes", opts: BooleanOptions{Yes: "yes"}, lines: []string{"yes"}, want: true, reads: 1},
		{name: "n_for_no", opts: BooleanOptions{Yes: "yes"}, lines: []string{"n"}, want: false, reads: 1},
		{name: "no_for_no", opts: BooleanOptions{Yes: "yes"}, lines: []string{"no"}, want: false, reads: 1},
		{name: "garbage_then_yes", opts: BooleanOptions{}, lines: []string{"maybe", "y"}, want: true, reads: 2},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, script, _ := newTestPrompter(tt.lines...)

			got, err := p.Boolean(tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Len(t, script.Prompts, tt.reads)
		})
	}
}

func TestBooleanSharedPrefixAnswersYes(t *testing.T) {
	t.Parallel()

	// "ye" is a prefix of both tokens; the yes branch is checked first.
	p, _, _ := newTestPrompter("ye")

	got, err := p.Boolean(BooleanOptions{Yes: "yellow", No: "yes"})
	require.NoError(t, err)
	assert.True(t, got)
}

func TestBooleanCaseSensitivity(t *testing.T) {
	t.Parallel()

	t.Run("case_insensitive_by_default", func(t *testing.T) {
		t.Parallel()
		p, _, _ := newTestPrompter("Y")

		got, err := p.Boolean(BooleanOptions{})
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("case_sensitive_rejects_wrong_case", func(t *testing.T) {
		t.Parallel()
		p, script, _ := newTestPrompter("y", "Y")

		got, err := p.Boolean(BooleanOptions{Yes: "Y", CaseSensitive: true})
		require.NoError(t, err)
		assert.True(t, got)
		assert.Len(t, script.Prompts, 2)
	})
}

func TestBooleanExactMatching(t *testing.T) {
	t.Parallel()
	p, script, _ := newTestPrompter("ye", "yes")

	got, err := p.Boolean(BooleanOptions{Yes: "yes", Exact: true})
	require.NoError(t, err)
	assert.True(t, got)
	assert.Len(t, script.Prompts, 2)
}

func TestBooleanDefaultShortCircuits(t *testing.T) {
	t.Parallel()

	t.Run("empty_returns_default_true", func(t *testing.T) {
		t.Parallel()
		p, _, _ := newTestPrompter("")

		got, err := p.Boolean(BooleanOptions{Default: Ptr(true)})
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("empty_returns_default_false", func(t *testing.T) {
		t.Parallel()
		p, _, _ := newTestPrompter("")

		got, err := p.Boolean(BooleanOptions{Default: Ptr(false)})
		require.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("empty_without_default_reprompts", func(t *testing.T) {
		t.Parallel()
		p, script, _ := newTestPrompter("", "y")

		got, err := p.Boolean(BooleanOptions{})
		require.NoError(t, err)
		assert.True(t, got)
		assert.Len(t, script.Prompts, 2)
	})
}

func TestBooleanPromptSynthesis(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts BooleanOptions
		want string
	}{
		{name: "no_default", opts: BooleanOptions{}, want: "y/n? "},
		{name: "default_true_bracketed", opts: BooleanOptions{Default: Ptr(true)}, want: "[y]/n? "},
		{name: "default_false_bracketed", opts: BooleanOptions{Default: Ptr(false)}, want: "y/[n]? "},
		{name: "custom_tokens", opts: BooleanOptions{Yes: "oui", No: "non", Default: Ptr(true)}, want: "[oui]/non? "},
		{name: "supplied_prompt_verbatim", opts: BooleanOptions{Prompt: "Continue? ", Default: Ptr(true)}, want: "Continue? "},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, script, _ := newTestPrompter("y")

			_, err := p.Boolean(tt.opts)
			require.NoError(t, err)
			require.Len(t, script.Prompts, 1)
			assert.Equal(t, tt.want, script.Prompts[0])
		})
	}
}
