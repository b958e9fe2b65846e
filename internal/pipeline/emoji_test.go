package pipeline

import (
	"strings"
	"testing"
)

func TestShortcodeExpander_Expand(t *testing.T) {
	t.Parallel()

	var e EmojiExpander = ShortcodeExpander{}

	t.Run("known alias", func(t *testing.T) {
		t.Parallel()
		got := e.Expand("Ship it :rocket:")
		if !strings.Contains(got, "🚀") || strings.Contains(got, ":rocket:") {
			t.Errorf("Expand() = %q, want rocket emoji", got)
		}
	})

	t.Run("unknown alias left alone", func(t *testing.T) {
		t.Parallel()
		in := "see :not_a_real_emoji_name:"
		if got := e.Expand(in); got != in {
			t.Errorf("Expand() = %q, want %q", got, in)
		}
	})

	t.Run("no aliases", func(t *testing.T) {
		t.Parallel()
		in := "plain text, time 10:30"
		if got := e.Expand(in); got != in {
			t.Errorf("Expand() = %q, want %q", got, in)
		}
	})
}
