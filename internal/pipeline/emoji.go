package pipeline

import "github.com/enescakir/emoji"

// EmojiExpander replaces emoji shortcodes in raw Markdown. The result is
// not sanitized.
type EmojiExpander interface {
	Expand(text string) string
}

// ShortcodeExpander expands GitHub-style aliases such as :tada:.
// Unknown aliases are left as written.
type ShortcodeExpander struct{}

// Expand implements EmojiExpander.
func (ShortcodeExpander) Expand(text string) string {
	return emoji.Parse(text)
}
