package components

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/prepgenius/prepgenius/internal/ui/theme"
)

// RenderMarkdown renders generated study content with glamour. On any
// renderer failure the raw text is returned.
func RenderMarkdown(content string, width int) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(theme.MarkdownStyle),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}

	rendered, err := r.Render(content)
	if err != nil {
		return content
	}

	return strings.Trim(rendered, "\n")
}

// Output is a panel's output region. It keeps the raw text for export and
// caches the rendered markdown per width.
type Output struct {
	text     string
	markdown bool

	cacheWidth int
	cache      string
}

// SetStatus shows a plain status line such as a working or error message.
func (o *Output) SetStatus(text string) {
	o.text = text
	o.markdown = false
	o.cache = ""
}

// SetContent shows generated content rendered as markdown.
func (o *Output) SetContent(text string) {
	o.text = text
	o.markdown = true
	o.cache = ""
}

// Clear empties the region.
func (o *Output) Clear() {
	o.SetStatus("")
}

// Text returns the raw text of the region.
func (o *Output) Text() string {
	return o.text
}

// View renders the region at width.
func (o *Output) View(width int) string {
	if !o.markdown {
		return theme.Status.Width(width).Render(o.text)
	}
	if o.cache == "" || o.cacheWidth != width {
		o.cache = RenderMarkdown(o.text, width)
		o.cacheWidth = width
	}
	return o.cache
}
