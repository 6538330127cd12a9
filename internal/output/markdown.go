package output

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// Project descriptions are authored as markdown in the back office; wide
// terminals get a capped wrap so paragraphs stay readable.
const (
	markdownMinWidth = 20
	markdownMaxWidth = 100
)

// RenderMarkdown renders a project description for the current terminal.
func RenderMarkdown(text string) (string, error) {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	} else if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
		width = cols
	}
	return RenderMarkdownWithWidth(text, width)
}

// RenderMarkdownWithWidth renders with an explicit wrap width, for callers
// that already track their viewport size.
func RenderMarkdownWithWidth(text string, width int) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	if width < markdownMinWidth {
		width = markdownMinWidth
	}
	if width > markdownMaxWidth {
		width = markdownMaxWidth
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	rendered, err := renderer.Render(text)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(rendered, "\n"), nil
}
