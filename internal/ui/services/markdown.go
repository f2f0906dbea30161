package services

import (
	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders markdown into styled terminal output.
type MarkdownRenderer interface {
	Render(content string, width int) (string, error)
}

// GlamourRenderer implements MarkdownRenderer using charmbracelet/glamour.
type GlamourRenderer struct{}

// NewGlamourRenderer creates a new glamour-backed renderer.
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{}
}

// Render renders markdown at the given wrap width.
func (r *GlamourRenderer) Render(content string, width int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(content)
}

// RenderMarkdown renders content with a fallback to the raw text when the
// renderer fails.
func RenderMarkdown(content string, width int, renderer MarkdownRenderer) string {
	if renderer == nil {
		return content
	}
	rendered, err := renderer.Render(content, width)
	if err != nil {
		return content
	}
	return rendered
}
