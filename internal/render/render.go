// Package render turns converted markdown into HTML or styled terminal output.
package render

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// DefaultWidth is the word wrap width used when none is given
const DefaultWidth = 100

// glamourStyles maps site themes to glamour's built-in styles
var glamourStyles = map[string]string{
	"tokyo":   "tokyo-night",
	"gruvbox": "dark",
}

// markdown is safe for concurrent use once built
var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Linkify,
		extension.TaskList,
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		html.WithUnsafe(),
	),
)

// HTML renders markdown to HTML the way the site does (GFM, raw HTML allowed)
func HTML(source string) ([]byte, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return nil, fmt.Errorf("markdown render: %w", err)
	}
	return buf.Bytes(), nil
}

// GlamourStyle returns the glamour style name for a site theme
func GlamourStyle(theme string) string {
	if style, ok := glamourStyles[theme]; ok {
		return style
	}
	return "dark"
}

// Terminal renders markdown for the terminal using the given site theme
func Terminal(source, theme string, width int) (string, error) {
	if width <= 0 {
		width = DefaultWidth
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(GlamourStyle(theme)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create terminal renderer: %w", err)
	}

	out, err := r.Render(source)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}

	return out, nil
}
