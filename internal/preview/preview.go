// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package preview renders published Markdown for the terminal.
// Implements: prd004-interface R4.2.
package preview

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// defaultWidth is used when stdout is not a terminal or its size is
// unknown.
const defaultWidth = 80

// Render returns md rendered for a terminal of the given width. A width
// of zero picks the current terminal's width, falling back to
// defaultWidth.
func Render(md string, width int) (string, error) {
	if width <= 0 {
		width = terminalWidth()
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("initializing markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}

// File renders the Markdown file at path.
func File(path string, width int) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return Render(string(data), width)
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}
