package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/gymlog/internal/theme"
)

// frameRows is the space the frame takes from the terminal: one header
// line and one status bar line.
const frameRows = 2

// Layout sizes the terminal frame: a header line, the content area, and
// a status bar line.
type Layout struct {
	Width  int
	Height int
}

// NewLayout creates a Layout for the given terminal dimensions.
func NewLayout(width, height int) Layout {
	return Layout{Width: width, Height: height}
}

// ContentHeight returns the height left for the content area.
func (l Layout) ContentHeight() int {
	return l.Height - frameRows
}

// RenderHeader renders the header line: the application title on the
// left and a context string (current day, date) on the right.
func (l Layout) RenderHeader(title, context string) string {
	return l.bar(theme.HeaderStyle, title, context)
}

// RenderStatusBar renders the status bar line with keyboard hints.
func (l Layout) RenderStatusBar(hints string) string {
	return l.bar(theme.StatusBarStyle, hints, "")
}

// bar renders one full-width line with left and right segments and the
// gap between them filled in the same background.
func (l Layout) bar(style lipgloss.Style, left, right string) string {
	leftRendered := style.Render(left)

	segments := []string{leftRendered}
	used := lipgloss.Width(leftRendered)

	var rightRendered string
	if right != "" {
		rightRendered = style.Align(lipgloss.Right).Render(right)
		used += lipgloss.Width(rightRendered)
	}

	gap := l.Width - used
	if gap > 0 {
		segments = append(segments, style.Render(
			lipgloss.NewStyle().
				Width(gap).
				Background(style.GetBackground()).
				Render(""),
		))
	}
	if rightRendered != "" {
		segments = append(segments, rightRendered)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, segments...)
}

// Frame composes the full terminal view: header, content, status bar.
func (l Layout) Frame(header, content, statusBar string) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		content,
		statusBar,
	)
}
