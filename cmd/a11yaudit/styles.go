package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/phanxgames/a11ykit"
)

// Severity palette
var (
	severityHigh   = lipgloss.Color("#e53935")
	severityMedium = lipgloss.Color("#FFC107")
	severityLow    = lipgloss.Color("#2196F3")
	mutedColor     = lipgloss.Color("#8a8f98")
	successColor   = lipgloss.Color("#8BC34A")
)

type styles struct {
	enabled  bool
	severity map[a11ykit.Severity]lipgloss.Style
	kind     lipgloss.Style
	muted    lipgloss.Style
	success  lipgloss.Style
}

// newStyles picks colored or plain output for w. In auto mode color is used
// only when w is a terminal; always forces true color for any writer.
func newStyles(w io.Writer, mode string) styles {
	enabled := false
	switch mode {
	case "always":
		enabled = true
	case "never":
	default:
		if f, ok := w.(*os.File); ok {
			enabled = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
	}
	r := lipgloss.NewRenderer(w)
	if mode == "always" {
		r.SetColorProfile(termenv.TrueColor)
	}
	return styles{
		enabled: enabled,
		severity: map[a11ykit.Severity]lipgloss.Style{
			a11ykit.SeverityHigh:   r.NewStyle().Bold(true).Foreground(severityHigh),
			a11ykit.SeverityMedium: r.NewStyle().Foreground(severityMedium),
			a11ykit.SeverityLow:    r.NewStyle().Foreground(severityLow),
		},
		kind:    r.NewStyle().Bold(true),
		muted:   r.NewStyle().Foreground(mutedColor),
		success: r.NewStyle().Foreground(successColor),
	}
}

func (s styles) render(st lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return st.Render(text)
}

func (s styles) issueLine(i int, is a11ykit.Issue) string {
	name := is.NodeName
	if name == "" {
		name = "N/A"
	}
	line := fmt.Sprintf("%3d. %-6s %s %s", i,
		s.render(s.severity[is.Severity], is.Severity.String()),
		s.render(s.kind, "["+is.Kind.String()+"]"),
		is.Description)
	line += s.render(s.muted, fmt.Sprintf("  (%s, %s)", is.NodeKind, name))
	if is.Suggestion != "" {
		line += "\n     " + s.render(s.muted, is.Suggestion)
	}
	return line
}

func (s styles) summary(c a11ykit.IssueCounts) string {
	if c.Total == 0 {
		return s.render(s.success, "No accessibility issues found")
	}
	return fmt.Sprintf("%d issues: %d VoiceOver, %d Dynamic Type, %d Color Contrast",
		c.Total, c.VoiceOver, c.DynamicType, c.ColorContrast)
}

func (s styles) fixed(before, after int) string {
	return s.render(s.success, fmt.Sprintf("Resolved %d of %d issues", before-after, before)) +
		s.render(s.muted, fmt.Sprintf(" (%d remaining)", after))
}
