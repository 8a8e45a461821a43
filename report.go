package a11ykit

import (
	"fmt"
	"strings"
)

const reportTitle = "A11yKit Accessibility Report"

// collectIssues runs every auditor enabled by opts and cfg over the tree
// rooted at root, in walk order.
func collectIssues(root *Node, cfg *Config, opts Options) []Issue {
	var issues []Issue
	Walk(root, cfg, func(n *Node) {
		issues = append(issues, auditNode(n, cfg, opts)...)
	})
	return issues
}

// auditNode runs the auditors enabled by opts and cfg on a single node.
func auditNode(n *Node, cfg *Config, opts Options) []Issue {
	if !cfg.Enabled {
		return nil
	}
	var issues []Issue
	if opts.Has(OptionVoiceOver) && cfg.EnableVoiceOverOptimization {
		issues = append(issues, auditVoiceOver(n, cfg)...)
	}
	if opts.Has(OptionDynamicType) && cfg.EnableDynamicType {
		issues = append(issues, auditDynamicType(n, cfg)...)
	}
	if opts.Has(OptionColorContrast) && cfg.EnableColorContrastOptimization {
		issues = append(issues, auditColorContrast(n, cfg)...)
	}
	return issues
}

// IssueCounts tallies issues per category.
type IssueCounts struct {
	Total         int
	VoiceOver     int
	DynamicType   int
	ColorContrast int
}

// CountIssues tallies issues per category.
func CountIssues(issues []Issue) IssueCounts {
	c := IssueCounts{Total: len(issues)}
	for _, is := range issues {
		switch is.Kind {
		case IssueVoiceOver:
			c.VoiceOver++
		case IssueDynamicType:
			c.DynamicType++
		case IssueColorContrast:
			c.ColorContrast++
		}
	}
	return c
}

// RenderReport formats issues as the plain-text accessibility report: a
// header, per-category summary counts and a numbered detail list. issues is
// rendered as given; callers dedupe first.
func RenderReport(issues []Issue) string {
	var b strings.Builder
	b.WriteString(reportTitle + "\n")
	b.WriteString(strings.Repeat("=", 30) + "\n\n")

	c := CountIssues(issues)
	b.WriteString("Summary:\n")
	fmt.Fprintf(&b, "- Total issues found: %d\n", c.Total)
	fmt.Fprintf(&b, "- VoiceOver issues: %d\n", c.VoiceOver)
	fmt.Fprintf(&b, "- Dynamic Type issues: %d\n", c.DynamicType)
	fmt.Fprintf(&b, "- Color Contrast issues: %d\n\n", c.ColorContrast)

	b.WriteString("Detailed Issues:\n")
	for i, is := range issues {
		name := is.NodeName
		if name == "" {
			name = "N/A"
		}
		fmt.Fprintf(&b, "%d. [%s] %s\n", i+1, is.Kind, is.Description)
		fmt.Fprintf(&b, "   View: %s, Accessibility Identifier: %s\n", is.NodeKind, name)
		fmt.Fprintf(&b, "   Severity: %s\n", is.Severity)
		if is.Suggestion != "" {
			fmt.Fprintf(&b, "   Suggestion: %s\n", is.Suggestion)
		}
		b.WriteString("\n")
	}
	return b.String()
}
