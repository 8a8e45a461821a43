package a11ykit

const customLabelSuggestion = "Consider providing a custom accessibility label"

// optimizeVoiceOver assigns the accessibility element flag, fills in a
// missing label and adds the kind's trait. Every step is a fixed point:
// running it twice leaves the node unchanged the second time.
func optimizeVoiceOver(n *Node, cfg *Config) {
	n.IsAccessibilityElement = shouldBeAccessibilityElement(n)

	if n.AccessibilityLabel == "" {
		if cfg.AutoGenerateVoiceOverLabels {
			n.AccessibilityLabel = generateLabel(n, cfg)
		} else {
			n.AccessibilityLabel = labelSource(n)
		}
	}

	trait := n.Kind.info().trait
	if n.Kind == KindImageView && n.Interactive {
		trait |= TraitButton
	}
	n.Traits |= trait
}

// labelSource returns the text a label is derived from: the primary text for
// kinds that have one, the accessibility identifier otherwise.
func labelSource(n *Node) string {
	switch n.Kind {
	case KindLabel, KindTextView, KindButton, KindTextField, KindSearchBar:
		return PrimaryText(n)
	default:
		return n.Name
	}
}

// generateLabel builds a label from the node's text or its kind's fallback,
// wrapped in the configured prefix and suffix.
func generateLabel(n *Node, cfg *Config) string {
	base := labelSource(n)
	if base == "" {
		base = n.Kind.info().fallback
	}
	return cfg.VoiceOverLabelPrefix + base + cfg.VoiceOverLabelSuffix
}

// auditVoiceOver reports every condition optimizeVoiceOver would correct.
func auditVoiceOver(n *Node, cfg *Config) []Issue {
	var issues []Issue

	if n.IsAccessibilityElement && n.AccessibilityLabel == "" {
		issues = append(issues, labelIssue(n, cfg,
			"Auto-generated accessibility label",
			"Missing accessibility label",
			"Add an accessibility label to this view",
			SeverityHigh))
	}

	unlabeled := n.AccessibilityLabel == ""
	switch n.Kind {
	case KindLabel:
		if unlabeled && n.Text == "" {
			issues = append(issues, labelIssue(n, cfg,
				"Auto-generated accessibility label for empty label",
				"Empty label without accessibility label",
				"Add an accessibility label or text to this label",
				SeverityHigh))
		}
	case KindButton:
		if unlabeled && n.Title == "" {
			issues = append(issues, labelIssue(n, cfg,
				"Auto-generated accessibility label for button without title",
				"Button without accessibility label or title",
				"Add an accessibility label or title to this button",
				SeverityHigh))
		}
	case KindTextField:
		if unlabeled && n.Placeholder == "" {
			issues = append(issues, labelIssue(n, cfg,
				"Auto-generated accessibility label for text field without placeholder",
				"TextField without label or placeholder",
				"Add an accessibility label or placeholder to this text field",
				SeverityHigh))
		}
	case KindImageView:
		if unlabeled && n.HasImage {
			issues = append(issues, labelIssue(n, cfg,
				"Auto-generated accessibility label for image",
				"Image without accessibility label",
				"Add an accessibility label to this image",
				SeverityHigh))
		}
	case KindTextView:
		if unlabeled && n.IsAccessibilityElement && n.Text == "" {
			issues = append(issues, labelIssue(n, cfg,
				"Auto-generated accessibility label for empty text view",
				"Empty text view without accessibility label",
				"Add an accessibility label or text to this text view",
				SeverityHigh))
		}
	case KindSegmentedControl, KindTableView, KindCollectionView:
		// Containers are not elements themselves; VoiceOver still reaches
		// their children, so a missing label is never high severity.
		if unlabeled {
			noun := n.Kind.info().noun
			issues = append(issues, labelIssue(n, cfg,
				"Auto-generated accessibility label for "+noun,
				n.Kind.String()+" without accessibility label",
				"Add an accessibility label to this "+noun,
				SeverityLow))
		}
	case KindSearchBar:
		if unlabeled && n.Placeholder == "" {
			issues = append(issues, labelIssue(n, cfg,
				"Auto-generated accessibility label for search bar without placeholder",
				"Search bar without accessibility label or placeholder",
				"Add an accessibility label or placeholder to this search bar",
				SeverityHigh))
		}
	case KindSwitch, KindSlider:
		if unlabeled {
			noun := n.Kind.info().noun
			issues = append(issues, labelIssue(n, cfg,
				"Auto-generated accessibility label for "+noun,
				n.Kind.String()+" without accessibility label",
				"Add an accessibility label to this "+noun,
				SeverityHigh))
		}
	case KindGeneric:
	}
	return issues
}

// labelIssue picks the description and severity for a missing-label
// condition. With auto-generation enabled the optimizer heals it, so the
// issue is low severity.
func labelIssue(n *Node, cfg *Config, autoDesc, desc, suggestion string, sev Severity) Issue {
	if cfg.AutoGenerateVoiceOverLabels {
		return newIssue(n, IssueVoiceOver, SeverityLow, autoDesc, customLabelSuggestion)
	}
	return newIssue(n, IssueVoiceOver, sev, desc, suggestion)
}
