package a11ykit

import "fmt"

// defaultEstimatedRowHeight is assigned to tables switched to automatic
// sizing when they have no estimate of their own.
const defaultEstimatedRowHeight = 44

// optimizeDynamicType makes the node's text follow the user's content size.
// Fonts without a style are scaled along the body curve; text kinds with no
// font receive the preferred body font.
func optimizeDynamicType(n *Node, cfg *Config, m FontMetrics) {
	switch n.Kind {
	case KindLabel, KindTextField, KindTextView, KindSearchBar:
		n.AdjustsFontForContentSizeCategory = true
		n.Font = m.ScaledFont(n.Font, TextStyleBody)
	case KindButton:
		n.AdjustsFontForContentSizeCategory = true
		if n.Font != nil {
			n.Font = m.ScaledFont(n.Font, TextStyleBody)
		}
	case KindSegmentedControl:
		n.AdjustsFontForContentSizeCategory = true
		if n.Font != nil {
			n.Font = m.ScaledFont(n.Font, TextStyleBody)
		}
		if n.SelectedFont != nil {
			n.SelectedFont = m.ScaledFont(n.SelectedFont, TextStyleBody)
		}
	case KindTableView:
		n.Sizing = SizingAutomatic
		if n.EstimatedRowHeight <= 0 {
			n.EstimatedRowHeight = defaultEstimatedRowHeight
		}
	case KindCollectionView:
		n.Sizing = SizingAutomatic
	case KindGeneric, KindImageView, KindSwitch, KindSlider:
	}

	if cfg.EnableLargeContentViewer {
		n.ShowsLargeContentViewer = true
	}
}

// auditDynamicType reports every condition optimizeDynamicType would correct,
// plus a content size category outside the configured bounds.
func auditDynamicType(n *Node, cfg *Config) []Issue {
	var issues []Issue
	name := n.Kind.String()

	switch n.Kind {
	case KindLabel, KindButton, KindTextField, KindTextView, KindSearchBar:
		if !n.AdjustsFontForContentSizeCategory {
			issues = append(issues, newIssue(n, IssueDynamicType, SeverityHigh,
				name+" not adjusted for Dynamic Type",
				"Enable AdjustsFontForContentSizeCategory"))
		}
		if n.Font != nil && !n.Font.Scalable {
			issues = append(issues, newIssue(n, IssueDynamicType, SeverityMedium,
				name+" font is not scaling with Dynamic Type",
				"Use a scalable font from FontMetrics"))
		}
	case KindSegmentedControl:
		if (n.Font != nil && !n.Font.Scalable) || (n.SelectedFont != nil && !n.SelectedFont.Scalable) {
			issues = append(issues, newIssue(n, IssueDynamicType, SeverityMedium,
				"SegmentedControl not using Dynamic Type fonts",
				"Use scaled fonts for segmented control titles"))
		}
	case KindTableView, KindCollectionView:
		if n.Sizing != SizingAutomatic {
			issues = append(issues, newIssue(n, IssueDynamicType, SeverityMedium,
				name+" not using automatic dimensions",
				"Switch row and item sizing to SizingAutomatic"))
		}
	case KindGeneric, KindImageView, KindSwitch, KindSlider:
	}

	if cfg.EnableLargeContentViewer && !n.ShowsLargeContentViewer {
		issues = append(issues, newIssue(n, IssueDynamicType, SeverityMedium,
			"Large Content Viewer not enabled",
			"Enable Large Content Viewer for this view"))
	}

	if n.Kind.info().text {
		if cur := cfg.PreferredContentSizeCategory.effective(); !cfg.IsContentSizeCategoryAllowed(cur) {
			issues = append(issues, newIssue(n, IssueDynamicType, SeverityMedium,
				fmt.Sprintf("Current content size category (%s) is outside the allowed range", cur),
				"Adjust the content size category range in the configuration"))
		}
	}
	return issues
}
