package a11ykit

import "fmt"

// colorSlot is one foreground color of a node. Multi-state kinds expose one
// slot per state.
type colorSlot struct {
	state string // "normal", "selected", or "" for single-state kinds
	color **Color
}

// colorFix is a pending contrast correction for one slot.
type colorFix struct {
	slot  colorSlot
	from  Color
	to    Color
	ratio float64 // contrast before the fix
}

func foregroundSlots(n *Node) []colorSlot {
	switch n.Kind {
	case KindLabel, KindButton, KindTextField, KindTextView, KindSearchBar:
		return []colorSlot{{color: &n.TextColor}}
	case KindSegmentedControl:
		return []colorSlot{
			{state: "normal", color: &n.TextColor},
			{state: "selected", color: &n.SelectedTextColor},
		}
	default:
		return nil
	}
}

// contrastFixes returns one fix per foreground color whose contrast against
// the effective background is below the configured minimum. Both the
// optimizer and the auditor go through this function.
func contrastFixes(n *Node, cfg *Config) []colorFix {
	slots := foregroundSlots(n)
	if len(slots) == 0 {
		return nil
	}
	bg := EffectiveBackground(n)
	minimum := cfg.MinimumContrastRatio()

	var fixes []colorFix
	for _, s := range slots {
		fg := *s.color
		if fg == nil {
			continue
		}
		ratio := ContrastRatio(*fg, bg)
		if ratio >= minimum {
			continue
		}
		fixes = append(fixes, colorFix{
			slot:  s,
			from:  *fg,
			to:    AdjustedForContrast(*fg, bg, minimum),
			ratio: ratio,
		})
	}
	return fixes
}

// apply stores the corrected color in a fresh allocation so that a Color
// pointer shared between nodes is never written through.
func (f colorFix) apply() {
	c := f.to
	*f.slot.color = &c
}

func optimizeColorContrast(n *Node, cfg *Config) {
	for _, f := range contrastFixes(n, cfg) {
		f.apply()
	}
}

func auditColorContrast(n *Node, cfg *Config) []Issue {
	fixes := contrastFixes(n, cfg)
	if len(fixes) == 0 {
		return nil
	}
	noun := n.Kind.info().noun
	suggestion := fmt.Sprintf("Increase the contrast ratio to at least %.1f", cfg.MinimumContrastRatio())
	issues := make([]Issue, 0, len(fixes))
	for _, f := range fixes {
		desc := fmt.Sprintf("Insufficient color contrast for %s: %.2f", noun, f.ratio)
		if f.slot.state != "" {
			desc = fmt.Sprintf("Insufficient color contrast for %s (%s state): %.2f", noun, f.slot.state, f.ratio)
		}
		issues = append(issues, newIssue(n, IssueColorContrast, SeverityHigh, desc, suggestion))
	}
	return issues
}
