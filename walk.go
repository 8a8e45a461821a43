package a11ykit

import "strings"

// minimumVisibleAlpha is the alpha at or below which a node counts as hidden.
const minimumVisibleAlpha = 0.01

// ShouldProcess reports whether strategies may touch n. Only n's own state
// is consulted; ancestors are not. A node is excluded when it is hidden or
// nearly transparent, smaller than cfg.MinimumElementSize, or matched by the
// tag, class name or class-name prefix exclusion sets.
func ShouldProcess(n *Node, cfg *Config) bool {
	if n.Hidden || n.Alpha <= minimumVisibleAlpha {
		return false
	}
	if minSize := cfg.MinimumElementSize; minSize != (Vec2{}) {
		if n.Bounds.Width < minSize.X || n.Bounds.Height < minSize.Y {
			return false
		}
	}
	if _, ok := cfg.ExcludedTags[n.Tag]; ok {
		return false
	}
	if _, ok := cfg.ExcludedClassNames[n.ClassName]; ok {
		return false
	}
	for _, prefix := range cfg.AutoExcludedClassPrefixes {
		if prefix != "" && strings.HasPrefix(n.ClassName, prefix) {
			return false
		}
	}
	return true
}

// Walk visits root and its descendants in pre-order, calling visit for every
// node that passes ShouldProcess. A node that fails the predicate is skipped
// together with its entire subtree.
func Walk(root *Node, cfg *Config, visit func(*Node)) {
	if root == nil || !ShouldProcess(root, cfg) {
		return
	}
	visit(root)
	for _, child := range root.children {
		Walk(child, cfg, visit)
	}
}
