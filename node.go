package a11ykit

import "sync/atomic"

// --- ID counter ---

// nodeIDCounter is atomic so that tree builders (HTML parsing, snapshot
// decoding) may run off the UI goroutine.
var nodeIDCounter atomic.Uint32

func nextNodeID() uint32 {
	return nodeIDCounter.Add(1)
}

// CustomAction is an extra action offered to assistive technology users.
type CustomAction struct {
	Name    string
	Handler func() bool
}

// --- Node ---

// Node is one element of the host UI tree. A single flat struct is used for
// all kinds; fields that do not apply to a node's Kind are ignored.
//
// Empty strings mean "unset" for the accessibility and text fields.
type Node struct {
	// Identity
	ID        uint32
	Kind      NodeKind
	Name      string // accessibility identifier
	ClassName string
	Tag       int

	// Hierarchy
	Parent   *Node
	children []*Node

	// Accessibility
	IsAccessibilityElement      bool
	AccessibilityLabel          string
	AccessibilityHint           string
	Traits                      Trait
	CustomActions               []CustomAction
	AccessibilityElementsHidden bool

	// Content (kind dependent)
	Text        string // Label, TextView
	Title       string // Button
	Placeholder string // TextField, SearchBar
	HasImage    bool   // ImageView
	Interactive bool

	// Typography
	Font                              *FontRef
	SelectedFont                      *FontRef // SegmentedControl selected state
	AdjustsFontForContentSizeCategory bool
	ShowsLargeContentViewer           bool

	// Colors (nil = not set on this node)
	TextColor         *Color
	SelectedTextColor *Color // SegmentedControl selected state
	BackgroundColor   *Color

	// Visibility & geometry
	Hidden bool
	Alpha  float64
	Bounds Rect

	// TableView / CollectionView
	Sizing             SizingMode
	EstimatedRowHeight float64

	// UserData is owned by the host; a11ykit never reads it. htmltree stores
	// the source element's tag name here.
	UserData any
}

// NewNode creates a node of the given kind with default field values.
func NewNode(kind NodeKind, name string) *Node {
	return &Node{
		ID:    nextNodeID(),
		Kind:  kind,
		Name:  name,
		Alpha: 1,
	}
}

// NewContainer creates a generic node with no content of its own.
func NewContainer(name string) *Node {
	return NewNode(KindGeneric, name)
}

// NewLabel creates a label node with the given text.
func NewLabel(name, text string) *Node {
	n := NewNode(KindLabel, name)
	n.Text = text
	return n
}

// NewButton creates a button node with the given title.
func NewButton(name, title string) *Node {
	n := NewNode(KindButton, name)
	n.Title = title
	n.Interactive = true
	return n
}

// NewTextField creates a text field node with the given placeholder.
func NewTextField(name, placeholder string) *Node {
	n := NewNode(KindTextField, name)
	n.Placeholder = placeholder
	n.Interactive = true
	return n
}

// NewTextView creates a multi-line text node.
func NewTextView(name, text string) *Node {
	n := NewNode(KindTextView, name)
	n.Text = text
	return n
}

// NewImageView creates an image node. hasImage reports whether it currently
// displays image content.
func NewImageView(name string, hasImage bool) *Node {
	n := NewNode(KindImageView, name)
	n.HasImage = hasImage
	return n
}

// NewSearchBar creates a search bar node with the given placeholder.
func NewSearchBar(name, placeholder string) *Node {
	n := NewNode(KindSearchBar, name)
	n.Placeholder = placeholder
	n.Interactive = true
	return n
}

// SetTextColor sets the node's foreground color.
func (n *Node) SetTextColor(c Color) {
	n.TextColor = &c
}

// SetBackgroundColor sets the node's own background color.
func (n *Node) SetBackgroundColor(c Color) {
	n.BackgroundColor = &c
}

// --- Convenience helpers ---

// MakeAccessible marks the node as an accessibility element. Empty label or
// hint and a zero traits value keep the current values.
func (n *Node) MakeAccessible(label, hint string, traits Trait) {
	n.IsAccessibilityElement = true
	if label != "" {
		n.AccessibilityLabel = label
	}
	if hint != "" {
		n.AccessibilityHint = hint
	}
	if traits != TraitNone {
		n.Traits = traits
	}
}

// HideFromAccessibility removes the node and its subtree from assistive
// technology without hiding it visually.
func (n *Node) HideFromAccessibility() {
	n.IsAccessibilityElement = false
	n.AccessibilityElementsHidden = true
}

// AddCustomAction appends a named custom action.
func (n *Node) AddCustomAction(name string, handler func() bool) {
	n.CustomActions = append(n.CustomActions, CustomAction{Name: name, Handler: handler})
}

// SetAccessibleFont replaces the node's font with the preferred font for
// style and marks it as following the content size.
func (n *Node) SetAccessibleFont(m FontMetrics, style TextStyle) {
	n.Font = m.PreferredFont(style)
	n.AdjustsFontForContentSizeCategory = true
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("a11ykit: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("a11ykit: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// FindByName returns the first node in pre-order whose Name is name, or nil.
func (n *Node) FindByName(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.children {
		if found := c.FindByName(name); found != nil {
			return found
		}
	}
	return nil
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
