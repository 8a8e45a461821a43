package a11ykit

import "fmt"

// kindInfo is the static per-kind table consulted by every strategy.
type kindInfo struct {
	name     string // display name used in reports
	noun     string // lower-case noun used in issue descriptions
	fallback string // generated label when the node has no text
	trait    Trait  // trait assigned by the VoiceOver optimizer
	element  bool   // accessibility element by default
	text     bool   // carries text rendered with a font
}

var kinds = [kindCount]kindInfo{
	KindGeneric:          {name: "Generic", noun: "view", fallback: "View"},
	KindLabel:            {name: "Label", noun: "label", fallback: "Label", trait: TraitStaticText, element: true, text: true},
	KindButton:           {name: "Button", noun: "button", fallback: "Button", trait: TraitButton, element: true, text: true},
	KindTextField:        {name: "TextField", noun: "text field", fallback: "Text Field", trait: TraitSearchField, element: true, text: true},
	KindTextView:         {name: "TextView", noun: "text view", fallback: "Text View", trait: TraitStaticText, element: true, text: true},
	KindImageView:        {name: "ImageView", noun: "image", fallback: "Image", trait: TraitImage},
	KindSegmentedControl: {name: "SegmentedControl", noun: "segmented control", fallback: "Segmented Control", trait: TraitAdjustable, text: true},
	KindTableView:        {name: "TableView", noun: "table view", fallback: "Table View"},
	KindCollectionView:   {name: "CollectionView", noun: "collection view", fallback: "Collection View"},
	KindSearchBar:        {name: "SearchBar", noun: "search bar", fallback: "Search Bar", trait: TraitSearchField, text: true},
	KindSwitch:           {name: "Switch", noun: "switch", fallback: "Switch", trait: TraitButton, element: true},
	KindSlider:           {name: "Slider", noun: "slider", fallback: "Slider", trait: TraitAdjustable, element: true},
}

func (k NodeKind) info() kindInfo {
	if int(k) < len(kinds) {
		return kinds[k]
	}
	return kinds[KindGeneric]
}

func (k NodeKind) String() string {
	if int(k) < len(kinds) {
		return kinds[k].name
	}
	return fmt.Sprintf("NodeKind(%d)", k)
}

// ParseNodeKind returns the kind whose String form is s.
func ParseNodeKind(s string) (NodeKind, bool) {
	for i, info := range kinds {
		if info.name == s {
			return NodeKind(i), true
		}
	}
	return KindGeneric, false
}

// MarshalText implements encoding.TextMarshaler.
func (k NodeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *NodeKind) UnmarshalText(b []byte) error {
	kind, ok := ParseNodeKind(string(b))
	if !ok {
		return fmt.Errorf("a11ykit: unknown node kind %q", b)
	}
	*k = kind
	return nil
}

// PrimaryText returns the node's main textual attribute for its kind:
// Text for labels and text views, Title for buttons, Placeholder for text
// fields and search bars. Other kinds have none.
func PrimaryText(n *Node) string {
	switch n.Kind {
	case KindLabel, KindTextView:
		return n.Text
	case KindButton:
		return n.Title
	case KindTextField, KindSearchBar:
		return n.Placeholder
	default:
		return ""
	}
}

// shouldBeAccessibilityElement reports the element flag the VoiceOver
// optimizer assigns. Image views qualify only while they show an image.
func shouldBeAccessibilityElement(n *Node) bool {
	if n.Kind == KindImageView {
		return n.HasImage
	}
	return n.Kind.info().element
}

// EffectiveBackground returns the node's own background color, else that of
// the nearest ancestor that declares one, else white. Contrast optimization
// and auditing both resolve backgrounds through this function.
func EffectiveBackground(n *Node) Color {
	for p := n; p != nil; p = p.Parent {
		if p.BackgroundColor != nil {
			return *p.BackgroundColor
		}
	}
	return ColorWhite
}

// Identifier returns the node's accessibility identifier, or "N/A".
func Identifier(n *Node) string {
	if n.Name == "" {
		return "N/A"
	}
	return n.Name
}
