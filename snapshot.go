package a11ykit

import (
	"encoding/json"
	"fmt"
	"strings"
)

// --- JSON structure types ---

type jsonRect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

type jsonFont struct {
	Family   string  `json:"family,omitempty"`
	Size     float64 `json:"size"`
	BaseSize float64 `json:"baseSize,omitempty"`
	Scalable bool    `json:"scalable,omitempty"`
}

type jsonNode struct {
	Kind      NodeKind `json:"kind"`
	Name      string   `json:"name,omitempty"`
	ClassName string   `json:"className,omitempty"`
	Tag       int      `json:"tag,omitempty"`

	IsAccessibilityElement bool     `json:"isAccessibilityElement,omitempty"`
	AccessibilityLabel     string   `json:"accessibilityLabel,omitempty"`
	AccessibilityHint      string   `json:"accessibilityHint,omitempty"`
	Traits                 []string `json:"traits,omitempty"`

	Text        string `json:"text,omitempty"`
	Title       string `json:"title,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
	HasImage    bool   `json:"hasImage,omitempty"`
	Interactive bool   `json:"interactive,omitempty"`

	Font                              *jsonFont `json:"font,omitempty"`
	SelectedFont                      *jsonFont `json:"selectedFont,omitempty"`
	AdjustsFontForContentSizeCategory bool      `json:"adjustsFontForContentSizeCategory,omitempty"`
	ShowsLargeContentViewer           bool      `json:"showsLargeContentViewer,omitempty"`

	TextColor         string `json:"textColor,omitempty"`
	SelectedTextColor string `json:"selectedTextColor,omitempty"`
	BackgroundColor   string `json:"backgroundColor,omitempty"`

	Hidden bool     `json:"hidden,omitempty"`
	Alpha  *float64 `json:"alpha,omitempty"`
	Bounds jsonRect `json:"bounds"`

	AutomaticSizing    bool    `json:"automaticSizing,omitempty"`
	EstimatedRowHeight float64 `json:"estimatedRowHeight,omitempty"`

	Children []jsonNode `json:"children,omitempty"`
}

// LoadSnapshot decodes a JSON node tree, as written by MarshalSnapshot, and
// returns its root. Every node gets a fresh ID.
func LoadSnapshot(data []byte) (*Node, error) {
	var root jsonNode
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("a11ykit: failed to parse snapshot JSON: %w", err)
	}
	return root.build()
}

func (j *jsonNode) build() (*Node, error) {
	n := NewNode(j.Kind, j.Name)
	n.ClassName = j.ClassName
	n.Tag = j.Tag
	n.IsAccessibilityElement = j.IsAccessibilityElement
	n.AccessibilityLabel = j.AccessibilityLabel
	n.AccessibilityHint = j.AccessibilityHint
	for _, name := range j.Traits {
		t, ok := parseTrait(name)
		if !ok {
			return nil, fmt.Errorf("a11ykit: snapshot node %q: unknown trait %q", j.Name, name)
		}
		n.Traits |= t
	}
	n.Text = j.Text
	n.Title = j.Title
	n.Placeholder = j.Placeholder
	n.HasImage = j.HasImage
	n.Interactive = j.Interactive
	n.Font = j.Font.fontRef()
	n.SelectedFont = j.SelectedFont.fontRef()
	n.AdjustsFontForContentSizeCategory = j.AdjustsFontForContentSizeCategory
	n.ShowsLargeContentViewer = j.ShowsLargeContentViewer

	var err error
	if n.TextColor, err = parseOptionalColor(j.TextColor); err != nil {
		return nil, err
	}
	if n.SelectedTextColor, err = parseOptionalColor(j.SelectedTextColor); err != nil {
		return nil, err
	}
	if n.BackgroundColor, err = parseOptionalColor(j.BackgroundColor); err != nil {
		return nil, err
	}

	n.Hidden = j.Hidden
	if j.Alpha != nil {
		n.Alpha = *j.Alpha
	}
	n.Bounds = Rect{X: j.Bounds.X, Y: j.Bounds.Y, Width: j.Bounds.W, Height: j.Bounds.H}
	if j.AutomaticSizing {
		n.Sizing = SizingAutomatic
	}
	n.EstimatedRowHeight = j.EstimatedRowHeight

	for i := range j.Children {
		child, err := j.Children[i].build()
		if err != nil {
			return nil, err
		}
		n.AddChild(child)
	}
	return n, nil
}

func (f *jsonFont) fontRef() *FontRef {
	if f == nil {
		return nil
	}
	return &FontRef{Family: f.Family, Size: f.Size, BaseSize: f.BaseSize, Scalable: f.Scalable}
}

func parseOptionalColor(s string) (*Color, error) {
	if s == "" {
		return nil, nil
	}
	c, err := ColorFromHex(s)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func parseTrait(name string) (Trait, bool) {
	for _, tn := range traitNames {
		if strings.EqualFold(tn.name, name) {
			return tn.t, true
		}
	}
	return TraitNone, false
}

// MarshalSnapshot encodes the tree rooted at root as indented JSON. Colors
// are written as "#rrggbb"; alpha channels and font faces are not kept.
func MarshalSnapshot(root *Node) ([]byte, error) {
	data, err := json.MarshalIndent(snapshotOf(root), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("a11ykit: failed to encode snapshot: %w", err)
	}
	return data, nil
}

func snapshotOf(n *Node) jsonNode {
	alpha := n.Alpha
	j := jsonNode{
		Kind:                              n.Kind,
		Name:                              n.Name,
		ClassName:                         n.ClassName,
		Tag:                               n.Tag,
		IsAccessibilityElement:            n.IsAccessibilityElement,
		AccessibilityLabel:                n.AccessibilityLabel,
		AccessibilityHint:                 n.AccessibilityHint,
		Text:                              n.Text,
		Title:                             n.Title,
		Placeholder:                       n.Placeholder,
		HasImage:                          n.HasImage,
		Interactive:                       n.Interactive,
		Font:                              jsonFontOf(n.Font),
		SelectedFont:                      jsonFontOf(n.SelectedFont),
		AdjustsFontForContentSizeCategory: n.AdjustsFontForContentSizeCategory,
		ShowsLargeContentViewer:           n.ShowsLargeContentViewer,
		TextColor:                         hexOf(n.TextColor),
		SelectedTextColor:                 hexOf(n.SelectedTextColor),
		BackgroundColor:                   hexOf(n.BackgroundColor),
		Hidden:                            n.Hidden,
		Alpha:                             &alpha,
		Bounds:                            jsonRect{X: n.Bounds.X, Y: n.Bounds.Y, W: n.Bounds.Width, H: n.Bounds.Height},
		AutomaticSizing:                   n.Sizing == SizingAutomatic,
		EstimatedRowHeight:                n.EstimatedRowHeight,
	}
	for _, tn := range traitNames {
		if n.Traits&tn.t != 0 {
			j.Traits = append(j.Traits, tn.name)
		}
	}
	for _, child := range n.children {
		j.Children = append(j.Children, snapshotOf(child))
	}
	return j
}

func jsonFontOf(f *FontRef) *jsonFont {
	if f == nil {
		return nil
	}
	return &jsonFont{Family: f.Family, Size: f.Size, BaseSize: f.BaseSize, Scalable: f.Scalable}
}

func hexOf(c *Color) string {
	if c == nil {
		return ""
	}
	return c.Hex()
}
