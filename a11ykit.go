package a11ykit

import "strings"

// Vec2 is a 2D vector used for sizes and offsets.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in host window coordinates. The origin
// is the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Size returns the rectangle's width and height as a Vec2.
func (r Rect) Size() Vec2 {
	return Vec2{r.Width, r.Height}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// NodeKind classifies a Node. The set is closed; every strategy switches
// over it exhaustively.
type NodeKind uint8

const (
	KindGeneric          NodeKind = iota // plain view or container
	KindLabel                            // static text
	KindButton                           // tappable control with a title
	KindTextField                        // single-line editable text
	KindTextView                         // multi-line text
	KindImageView                        // image content
	KindSegmentedControl                 // row of mutually exclusive segments
	KindTableView                        // vertical list of rows
	KindCollectionView                   // grid or flow of items
	KindSearchBar                        // search input with placeholder
	KindSwitch                           // on/off toggle
	KindSlider                           // continuous value control
)

// kindCount is the number of NodeKind values. Keep in sync with the const block.
const kindCount = 12

// Trait is a bit set of semantic roles exposed to assistive technology.
type Trait uint16

const (
	TraitNone       Trait = 0
	TraitStaticText Trait = 1 << iota // non-interactive text
	TraitButton                       // activatable element
	TraitSearchField                  // editable search or text input
	TraitImage                        // image content
	TraitAdjustable                   // value can be incremented/decremented
	TraitHeader                       // section header
	TraitSelected                     // currently selected
	TraitNotEnabled                   // disabled control
)

var traitNames = []struct {
	t    Trait
	name string
}{
	{TraitStaticText, "staticText"},
	{TraitButton, "button"},
	{TraitSearchField, "searchField"},
	{TraitImage, "image"},
	{TraitAdjustable, "adjustable"},
	{TraitHeader, "header"},
	{TraitSelected, "selected"},
	{TraitNotEnabled, "notEnabled"},
}

// Has reports whether every bit of other is set in t.
func (t Trait) Has(other Trait) bool {
	return t&other == other
}

func (t Trait) String() string {
	if t == TraitNone {
		return "none"
	}
	var parts []string
	for _, tn := range traitNames {
		if t&tn.t != 0 {
			parts = append(parts, tn.name)
		}
	}
	return strings.Join(parts, "|")
}

// SizingMode selects how table rows and collection items are measured.
type SizingMode uint8

const (
	SizingFixed     SizingMode = iota // explicit row height / item size
	SizingAutomatic                   // size to content (scales with fonts)
)

// Options is a bitmask selecting which strategies an optimize or audit call
// runs. Values can be combined with bitwise OR.
type Options uint8

const (
	OptionVoiceOver     Options = 1 << iota // labels, traits, element flags
	OptionDynamicType                       // scalable fonts and sizing
	OptionColorContrast                     // text/background contrast
)

// OptionsAll enables every strategy.
const OptionsAll = OptionVoiceOver | OptionDynamicType | OptionColorContrast

// Has reports whether every bit of other is set in o.
func (o Options) Has(other Options) bool {
	return o&other == other
}

func (o Options) String() string {
	var parts []string
	if o.Has(OptionVoiceOver) {
		parts = append(parts, "VoiceOver")
	}
	if o.Has(OptionDynamicType) {
		parts = append(parts, "DynamicType")
	}
	if o.Has(OptionColorContrast) {
		parts = append(parts, "ColorContrast")
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
