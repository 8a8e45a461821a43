package a11ykit

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Font is the interface for text measurement. Faces that can be rebuilt at
// another point size also implement Resizer.
type Font interface {
	MeasureString(text string) (width, height float64)
	LineHeight() float64
}

// Resizer is implemented by faces that can produce a copy at a new size.
type Resizer interface {
	WithSize(size float64) Font
}

// --- Text styles ---

// TextStyle is a semantic font role. Scaled fonts follow the size curve of
// their style.
type TextStyle uint8

const (
	TextStyleNone TextStyle = iota // explicit font, no semantic role
	TextStyleLargeTitle
	TextStyleTitle1
	TextStyleTitle2
	TextStyleTitle3
	TextStyleHeadline
	TextStyleBody
	TextStyleCallout
	TextStyleSubheadline
	TextStyleFootnote
	TextStyleCaption1
	TextStyleCaption2
)

// baseStyleSizes are point sizes at ContentSizeLarge, indexed by TextStyle.
var baseStyleSizes = [...]float64{
	TextStyleNone:        17,
	TextStyleLargeTitle:  34,
	TextStyleTitle1:      28,
	TextStyleTitle2:      22,
	TextStyleTitle3:      20,
	TextStyleHeadline:    17,
	TextStyleBody:        17,
	TextStyleCallout:     16,
	TextStyleSubheadline: 15,
	TextStyleFootnote:    13,
	TextStyleCaption1:    12,
	TextStyleCaption2:    11,
}

// --- Content size categories ---

// ContentSizeCategory is the user's preferred text size setting. The zero
// value means unspecified and is treated as ContentSizeLarge.
type ContentSizeCategory uint8

const (
	ContentSizeUnspecified ContentSizeCategory = iota
	ContentSizeExtraSmall
	ContentSizeSmall
	ContentSizeMedium
	ContentSizeLarge
	ContentSizeExtraLarge
	ContentSizeExtraExtraLarge
	ContentSizeExtraExtraExtraLarge
	ContentSizeAccessibilityMedium
	ContentSizeAccessibilityLarge
	ContentSizeAccessibilityExtraLarge
	ContentSizeAccessibilityExtraExtraLarge
	ContentSizeAccessibilityExtraExtraExtraLarge
)

var contentSizeNames = [...]string{
	ContentSizeUnspecified:                       "unspecified",
	ContentSizeExtraSmall:                        "extraSmall",
	ContentSizeSmall:                             "small",
	ContentSizeMedium:                            "medium",
	ContentSizeLarge:                             "large",
	ContentSizeExtraLarge:                        "extraLarge",
	ContentSizeExtraExtraLarge:                   "extraExtraLarge",
	ContentSizeExtraExtraExtraLarge:              "extraExtraExtraLarge",
	ContentSizeAccessibilityMedium:               "accessibilityMedium",
	ContentSizeAccessibilityLarge:                "accessibilityLarge",
	ContentSizeAccessibilityExtraLarge:           "accessibilityExtraLarge",
	ContentSizeAccessibilityExtraExtraLarge:      "accessibilityExtraExtraLarge",
	ContentSizeAccessibilityExtraExtraExtraLarge: "accessibilityExtraExtraExtraLarge",
}

// bodySizes is the body point size per category; other styles scale by the
// same ratio relative to ContentSizeLarge.
var bodySizes = [...]float64{
	ContentSizeUnspecified:                       17,
	ContentSizeExtraSmall:                        14,
	ContentSizeSmall:                             15,
	ContentSizeMedium:                            16,
	ContentSizeLarge:                             17,
	ContentSizeExtraLarge:                        19,
	ContentSizeExtraExtraLarge:                   21,
	ContentSizeExtraExtraExtraLarge:              23,
	ContentSizeAccessibilityMedium:               28,
	ContentSizeAccessibilityLarge:                33,
	ContentSizeAccessibilityExtraLarge:           40,
	ContentSizeAccessibilityExtraExtraLarge:      47,
	ContentSizeAccessibilityExtraExtraExtraLarge: 53,
}

func (c ContentSizeCategory) String() string {
	if int(c) < len(contentSizeNames) {
		return contentSizeNames[c]
	}
	return fmt.Sprintf("ContentSizeCategory(%d)", c)
}

// IsAccessibilityCategory reports whether c is one of the enlarged
// accessibility sizes.
func (c ContentSizeCategory) IsAccessibilityCategory() bool {
	return c >= ContentSizeAccessibilityMedium && int(c) < len(contentSizeNames)
}

// effective maps the unspecified value to ContentSizeLarge.
func (c ContentSizeCategory) effective() ContentSizeCategory {
	if c == ContentSizeUnspecified || int(c) >= len(contentSizeNames) {
		return ContentSizeLarge
	}
	return c
}

// Multiplier returns the scale applied to fonts at this category relative
// to ContentSizeLarge.
func (c ContentSizeCategory) Multiplier() float64 {
	return bodySizes[c.effective()] / bodySizes[ContentSizeLarge]
}

// MarshalText implements encoding.TextMarshaler.
func (c ContentSizeCategory) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts the names
// produced by String.
func (c *ContentSizeCategory) UnmarshalText(b []byte) error {
	s := string(b)
	for i, name := range contentSizeNames {
		if name == s {
			*c = ContentSizeCategory(i)
			return nil
		}
	}
	return fmt.Errorf("a11ykit: unknown content size category %q", s)
}

// --- FontRef ---

// FontRef describes the font assigned to a node.
type FontRef struct {
	Family   string
	Size     float64   // current point size
	BaseSize float64   // size at ContentSizeLarge; 0 means Size
	Style    TextStyle // TextStyleNone for explicitly sized fonts
	Scalable bool      // produced by a FontMetrics; follows the content size
	Face     Font      // optional renderable face
}

// baseSize returns the unscaled point size of f.
func (f *FontRef) baseSize() float64 {
	if f.BaseSize > 0 {
		return f.BaseSize
	}
	return f.Size
}

// FontMetrics produces fonts scaled for the user's content size.
type FontMetrics interface {
	// ScaledFont returns a scalable copy of f following style's size curve.
	// A nil f yields the preferred font for style.
	ScaledFont(f *FontRef, style TextStyle) *FontRef
	// PreferredFont returns the system font for style at the current size.
	PreferredFont(style TextStyle) *FontRef
}

// NewFontMetrics returns the default FontMetrics for category.
func NewFontMetrics(category ContentSizeCategory) FontMetrics {
	return contentSizeMetrics{category: category.effective()}
}

type contentSizeMetrics struct {
	category ContentSizeCategory
}

func (m contentSizeMetrics) ScaledFont(f *FontRef, style TextStyle) *FontRef {
	if f == nil {
		return m.PreferredFont(style)
	}
	if f.Style != TextStyleNone {
		style = f.Style
	}
	base := f.baseSize()
	size := base * m.category.Multiplier()
	scaled := &FontRef{
		Family:   f.Family,
		Size:     size,
		BaseSize: base,
		Style:    style,
		Scalable: true,
		Face:     f.Face,
	}
	if r, ok := f.Face.(Resizer); ok && size != f.Size {
		scaled.Face = r.WithSize(size)
	}
	return scaled
}

func (m contentSizeMetrics) PreferredFont(style TextStyle) *FontRef {
	if int(style) >= len(baseStyleSizes) {
		style = TextStyleBody
	}
	base := baseStyleSizes[style]
	return &FontRef{
		Family:   "system",
		Size:     base * m.category.Multiplier(),
		BaseSize: base,
		Style:    style,
		Scalable: true,
	}
}

// --- TTFFont ---

// TTFFont wraps Ebitengine's text/v2 for TrueType font measurement.
type TTFFont struct {
	face   *text.GoTextFace
	source *text.GoTextFaceSource
	lh     float64 // cached line height
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("a11ykit: failed to parse TTF data: %w", err)
	}
	return newTTFFont(source, size), nil
}

func newTTFFont(source *text.GoTextFaceSource, size float64) *TTFFont {
	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}
	m := face.Metrics()
	return &TTFFont{
		face:   face,
		source: source,
		lh:     m.HAscent + m.HDescent + m.HLineGap,
	}
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Size returns the face's point size.
func (f *TTFFont) Size() float64 {
	return f.face.Size
}

// WithSize returns a face sharing this font's source at a new size.
func (f *TTFFont) WithSize(size float64) Font {
	return newTTFFont(f.source, size)
}

// Face returns the underlying GoTextFace for direct Ebitengine text/v2 rendering.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}
