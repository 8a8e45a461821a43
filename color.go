package a11ykit

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

var (
	// ColorWhite is the background assumed when no node in the ancestor
	// chain declares one.
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
)

// RGB returns an opaque color.
func RGB(r, g, b float64) Color {
	return Color{r, g, b, 1}
}

// ColorFromHex parses "#rgb" or "#rrggbb" notation into an opaque Color.
func ColorFromHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("a11ykit: parse color %q: %w", s, err)
	}
	return Color{c.R, c.G, c.B, 1}, nil
}

// Hex formats the color's RGB channels as "#rrggbb". Alpha is dropped.
func (c Color) Hex() string {
	return colorful.Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}.Hex()
}

// ToRGBA converts the color to a premultiplied color.RGBA for drawing.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func (c Color) String() string {
	return fmt.Sprintf("rgba(%.3f, %.3f, %.3f, %.3f)", c.R, c.G, c.B, c.A)
}

// --- WCAG contrast ---

// Luminance returns the relative luminance of c in [0, 1] as defined by
// WCAG 2.x. Alpha is ignored.
func Luminance(c Color) float64 {
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

// linearize converts one sRGB channel to linear light.
func linearize(ch float64) float64 {
	if ch <= 0.03928 {
		return ch / 12.92
	}
	return math.Pow((ch+0.055)/1.055, 2.4)
}

// ContrastRatio returns the WCAG contrast ratio between a and b, in [1, 21].
// The result is symmetric in its arguments.
func ContrastRatio(a, b Color) float64 {
	la, lb := Luminance(a), Luminance(b)
	return (math.Max(la, lb) + 0.05) / (math.Min(la, lb) + 0.05)
}

// MeetsMinimumContrast reports whether c against bg reaches minimum.
func MeetsMinimumContrast(c, bg Color, minimum float64) bool {
	return ContrastRatio(c, bg) >= minimum
}

const (
	contrastStep          = 0.05
	contrastMaxIterations = 40 // a full 0→1 sweep takes 20 steps
)

// adjustStop records why adjustForContrast returned.
type adjustStop uint8

const (
	stopTargetMet adjustStop = iota
	stopSaturated
	stopStalled
	stopIterationCap
)

// AdjustedForContrast returns fg pushed away from bg until the contrast ratio
// reaches target. When fg is lighter than bg every channel is raised toward
// 1, otherwise lowered toward 0, in steps of 0.05. If the target cannot be
// met the best color reached is returned. Alpha is preserved.
func AdjustedForContrast(fg, bg Color, target float64) Color {
	c, _, _ := adjustForContrast(fg, bg, target)
	return c
}

func adjustForContrast(fg, bg Color, target float64) (Color, int, adjustStop) {
	best := fg
	bestRatio := ContrastRatio(fg, bg)
	if bestRatio >= target {
		return best, 0, stopTargetMet
	}

	step := -contrastStep
	if Luminance(fg) > Luminance(bg) {
		step = contrastStep
	}

	cur := fg
	for i := 0; i < contrastMaxIterations; i++ {
		next := Color{
			R: clamp01(cur.R + step),
			G: clamp01(cur.G + step),
			B: clamp01(cur.B + step),
			A: cur.A,
		}
		if next == cur {
			return best, i, stopSaturated
		}
		ratio := ContrastRatio(next, bg)
		if ratio <= bestRatio {
			return best, i, stopStalled
		}
		best, bestRatio, cur = next, ratio, next
		if ratio >= target {
			return best, i + 1, stopTargetMet
		}
	}
	return best, contrastMaxIterations, stopIterationCap
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
