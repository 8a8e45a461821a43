package htmltree

import (
	"strconv"
	"strings"

	"github.com/phanxgames/a11ykit"
)

var namedColors = map[string]a11ykit.Color{
	"white":  a11ykit.ColorWhite,
	"black":  a11ykit.ColorBlack,
	"gray":   a11ykit.RGB(0.5, 0.5, 0.5),
	"grey":   a11ykit.RGB(0.5, 0.5, 0.5),
	"silver": a11ykit.RGB(0.75, 0.75, 0.75),
	"red":    a11ykit.RGB(1, 0, 0),
	"green":  a11ykit.RGB(0, 0.5, 0),
	"blue":   a11ykit.RGB(0, 0, 1),
	"yellow": a11ykit.RGB(1, 1, 0),
	"orange": a11ykit.RGB(1, 0.647, 0),
	"navy":   a11ykit.RGB(0, 0, 0.5),
}

// parseStyle splits an inline style attribute into lower-cased property
// names and their values. Later declarations win.
func parseStyle(s string) map[string]string {
	decls := map[string]string{}
	for _, decl := range strings.Split(s, ";") {
		prop, val, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		val = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(val), "!important"))
		if prop != "" && val != "" {
			decls[prop] = val
		}
	}
	return decls
}

func applyStyle(n *a11ykit.Node, decls map[string]string) {
	if c, ok := parseColor(decls["color"]); ok {
		n.TextColor = &c
	}
	bg := decls["background-color"]
	if bg == "" {
		bg = decls["background"]
	}
	if c, ok := parseColor(bg); ok {
		n.BackgroundColor = &c
	}
	if decls["display"] == "none" || decls["visibility"] == "hidden" {
		n.Hidden = true
	}
	if v, err := strconv.ParseFloat(decls["opacity"], 64); err == nil {
		n.Alpha = min(max(v, 0), 1)
	}
	if f := parseFontSize(decls["font-size"]); f != nil {
		f.Family = strings.Trim(strings.Split(decls["font-family"], ",")[0], `"' `)
		n.Font = f
	}
	n.Bounds.Width = parsePixels(decls["width"])
	n.Bounds.Height = parsePixels(decls["height"])
}

// parseColor accepts #rgb, #rrggbb, rgb(r, g, b) with 0-255 channels and a
// handful of named colors.
func parseColor(s string) (a11ykit.Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "":
		return a11ykit.Color{}, false
	case strings.HasPrefix(s, "#"):
		c, err := a11ykit.ColorFromHex(s)
		return c, err == nil
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		parts := strings.Split(s[len("rgb("):len(s)-1], ",")
		if len(parts) != 3 {
			return a11ykit.Color{}, false
		}
		var ch [3]float64
		for i, p := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return a11ykit.Color{}, false
			}
			ch[i] = min(max(v, 0), 255) / 255
		}
		return a11ykit.RGB(ch[0], ch[1], ch[2]), true
	}
	c, ok := namedColors[s]
	return c, ok
}

// parseFontSize maps a CSS font-size to a font. Pixel sizes are fixed;
// rem and em sizes follow the user's setting and count as scalable.
func parseFontSize(s string) *a11ykit.FontRef {
	switch {
	case strings.HasSuffix(s, "rem"), strings.HasSuffix(s, "em"):
		v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSuffix(s, "rem"), "em"), 64)
		if err != nil || v <= 0 {
			return nil
		}
		size := v * rootFontSize
		return &a11ykit.FontRef{Size: size, BaseSize: size, Scalable: true}
	case strings.HasSuffix(s, "px"), strings.HasSuffix(s, "pt"):
		v, err := strconv.ParseFloat(s[:len(s)-2], 64)
		if err != nil || v <= 0 {
			return nil
		}
		return &a11ykit.FontRef{Size: v}
	}
	return nil
}

func parsePixels(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
