// Package htmltree builds a11ykit node trees from HTML documents.
//
// Elements are mapped to node kinds by tag, input type and ARIA role.
// Inline style declarations supply colors, opacity, visibility and font
// sizes; stylesheets are not evaluated.
package htmltree

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/phanxgames/a11ykit"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// rootFontSize converts rem and em font sizes to points.
const rootFontSize = 16

// Parse reads an HTML document and returns a node tree rooted at a
// container for <body>.
func Parse(r io.Reader) (*a11ykit.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("a11ykit/htmltree: parse HTML: %w", err)
	}
	body := findBody(doc)
	if body == nil {
		return nil, fmt.Errorf("a11ykit/htmltree: document has no body")
	}
	root := convert(body)
	return root, nil
}

// ParseString is Parse for an in-memory document.
func ParseString(s string) (*a11ykit.Node, error) {
	return Parse(strings.NewReader(s))
}

// ParseBytes is Parse for an in-memory document.
func ParseBytes(b []byte) (*a11ykit.Node, error) {
	return Parse(bytes.NewReader(b))
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Body {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}

// convert maps el and its element descendants to nodes. Leaf kinds take
// their text from the element's content and do not get child nodes.
func convert(el *html.Node) *a11ykit.Node {
	kind := kindOf(el)
	n := a11ykit.NewNode(kind, attr(el, "id"))
	n.UserData = el.Data
	applyAttributes(n, el)

	switch kind {
	case a11ykit.KindLabel, a11ykit.KindTextView:
		n.Text = collectText(el)
		return n
	case a11ykit.KindButton:
		n.Title = collectText(el)
		if n.Title == "" {
			n.Title = attr(el, "value")
		}
		n.Interactive = true
		return n
	case a11ykit.KindTextField, a11ykit.KindSearchBar:
		n.Placeholder = attr(el, "placeholder")
		n.Interactive = true
		return n
	case a11ykit.KindImageView:
		n.HasImage = attr(el, "src") != ""
		if alt := attr(el, "alt"); alt != "" && n.AccessibilityLabel == "" {
			n.AccessibilityLabel = alt
		}
		return n
	case a11ykit.KindSwitch, a11ykit.KindSlider:
		n.Interactive = true
		return n
	}

	for c := el.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || skipped(c) {
			continue
		}
		n.AddChild(convert(c))
	}
	return n
}

func skipped(el *html.Node) bool {
	switch el.DataAtom {
	case atom.Script, atom.Style, atom.Noscript, atom.Template, atom.Head, atom.Meta, atom.Link, atom.Br:
		return true
	}
	return false
}

func kindOf(el *html.Node) a11ykit.NodeKind {
	switch attr(el, "role") {
	case "button":
		return a11ykit.KindButton
	case "switch":
		return a11ykit.KindSwitch
	case "slider":
		return a11ykit.KindSlider
	case "img":
		return a11ykit.KindImageView
	case "searchbox", "search":
		return a11ykit.KindSearchBar
	case "textbox":
		return a11ykit.KindTextField
	case "tablist", "radiogroup":
		return a11ykit.KindSegmentedControl
	case "grid":
		return a11ykit.KindCollectionView
	case "list", "table":
		return a11ykit.KindTableView
	case "heading":
		return a11ykit.KindLabel
	}

	switch el.DataAtom {
	case atom.Label, atom.Span, atom.P, atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6,
		atom.A, atom.Strong, atom.Em, atom.Small, atom.Li, atom.Td, atom.Th, atom.Legend, atom.Caption:
		return a11ykit.KindLabel
	case atom.Button:
		return a11ykit.KindButton
	case atom.Textarea:
		return a11ykit.KindTextView
	case atom.Img, atom.Svg, atom.Picture:
		return a11ykit.KindImageView
	case atom.Table, atom.Ul, atom.Ol:
		return a11ykit.KindTableView
	case atom.Select:
		return a11ykit.KindSegmentedControl
	case atom.Input:
		switch strings.ToLower(attr(el, "type")) {
		case "button", "submit", "reset", "image":
			return a11ykit.KindButton
		case "search":
			return a11ykit.KindSearchBar
		case "checkbox":
			return a11ykit.KindSwitch
		case "range":
			return a11ykit.KindSlider
		case "hidden":
			return a11ykit.KindGeneric
		default:
			return a11ykit.KindTextField
		}
	}
	return a11ykit.KindGeneric
}

func applyAttributes(n *a11ykit.Node, el *html.Node) {
	if class := strings.Fields(attr(el, "class")); len(class) > 0 {
		n.ClassName = class[0]
	}
	if tag, err := strconv.Atoi(attr(el, "data-tag")); err == nil {
		n.Tag = tag
	}
	n.AccessibilityLabel = attr(el, "aria-label")
	n.AccessibilityHint = attr(el, "title")
	if attr(el, "aria-hidden") == "true" {
		n.AccessibilityElementsHidden = true
	}
	if hasAttr(el, "hidden") || strings.ToLower(attr(el, "type")) == "hidden" {
		n.Hidden = true
	}
	if level := headingLevel(el); level > 0 {
		n.Traits |= a11ykit.TraitHeader
	}
	if hasAttr(el, "disabled") {
		n.Traits |= a11ykit.TraitNotEnabled
	}
	applyStyle(n, parseStyle(attr(el, "style")))
}

func headingLevel(el *html.Node) int {
	switch el.DataAtom {
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return int(el.Data[1] - '0')
	}
	if attr(el, "role") == "heading" {
		return 1
	}
	return 0
}

func attr(el *html.Node, key string) string {
	for _, a := range el.Attr {
		if a.Key == key {
			return strings.TrimSpace(a.Val)
		}
	}
	return ""
}

func hasAttr(el *html.Node, key string) bool {
	for _, a := range el.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

// collectText returns the whitespace-normalized text content of el.
func collectText(el *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		if n.Type == html.ElementNode && skipped(n) {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(el)
	return strings.Join(strings.Fields(b.String()), " ")
}
