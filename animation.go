package a11ykit

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously. Create one via
// the convenience constructors (TweenColor, TweenAlpha) and call Update(dt)
// each frame. The group writes values directly into the target fields.
//
// There is no global animation manager; users call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenColor creates a TweenGroup that animates all four components of c
// (R, G, B, A) to the target color over the specified duration.
func TweenColor(c *Color, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 4}
	g.tweens[0] = gween.New(float32(c.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(c.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(c.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(c.A), float32(to.A), duration, fn)
	g.fields[0] = &c.R
	g.fields[1] = &c.G
	g.fields[2] = &c.B
	g.fields[3] = &c.A
	return g
}

// TweenAlpha creates a TweenGroup that animates node.Alpha to the target value
// over the specified duration using the easing function.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(node.Alpha), float32(to), duration, fn)
	g.fields[0] = &node.Alpha
	return g
}

// tween gives the slot a private copy of the current color and animates it
// toward the corrected one.
func (f colorFix) tween(duration float32, fn ease.TweenFunc) *ContrastTween {
	c := f.from
	*f.slot.color = &c
	return &ContrastTween{
		TweenGroup: TweenColor(&c, f.to, duration, fn),
		target:     &c,
		to:         f.to,
	}
}

// ContrastTweens is the animated form of the color contrast optimizer. For
// every node under root whose text fails the minimum contrast it returns a
// TweenGroup that moves the text color to the corrected value, and records
// the node on the undo stack. Call Update on each group every frame; once a
// group is Done its color equals what OptimizeColorContrast would have set.
func (e *Engine) ContrastTweens(root *Node, duration float32, fn ease.TweenFunc) []*ContrastTween {
	cfg := &e.cfg
	if root == nil || !cfg.Enabled || !cfg.EnableColorContrastOptimization {
		return nil
	}
	var out []*ContrastTween
	Walk(root, cfg, func(n *Node) {
		fixes := contrastFixes(n, cfg)
		if len(fixes) == 0 {
			return
		}
		for _, f := range fixes {
			out = append(out, f.tween(duration, fn))
		}
		e.undo.Push(n, OptionColorContrast)
	})
	return out
}

// ContrastTween is a TweenGroup that snaps to its exact target color when it
// finishes; gween works in float32 and can stop a hair short.
type ContrastTween struct {
	*TweenGroup
	target *Color
	to     Color
}

// Update advances the tween by dt seconds.
func (t *ContrastTween) Update(dt float32) {
	if t.Done {
		return
	}
	t.TweenGroup.Update(dt)
	if t.Done {
		*t.target = t.to
	}
}
