// Package a11ykit inspects and remediates trees of UI elements for
// accessibility: missing screen-reader labels, fonts that do not follow the
// user's content size, and text whose contrast against its background is
// too low.
//
// It works in two modes. Optimize fixes what it finds by mutating attributes
// of existing nodes. Audit enumerates the same conditions as [Issue] values
// without touching anything.
//
// # Quick start
//
//	root := a11ykit.NewContainer("screen")
//	title := a11ykit.NewLabel("title", "Settings")
//	title.SetTextColor(a11ykit.RGB(0.66, 0.66, 0.66))
//	root.SetBackgroundColor(a11ykit.ColorWhite)
//	root.AddChild(title)
//
//	engine := a11ykit.Shared()
//	for _, issue := range engine.AuditAll(root, a11ykit.OptionsAll) {
//		fmt.Println(issue)
//	}
//	engine.OptimizeAll(root, a11ykit.OptionsAll)
//	fmt.Print(engine.GenerateReport(root))
//
// # Node tree
//
// Every element is a [Node] with a [NodeKind] tag drawn from a closed set
// (labels, buttons, text fields, images, tables and so on). Nodes form a tree
// through [Node.AddChild]; the engine never creates or removes nodes. The
// [htmltree] sub-package and [LoadSnapshot] build trees from HTML pages and
// JSON snapshots.
//
// # Strategies
//
// Three strategies cover VoiceOver labels and traits, Dynamic Type font
// scaling, and WCAG color contrast. Each has an optimizer and an auditor that
// agree on what counts as a problem. [Options] selects which run; each must
// also be enabled in the [Config].
//
// The walker visits nodes in pre-order and skips a node together with its
// whole subtree when it is hidden, transparent, too small, or excluded by tag
// or class name.
//
// # Threading
//
// An [Engine] belongs to the goroutine that owns the UI tree. Other
// goroutines submit work with [Engine.OptimizeAsync]; the owner runs it by
// calling [Engine.Update] from its frame loop, the same way an Ebitengine
// game calls its scene's Update.
//
// # Extras
//
// [Engine.ContrastTweens] animates contrast corrections with [gween].
// [Overlay] outlines flagged nodes on an Ebitengine screen. The ecs
// sub-module forwards audit issues into a [Donburi] world.
//
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
// [htmltree]: https://pkg.go.dev/github.com/phanxgames/a11ykit/htmltree
package a11ykit
