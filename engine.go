package a11ykit

import (
	"sync"

	"go.uber.org/zap"
)

// IssueStore is the interface for optional ECS integration.
// When set on an Engine, every issue produced by an audit is forwarded to it.
type IssueStore interface {
	EmitIssue(issue Issue)
}

// Engine owns the configuration, the undo history and the logger, and runs
// the strategies over node trees.
//
// An Engine is confined to the goroutine that owns the UI tree. Optimize,
// UndoLast and UpdateConfiguration take no locks; only OptimizeAsync may be
// called from other goroutines.
type Engine struct {
	cfg     Config
	undo    UndoStack
	metrics FontMetrics // nil follows cfg.PreferredContentSizeCategory
	log     engineLog
	store   IssueStore
	queue   workQueue
}

// NewEngine creates an engine with the default configuration and an empty
// undo stack.
func NewEngine() *Engine {
	return &Engine{
		cfg: DefaultConfig(),
		log: newEngineLog(),
	}
}

var shared = sync.OnceValue(NewEngine)

// Shared returns the process-wide engine.
func Shared() *Engine {
	return shared()
}

// --- Configuration ---

// Configuration returns a copy of the current configuration.
func (e *Engine) Configuration() Config {
	return e.cfg.Clone()
}

// UpdateConfiguration replaces the configuration wholesale. Nothing of the
// previous configuration carries over.
func (e *Engine) UpdateConfiguration(cfg Config) {
	e.cfg = cfg.Clone()
	e.info("updated configuration", zap.Stringer("logLevel", e.cfg.LogLevel))
}

// SetFontMetrics overrides the FontMetrics used by the Dynamic Type
// optimizer. nil restores the default, which follows the configuration's
// preferred content size category.
func (e *Engine) SetFontMetrics(m FontMetrics) {
	e.metrics = m
}

func (e *Engine) fontMetrics() FontMetrics {
	if e.metrics != nil {
		return e.metrics
	}
	return NewFontMetrics(e.cfg.PreferredContentSizeCategory)
}

// SetIssueStore sets the optional ECS bridge.
func (e *Engine) SetIssueStore(store IssueStore) {
	e.store = store
}

// --- Logging ---

// SetLogger routes engine log output to l. nil discards it.
func (e *Engine) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	e.log.zl = l
}

// SetLoggingEnabled enables or disables engine log output.
func (e *Engine) SetLoggingEnabled(enabled bool) {
	e.log.enabled = enabled
	e.info("logging enabled")
}

func (e *Engine) debug(msg string, fields ...zap.Field) {
	e.log.log(e.cfg.LogLevel, LogLevelDebug, msg, fields...)
}

func (e *Engine) info(msg string, fields ...zap.Field) {
	e.log.log(e.cfg.LogLevel, LogLevelInfo, msg, fields...)
}

func (e *Engine) warn(msg string, fields ...zap.Field) {
	e.log.log(e.cfg.LogLevel, LogLevelWarning, msg, fields...)
}

func nodeFields(n *Node) []zap.Field {
	return []zap.Field{
		zap.Uint32("node", n.ID),
		zap.Stringer("kind", n.Kind),
		zap.String("name", Identifier(n)),
	}
}

// --- Optimization ---

// Optimize applies the strategies selected by opts to n alone. Nothing
// happens when the engine is disabled or n is excluded. A record is pushed
// onto the undo stack whenever at least one strategy ran.
func (e *Engine) Optimize(n *Node, opts Options) {
	if n == nil || !e.cfg.Enabled || !ShouldProcess(n, &e.cfg) {
		return
	}
	e.optimizeNode(n, opts)
}

// OptimizeAll applies the strategies selected by opts to root and every
// descendant that the walker does not exclude.
func (e *Engine) OptimizeAll(root *Node, opts Options) {
	if root == nil || !e.cfg.Enabled {
		return
	}
	count := 0
	Walk(root, &e.cfg, func(n *Node) {
		if e.optimizeNode(n, opts) != 0 {
			count++
		}
	})
	e.info("optimized tree",
		zap.String("root", Identifier(root)),
		zap.Stringer("options", opts),
		zap.Int("nodes", count))
}

func (e *Engine) optimizeNode(n *Node, opts Options) Options {
	cfg := &e.cfg
	var applied Options
	if opts.Has(OptionVoiceOver) && cfg.EnableVoiceOverOptimization {
		optimizeVoiceOver(n, cfg)
		applied |= OptionVoiceOver
	}
	if opts.Has(OptionDynamicType) && cfg.EnableDynamicType {
		optimizeDynamicType(n, cfg, e.fontMetrics())
		applied |= OptionDynamicType
	}
	if opts.Has(OptionColorContrast) && cfg.EnableColorContrastOptimization {
		optimizeColorContrast(n, cfg)
		applied |= OptionColorContrast
	}
	if applied != 0 {
		e.undo.Push(n, applied)
		e.debug("optimized node", append(nodeFields(n), zap.Stringer("applied", applied))...)
	}
	return applied
}

// OptimizeVoiceOver runs only the VoiceOver optimizer on n.
func (e *Engine) OptimizeVoiceOver(n *Node) {
	e.Optimize(n, OptionVoiceOver)
}

// OptimizeDynamicType runs only the Dynamic Type optimizer on n.
func (e *Engine) OptimizeDynamicType(n *Node) {
	e.Optimize(n, OptionDynamicType)
}

// OptimizeColorContrast runs only the color contrast optimizer on n.
func (e *Engine) OptimizeColorContrast(n *Node) {
	e.Optimize(n, OptionColorContrast)
}

// ResetAccessibilityProperties clears n's accessibility element flag, label,
// hint and traits without touching the undo stack.
func (e *Engine) ResetAccessibilityProperties(n *Node) {
	resetAccessibility(n)
	e.info("reset accessibility properties", nodeFields(n)...)
}

// UndoLast pops the most recent optimization. If it ran the VoiceOver
// optimizer, that node's accessibility state is reset; font and color
// changes are kept. It is a no-op on an empty stack.
func (e *Engine) UndoLast() {
	rec, ok := e.undo.UndoLast()
	switch {
	case !ok:
		e.warn("undo with empty history")
	case rec.Node() == nil:
		e.warn("undo target released", zap.Uint32("node", rec.NodeID))
	default:
		e.info("undid optimization", zap.Uint32("node", rec.NodeID), zap.Stringer("applied", rec.Applied))
	}
}

// UndoDepth returns the number of optimizations that can be undone.
func (e *Engine) UndoDepth() int {
	return e.undo.Len()
}

// ClearHistory drops every undo record without touching the nodes.
func (e *Engine) ClearHistory() {
	n := e.undo.Len()
	e.undo.Clear()
	e.debug("cleared undo history", zap.Int("records", n))
}

// --- Audit ---

// Audit reports the issues the strategies selected by opts find on n alone.
// It never mutates n.
func (e *Engine) Audit(n *Node, opts Options) []Issue {
	if n == nil || !ShouldProcess(n, &e.cfg) {
		return nil
	}
	issues := auditNode(n, &e.cfg, opts)
	e.emit(issues)
	return issues
}

// AuditAll reports the issues found on root and every descendant that the
// walker does not exclude, in pre-order. Duplicates are kept; see Dedupe.
func (e *Engine) AuditAll(root *Node, opts Options) []Issue {
	if root == nil {
		return nil
	}
	issues := collectIssues(root, &e.cfg, opts)
	e.emit(issues)
	e.debug("audited tree", zap.String("root", Identifier(root)), zap.Int("issues", len(issues)))
	return issues
}

func (e *Engine) emit(issues []Issue) {
	if e.store == nil {
		return
	}
	for _, is := range issues {
		e.store.EmitIssue(is)
	}
}

// GenerateReport audits the whole tree with every strategy, removes
// duplicate (node, category) pairs and renders the text report.
func (e *Engine) GenerateReport(root *Node) string {
	var issues []Issue
	if root != nil {
		issues = Dedupe(collectIssues(root, &e.cfg, OptionsAll))
	}
	e.info("generated report", zap.Int("issues", len(issues)))
	return RenderReport(issues)
}
