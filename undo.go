package a11ykit

import "weak"

// OptimizationRecord notes one per-node optimization. The node reference is
// weak; the undo stack never keeps a node alive.
type OptimizationRecord struct {
	node    weak.Pointer[Node]
	NodeID  uint32
	Applied Options
}

// Node returns the optimized node, or nil if it has been released.
func (r OptimizationRecord) Node() *Node {
	return r.node.Value()
}

// UndoStack is a LIFO history of optimizations. It is not safe for
// concurrent use; the engine confines it to the UI goroutine.
type UndoStack struct {
	records []OptimizationRecord
}

// Push records that opts were applied to n.
func (s *UndoStack) Push(n *Node, opts Options) {
	s.records = append(s.records, OptimizationRecord{
		node:    weak.Make(n),
		NodeID:  n.ID,
		Applied: opts,
	})
}

// Pop removes and returns the most recent record. ok is false when the
// stack is empty.
func (s *UndoStack) Pop() (rec OptimizationRecord, ok bool) {
	if len(s.records) == 0 {
		return OptimizationRecord{}, false
	}
	last := len(s.records) - 1
	rec = s.records[last]
	s.records[last] = OptimizationRecord{}
	s.records = s.records[:last]
	return rec, true
}

// Len returns the number of records.
func (s *UndoStack) Len() int {
	return len(s.records)
}

// Clear drops every record.
func (s *UndoStack) Clear() {
	clear(s.records)
	s.records = s.records[:0]
}

// UndoLast pops the most recent record. When the record includes the
// VoiceOver strategy it resets that node's accessibility state: element
// flag, label, hint and traits. Font and color changes are kept, and
// records without VoiceOver leave the node untouched. It returns the popped
// record; ok is false when the stack was empty. A record whose node has
// been released is popped without effect.
func (s *UndoStack) UndoLast() (rec OptimizationRecord, ok bool) {
	rec, ok = s.Pop()
	if !ok {
		return rec, false
	}
	if n := rec.Node(); n != nil && rec.Applied.Has(OptionVoiceOver) {
		resetAccessibility(n)
	}
	return rec, true
}

func resetAccessibility(n *Node) {
	n.IsAccessibilityElement = false
	n.AccessibilityLabel = ""
	n.AccessibilityHint = ""
	n.Traits = TraitNone
}
