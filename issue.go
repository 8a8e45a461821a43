package a11ykit

import (
	"fmt"
	"weak"
)

// IssueKind is the category of an accessibility issue.
type IssueKind uint8

const (
	IssueVoiceOver IssueKind = iota
	IssueDynamicType
	IssueColorContrast
)

func (k IssueKind) String() string {
	switch k {
	case IssueVoiceOver:
		return "voiceOver"
	case IssueDynamicType:
		return "dynamicType"
	case IssueColorContrast:
		return "colorContrast"
	default:
		return fmt.Sprintf("IssueKind(%d)", k)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k IssueKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Severity ranks an issue.
type Severity uint8

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
)

func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	default:
		return fmt.Sprintf("Severity(%d)", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Issue is a single detected accessibility violation. Issues are created by
// auditors and never modified afterwards.
//
// The reference to the node is weak: an Issue never keeps a node alive, and
// Node returns nil once the host has released it. NodeID, NodeKind and
// NodeName are captured at creation for reporting.
type Issue struct {
	node weak.Pointer[Node]

	NodeID      uint32    `json:"nodeId"`
	NodeKind    NodeKind  `json:"nodeKind"`
	NodeName    string    `json:"nodeName,omitempty"`
	Kind        IssueKind `json:"kind"`
	Severity    Severity  `json:"severity"`
	Description string    `json:"description"`
	Suggestion  string    `json:"suggestion,omitempty"`
}

func newIssue(n *Node, kind IssueKind, sev Severity, description, suggestion string) Issue {
	return Issue{
		node:        weak.Make(n),
		NodeID:      n.ID,
		NodeKind:    n.Kind,
		NodeName:    n.Name,
		Kind:        kind,
		Severity:    sev,
		Description: description,
		Suggestion:  suggestion,
	}
}

// Node returns the node the issue refers to, or nil if it has been released.
func (i Issue) Node() *Node {
	return i.node.Value()
}

func (i Issue) String() string {
	return fmt.Sprintf("[%s] %s (%s #%d, %s)", i.Kind, i.Description, i.NodeKind, i.NodeID, i.Severity)
}

// issueKey identifies an issue for deduplication.
type issueKey struct {
	node uint32
	kind IssueKind
}

// Dedupe returns issues with at most one entry per (node, kind) pair,
// keeping the first occurrence and the original order.
func Dedupe(issues []Issue) []Issue {
	seen := make(map[issueKey]struct{}, len(issues))
	out := make([]Issue, 0, len(issues))
	for _, is := range issues {
		k := issueKey{is.NodeID, is.Kind}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, is)
	}
	return out
}
