package query

import "github.com/0xalexb/hjarta-config/value"

// Result is the outcome of a successful resolution: one node, or several
// sibling nodes in the order their keys were declared.
type Result struct {
	nodes    []value.Node
	multiple bool
}

// Single returns a Result holding one node.
func Single(node value.Node) Result {
	return Result{nodes: []value.Node{node}, multiple: false}
}

// Multiple returns a Result holding nodes in order.
func Multiple(nodes ...value.Node) Result {
	return Result{nodes: append([]value.Node(nil), nodes...), multiple: true}
}

// IsMultiple reports whether the result came from a multi-key segment.
func (r Result) IsMultiple() bool {
	return r.multiple
}

// Len returns the number of resolved nodes.
func (r Result) Len() int {
	return len(r.nodes)
}

// Node returns the single resolved node, or the first one of a multiple result.
func (r Result) Node() value.Node {
	if len(r.nodes) == 0 {
		return value.Node{}
	}

	return r.nodes[0]
}

// Nodes returns a copy of the resolved nodes.
func (r Result) Nodes() []value.Node {
	return append([]value.Node(nil), r.nodes...)
}
