package value

import (
	"errors"
	"fmt"
)

// ErrDuplicateKey is returned when a mapping is built with the same key twice.
var ErrDuplicateKey = errors.New("duplicate mapping key")

// Kind identifies which variant a Node holds.
type Kind int

const (
	// ScalarKind is a leaf value stored as text.
	ScalarKind Kind = iota
	// SequenceKind is an ordered list of nodes.
	SequenceKind
	// MappingKind is an ordered set of keyed nodes.
	MappingKind
)

func (k Kind) String() string {
	switch k {
	case ScalarKind:
		return "scalar"
	case SequenceKind:
		return "sequence"
	case MappingKind:
		return "mapping"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Entry is a single key/value pair of a mapping.
type Entry struct {
	Key   string
	Value Node
}

// Node is an immutable configuration value. The zero Node is an empty scalar.
type Node struct {
	kind    Kind
	text    string
	items   []Node
	entries []Entry
	index   map[string]int
}

// Scalar returns a leaf node holding text.
func Scalar(text string) Node {
	return Node{kind: ScalarKind, text: text}
}

// Sequence returns a node holding a copy of items.
func Sequence(items ...Node) Node {
	return Node{kind: SequenceKind, items: append([]Node(nil), items...)}
}

// Mapping returns a node holding entries in the given order.
// Keys must be unique.
func Mapping(entries ...Entry) (Node, error) {
	index := make(map[string]int, len(entries))

	for i, entry := range entries {
		if _, exists := index[entry.Key]; exists {
			return Node{}, fmt.Errorf("%w: %q", ErrDuplicateKey, entry.Key)
		}

		index[entry.Key] = i
	}

	return Node{
		kind:    MappingKind,
		entries: append([]Entry(nil), entries...),
		index:   index,
	}, nil
}

// Kind reports the variant of the node.
func (n Node) Kind() Kind {
	return n.kind
}

// Text returns the canonical text of a scalar, or "" for composite nodes.
func (n Node) Text() string {
	if n.kind != ScalarKind {
		return ""
	}

	return n.text
}

// Len returns the number of items of a sequence or entries of a mapping.
// Scalars have length zero.
func (n Node) Len() int {
	switch n.kind {
	case SequenceKind:
		return len(n.items)
	case MappingKind:
		return len(n.entries)
	case ScalarKind:
		return 0
	default:
		return 0
	}
}

// Items returns a copy of the items of a sequence, or nil for other kinds.
func (n Node) Items() []Node {
	if n.kind != SequenceKind {
		return nil
	}

	return append([]Node(nil), n.items...)
}

// Entries returns a copy of the entries of a mapping, or nil for other kinds.
func (n Node) Entries() []Entry {
	if n.kind != MappingKind {
		return nil
	}

	return append([]Entry(nil), n.entries...)
}

// Keys returns the keys of a mapping in document order.
func (n Node) Keys() []string {
	if n.kind != MappingKind {
		return nil
	}

	keys := make([]string, 0, len(n.entries))
	for _, entry := range n.entries {
		keys = append(keys, entry.Key)
	}

	return keys
}

// Get looks up key in a mapping. It reports false when the node is not a
// mapping or the key is absent.
func (n Node) Get(key string) (Node, bool) {
	if n.kind != MappingKind {
		return Node{}, false
	}

	i, ok := n.index[key]
	if !ok {
		return Node{}, false
	}

	return n.entries[i].Value, true
}
