package query

import (
	"errors"
	"fmt"

	"github.com/0xalexb/hjarta-config/value"
)

// ErrPathNotFound is returned when a segment or key cannot be resolved.
var ErrPathNotFound = errors.New("path not found")

// NotFoundError names the segment at which resolution stopped.
type NotFoundError struct {
	Segment string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: at segment %q", ErrPathNotFound, e.Segment)
}

func (e *NotFoundError) Unwrap() error {
	return ErrPathNotFound
}

// Resolve walks tree along expr. Every parent segment must name a key of a
// mapping. Every terminal key must exist in the same mapping; otherwise no
// partial result is returned.
func Resolve(tree value.Node, expr Expression) (Result, error) {
	if len(expr.Keys) == 0 {
		return Result{}, &NotFoundError{Segment: ""}
	}

	current := tree

	for _, segment := range expr.Parents() {
		next, err := lookup(current, segment)
		if err != nil {
			return Result{}, err
		}

		current = next
	}

	nodes := make([]value.Node, 0, len(expr.Keys))

	for _, key := range expr.Keys {
		node, err := lookup(current, key)
		if err != nil {
			return Result{}, err
		}

		nodes = append(nodes, node)
	}

	if !expr.IsMultiKey() {
		return Single(nodes[0]), nil
	}

	return Multiple(nodes...), nil
}

// Lookup parses path with separator and resolves it against tree.
func Lookup(tree value.Node, path, separator string) (Result, error) {
	return Resolve(tree, Parse(path, separator))
}

// lookup never matches the empty key, so an empty path always fails.
func lookup(current value.Node, key string) (value.Node, error) {
	if key == "" || current.Kind() != value.MappingKind {
		return value.Node{}, &NotFoundError{Segment: key}
	}

	node, ok := current.Get(key)
	if !ok {
		return value.Node{}, &NotFoundError{Segment: key}
	}

	return node, nil
}
