package query

import "strings"

// KeySeparator joins sibling keys in the final segment of a path.
const KeySeparator = "+"

// Expression is a parsed path.
type Expression struct {
	// Segments holds the path split on the separator. It is never empty.
	Segments []string
	// Keys holds the final segment split on KeySeparator.
	Keys []string
}

// Parse splits path on separator. Only the final segment is split into
// sibling keys; a "+" inside an earlier segment is part of the key.
// An empty separator keeps the whole path as one segment.
func Parse(path, separator string) Expression {
	segments := []string{path}
	if separator != "" {
		segments = strings.Split(path, separator)
	}

	last := segments[len(segments)-1]

	return Expression{
		Segments: segments,
		Keys:     strings.Split(last, KeySeparator),
	}
}

// Parents returns every segment except the last.
func (e Expression) Parents() []string {
	if len(e.Segments) == 0 {
		return nil
	}

	return e.Segments[:len(e.Segments)-1]
}

// IsMultiKey reports whether the final segment names more than one key.
func (e Expression) IsMultiKey() bool {
	return len(e.Keys) > 1
}
