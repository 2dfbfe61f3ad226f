// Package value provides the immutable tree that holds parsed configuration data.
//
// A Node is one of three kinds:
//   - ScalarKind: a leaf holding its canonical text ("8080", "true", "" for null)
//   - SequenceKind: an ordered list of nodes
//   - MappingKind: string keys mapped to nodes, in document order
//
// Nodes are built once by a parser (see config/parser/yaml) and never mutated.
// Accessors return copies of internal slices, so a Node may be shared freely
// between goroutines.
//
// Display converts a node to the flat string used by lookups and templates:
// scalars yield their text, composite nodes yield "".
package value
