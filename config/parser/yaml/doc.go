// Package yaml provides a YAML parser implementation for the config package.
//
// This package uses github.com/goccy/go-yaml to decode the document with
// ordered maps, then converts the decoded values into a value.Node tree.
// Mapping keys keep their document order, and scalars are stored in their
// canonical text form:
//
//	port: 6379        -> "6379"
//	ratio: 0.50       -> "0.5"
//	enabled: true     -> "true"
//	empty: ~          -> ""
//	limit: .inf       -> ".inf"
//	scale: 1.0        -> "1.0"
//
// Merge keys are expanded; an explicit key overrides the merged value.
//
// Usage:
//
//	parser := yaml.NewParser()
//	root, err := parser.Parse(data)
package yaml
