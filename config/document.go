package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/0xalexb/hjarta-config/format"
	"github.com/0xalexb/hjarta-config/query"
	"github.com/0xalexb/hjarta-config/value"
)

// ErrEmptySeparator is returned when a Document is configured with an empty separator.
var ErrEmptySeparator = errors.New("separator must not be empty")

// Document gives read-only, path-addressed access to a configuration tree.
// It is immutable once built and safe for concurrent use.
type Document struct {
	root        value.Node
	separator   string
	environment string
	logger      *slog.Logger
}

// New creates a Document over root.
func New(root value.Node, opts ...Option) (*Document, error) {
	options := NewOptions(opts...)

	if options.Separator == "" {
		return nil, ErrEmptySeparator
	}

	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Document{
		root:        root,
		separator:   options.Separator,
		environment: options.Environment,
		logger:      logger,
	}, nil
}

// Root returns the whole configuration tree.
func (d *Document) Root() value.Node {
	return d.root
}

// Separator returns the delimiter between path segments.
func (d *Document) Separator() string {
	return d.separator
}

// Environment returns the environment tag, if one was set.
func (d *Document) Environment() (string, bool) {
	return d.environment, d.environment != ""
}

// Get resolves path. It reports false when any segment or key is missing.
func (d *Document) Get(path string) (query.Result, bool) {
	result, err := query.Lookup(d.root, path, d.separator)
	if err != nil {
		d.logger.Debug("configuration path not found",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)

		return query.Result{}, false
	}

	return result, true
}

// Str returns the display string at path, or "" when the path is missing.
// For a multi-key path only the first key is used.
func (d *Document) Str(path string) string {
	result, found := d.Get(path)
	if !found {
		return ""
	}

	return value.Display(result.Node())
}

// List returns the display strings of the sequence at path.
// Missing paths and non-sequence nodes yield an empty list.
func (d *Document) List(path string) []string {
	result, found := d.Get(path)
	if !found {
		return []string{}
	}

	return value.DisplayList(result.Node())
}

// Fmt renders template with the values at path, substituted in the order
// their keys appear in the path. A missing path renders as "".
// A template whose placeholder count differs from the number of keys
// returns an error wrapping format.ErrArity.
func (d *Document) Fmt(template, path string) (string, error) {
	result, found := d.Get(path)
	if !found {
		return "", nil
	}

	nodes := result.Nodes()
	values := make([]string, 0, len(nodes))

	for _, node := range nodes {
		values = append(values, value.Display(node))
	}

	formatted, err := format.Positional(template, values)
	if err != nil {
		return "", fmt.Errorf("formatting %q: %w", path, err)
	}

	return formatted, nil
}
