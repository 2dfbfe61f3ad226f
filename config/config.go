package config

import (
	"fmt"
	"log/slog"

	"github.com/0xalexb/hjarta-config/value"
)

// Parser defines an interface for turning raw configuration data into a value tree.
// See config/parser/yaml for the YAML implementation.
type Parser interface {
	Parse(data []byte) (value.Node, error)
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Load reads data from fetcher, parses it and builds a Document.
func Load(parser Parser, fetcher DataFetcher, opts ...Option) (*Document, error) {
	data, err := fetcher.Fetch()
	if err != nil {
		return nil, fmt.Errorf("reading data error: %w", err)
	}

	root, err := parser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing error: %w", err)
	}

	doc, err := New(root, opts...)
	if err != nil {
		return nil, err
	}

	env, _ := doc.Environment()
	doc.logger.Info("configuration loaded",
		slog.String("environment", env),
		slog.String("separator", doc.separator),
		slog.Int("keys", root.Len()),
	)

	return doc, nil
}

// Provider returns a function that loads a Document from the given Parser and DataFetcher.
// This pattern is Fx-friendly: the function can be passed to fx.Provide directly.
func Provider(opts ...Option) func(Parser, DataFetcher) (*Document, error) {
	return func(parser Parser, fetcher DataFetcher) (*Document, error) {
		return Load(parser, fetcher, opts...)
	}
}
