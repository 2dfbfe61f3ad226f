package yaml

import (
	"errors"
	"fmt"

	"github.com/0xalexb/hjarta-config/value"
	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// Parser implements config.Parser interface for YAML data.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes the first YAML document in data into a value tree.
func (p *Parser) Parse(data []byte) (value.Node, error) {
	if len(data) == 0 {
		return value.Node{}, ErrEmptyData
	}

	var decoded any

	err := yaml.UnmarshalWithOptions(data, &decoded, yaml.UseOrderedMap())
	if err != nil {
		return value.Node{}, fmt.Errorf("unmarshal error: %w", err)
	}

	root, err := toNode(decoded)
	if err != nil {
		return value.Node{}, fmt.Errorf("building tree: %w", err)
	}

	return root, nil
}
