package yaml

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/0xalexb/hjarta-config/value"
	"github.com/goccy/go-yaml"
)

// ErrUnsupportedType is returned when a decoded value has no tree representation.
var ErrUnsupportedType = errors.New("unsupported value type")

// largeFloat is the magnitude from which floats switch to exponent notation.
const largeFloat = 1e21

// toNode converts a value decoded by goccy/go-yaml into a value.Node.
// Parse decodes with UseOrderedMap, so every mapping arrives as a yaml.MapSlice.
func toNode(decoded any) (value.Node, error) {
	switch typed := decoded.(type) {
	case yaml.MapSlice:
		return mapSliceToNode(typed)
	case []any:
		items := make([]value.Node, 0, len(typed))

		for i, item := range typed {
			node, err := toNode(item)
			if err != nil {
				return value.Node{}, fmt.Errorf("item %d: %w", i, err)
			}

			items = append(items, node)
		}

		return value.Sequence(items...), nil
	default:
		text, err := scalarText(decoded)
		if err != nil {
			return value.Node{}, err
		}

		return value.Scalar(text), nil
	}
}

// mapSliceToNode keeps the first position of each key and the last value.
// Merge keys ("<<: *base") expand into the slice ahead of explicit keys, so an
// override replaces the merged value.
func mapSliceToNode(slice yaml.MapSlice) (value.Node, error) {
	entries := make([]value.Entry, 0, len(slice))
	positions := make(map[string]int, len(slice))

	for _, item := range slice {
		entry, err := toEntry(item.Key, item.Value)
		if err != nil {
			return value.Node{}, err
		}

		if i, seen := positions[entry.Key]; seen {
			entries[i] = entry

			continue
		}

		positions[entry.Key] = len(entries)
		entries = append(entries, entry)
	}

	return value.Mapping(entries...)
}

func toEntry(key, item any) (value.Entry, error) {
	keyText, err := scalarText(key)
	if err != nil {
		return value.Entry{}, fmt.Errorf("mapping key: %w", err)
	}

	node, err := toNode(item)
	if err != nil {
		return value.Entry{}, fmt.Errorf("key %q: %w", keyText, err)
	}

	return value.Entry{Key: keyText, Value: node}, nil
}

//nolint:cyclop // one case per scalar type produced by the decoder
func scalarText(decoded any) (string, error) {
	switch typed := decoded.(type) {
	case nil:
		return "", nil
	case string:
		return typed, nil
	case bool:
		return strconv.FormatBool(typed), nil
	case int:
		return strconv.Itoa(typed), nil
	case int8:
		return strconv.FormatInt(int64(typed), 10), nil
	case int16:
		return strconv.FormatInt(int64(typed), 10), nil
	case int32:
		return strconv.FormatInt(int64(typed), 10), nil
	case int64:
		return strconv.FormatInt(typed, 10), nil
	case uint:
		return strconv.FormatUint(uint64(typed), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(typed), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(typed), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(typed), 10), nil
	case uint64:
		return strconv.FormatUint(typed, 10), nil
	case float32:
		return floatText(float64(typed), 32), nil
	case float64:
		return floatText(typed, 64), nil
	case time.Time:
		return typed.Format(time.RFC3339Nano), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedType, decoded)
	}
}

// floatText renders the shortest text that round-trips, using YAML
// spellings for infinities and NaN. Whole floats keep ".0" so they stay
// distinct from integers.
func floatText(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	case math.Abs(f) >= largeFloat:
		return strconv.FormatFloat(f, 'g', -1, bitSize)
	}

	text := strconv.FormatFloat(f, 'f', -1, bitSize)
	if !strings.Contains(text, ".") {
		text += ".0"
	}

	return text
}
