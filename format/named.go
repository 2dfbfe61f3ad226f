package format

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPlaceholder is returned when a named placeholder has no value.
var ErrUnknownPlaceholder = errors.New("unknown placeholder")

// ErrUnclosedPlaceholder is returned when a "{" has no matching "}".
var ErrUnclosedPlaceholder = errors.New("unclosed placeholder")

// Named substitutes "{name}" placeholders in template with vars[name].
func Named(template string, vars map[string]string) (string, error) {
	var builder strings.Builder

	builder.Grow(len(template))

	for i := 0; i < len(template); i++ {
		current := template[i]

		switch {
		case strings.HasPrefix(template[i:], "{{"):
			builder.WriteByte('{')
			i++
		case strings.HasPrefix(template[i:], "}}"):
			builder.WriteByte('}')
			i++
		case current == '{':
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				return "", fmt.Errorf("%w at offset %d in %q", ErrUnclosedPlaceholder, i, template)
			}

			name := template[i+1 : i+1+end]

			replacement, ok := vars[name]
			if !ok || name == "" {
				return "", fmt.Errorf("%w {%s} in %q", ErrUnknownPlaceholder, name, template)
			}

			builder.WriteString(replacement)

			i += end + 1
		default:
			builder.WriteByte(current)
		}
	}

	return builder.String(), nil
}
