package format

import (
	"errors"
	"fmt"
	"strings"
)

// ErrArity is returned when the number of placeholders does not match the number of values.
var ErrArity = errors.New("placeholder count mismatch")

// ArityError reports how many placeholders a template has and how many values were given.
type ArityError struct {
	Expected int
	Actual   int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s: template expects %d values, got %d", ErrArity, e.Expected, e.Actual)
}

func (e *ArityError) Unwrap() error {
	return ErrArity
}

type token struct {
	text        string
	placeholder bool
}

// Positional substitutes values into the "{}" placeholders of template in order.
// The number of placeholders must equal len(values).
func Positional(template string, values []string) (string, error) {
	tokens := tokenize(template)

	expected := countPlaceholders(tokens)
	if expected != len(values) {
		return "", &ArityError{Expected: expected, Actual: len(values)}
	}

	var builder strings.Builder

	builder.Grow(len(template))

	next := 0

	for _, tok := range tokens {
		if !tok.placeholder {
			builder.WriteString(tok.text)

			continue
		}

		builder.WriteString(values[next])
		next++
	}

	return builder.String(), nil
}

// Count returns the number of "{}" placeholders in template.
func Count(template string) int {
	return countPlaceholders(tokenize(template))
}

func countPlaceholders(tokens []token) int {
	count := 0

	for _, tok := range tokens {
		if tok.placeholder {
			count++
		}
	}

	return count
}

// tokenize splits template into literal runs and placeholders. Escapes are
// matched before placeholders, so "{{}" is a literal "{" followed by "}".
// A brace that starts neither an escape nor "{}" is kept as literal text.
func tokenize(template string) []token {
	var (
		tokens  []token
		literal strings.Builder
	)

	flush := func() {
		if literal.Len() > 0 {
			tokens = append(tokens, token{text: literal.String(), placeholder: false})
			literal.Reset()
		}
	}

	for i := 0; i < len(template); i++ {
		current := template[i]

		var following byte
		if i+1 < len(template) {
			following = template[i+1]
		}

		switch {
		case current == '{' && following == '{':
			literal.WriteByte('{')
			i++
		case current == '}' && following == '}':
			literal.WriteByte('}')
			i++
		case current == '{' && following == '}':
			flush()
			tokens = append(tokens, token{text: "", placeholder: true})
			i++
		default:
			literal.WriteByte(current)
		}
	}

	flush()

	return tokens
}
