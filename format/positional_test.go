package format

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		values   []string
		expected string
	}{
		{
			name:     "no placeholders",
			template: "plain text",
			values:   nil,
			expected: "plain text",
		},
		{
			name:     "empty template",
			template: "",
			values:   []string{},
			expected: "",
		},
		{
			name:     "single placeholder",
			template: "{}",
			values:   []string{"1000"},
			expected: "1000",
		},
		{
			name:     "left to right",
			template: "{}:{}",
			values:   []string{"127.0.0.1", "6379"},
			expected: "127.0.0.1:6379",
		},
		{
			name:     "adjacent placeholders",
			template: "{}{}{}",
			values:   []string{"a", "b", "c"},
			expected: "abc",
		},
		{
			name:     "escaped braces",
			template: "{{literal}}",
			values:   nil,
			expected: "{literal}",
		},
		{
			name:     "escaped empty pair is not a placeholder",
			template: "{{}}",
			values:   nil,
			expected: "{}",
		},
		{
			name:     "placeholder wrapped in escapes",
			template: "Driver={{{}}};",
			values:   []string{"SQL Server"},
			expected: "Driver={SQL Server};",
		},
		{
			name:     "values are not re-interpreted",
			template: "{}",
			values:   []string{"{}{{"},
			expected: "{}{{",
		},
		{
			name:     "lone braces are literal",
			template: "{x} and } and {",
			values:   nil,
			expected: "{x} and } and {",
		},
		{
			name:     "multibyte text",
			template: "héllo {} wörld",
			values:   []string{"ü"},
			expected: "héllo ü wörld",
		},
		{
			name:     "connection string",
			template: "Driver={{{}}};Server={};Database={};Uid={};Pwd={};",
			values:   []string{"SQL Server", "127.0.0.1", "my_db", "user", "Pa$$w0rd!"},
			expected: "Driver={SQL Server};Server=127.0.0.1;Database=my_db;Uid=user;Pwd=Pa$$w0rd!;",
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := Positional(tt.template, tt.values)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestPositional_Arity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		values   []string
		expected int
	}{
		{
			name:     "too few values",
			template: "{}:{}",
			values:   []string{"127.0.0.1"},
			expected: 2,
		},
		{
			name:     "too many values",
			template: "{}",
			values:   []string{"a", "b"},
			expected: 1,
		},
		{
			name:     "escapes are not counted",
			template: "{{}}",
			values:   []string{"a"},
			expected: 0,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := Positional(tt.template, tt.values)

			require.ErrorIs(t, err, ErrArity)
			assert.Empty(t, result)

			var arityErr *ArityError
			require.True(t, errors.As(err, &arityErr))
			assert.Equal(t, tt.expected, arityErr.Expected)
			assert.Equal(t, len(tt.values), arityErr.Actual)
		})
	}
}

func TestArityError_Message(t *testing.T) {
	t.Parallel()

	err := &ArityError{Expected: 2, Actual: 1}

	assert.Equal(t, "placeholder count mismatch: template expects 2 values, got 1", err.Error())
}

func TestCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		template string
		expected int
	}{
		{template: "", expected: 0},
		{template: "{}", expected: 1},
		{template: "{}:{}", expected: 2},
		{template: "{{}}", expected: 0},
		{template: "{{{}}}", expected: 1},
		{template: "{{}", expected: 0},
		{template: "{}}}", expected: 1},
		{template: "{ }", expected: 0},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.template, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Count(tt.template))
		})
	}
}
