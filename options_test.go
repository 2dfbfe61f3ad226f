package hjarta_test

import (
	"testing"

	hjarta "github.com/0xalexb/hjarta-config"
	"github.com/0xalexb/hjarta-config/config"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestWithLogLevel(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		level    string
		expected string
	}{
		{name: "debug level", level: "debug", expected: "debug"},
		{name: "error level", level: "error", expected: "error"},
		{name: "empty level", level: "", expected: ""},
	}

	for _, testCase := range testCases {
		testCase := testCase

		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var opts hjarta.Options

			hjarta.WithLogLevel(testCase.level)(&opts)

			require.Equal(t, testCase.expected, opts.LogLevel)
		})
	}
}

func TestWithLogFormat(t *testing.T) {
	t.Parallel()

	var opts hjarta.Options

	require.Empty(t, opts.LogFormat)

	hjarta.WithLogFormat("text")(&opts)

	require.Equal(t, "text", opts.LogFormat)
}

func TestWithModules(t *testing.T) {
	t.Parallel()

	var opts hjarta.Options

	hjarta.WithModules(fx.Module("test1"))(&opts)
	require.Len(t, opts.Modules, 1)

	hjarta.WithModules(fx.Module("test2"), fx.Module("test3"))(&opts)
	require.Len(t, opts.Modules, 3)
}

func TestWithConfig_AddsModule(t *testing.T) {
	t.Parallel()

	var opts hjarta.Options

	hjarta.WithConfig("testdata/config.yaml", config.WithSeparator("."))(&opts)

	require.Len(t, opts.Modules, 1)
}
