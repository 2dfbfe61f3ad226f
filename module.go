package hjarta

import (
	"log/slog"
	"slices"

	"github.com/0xalexb/hjarta-config/config"
	filefetcher "github.com/0xalexb/hjarta-config/config/fetcher/file"
	yamlparser "github.com/0xalexb/hjarta-config/config/parser/yaml"

	"go.uber.org/fx"
)

// ConfigModuleName is the Fx module name used by NewConfigModule.
const ConfigModuleName = "config"

// NewConfigModule creates an Fx module that reads filename, parses it as YAML
// and provides *config.Document. The Document logs through the container's *slog.Logger.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewConfigModule(filename string, opts ...config.Option) fx.Option {
	settings := config.NewOptions(opts...)

	return fx.Module(ConfigModuleName,
		fx.Provide(
			fx.Annotate(
				yamlparser.NewParser,
				fx.As(new(config.Parser)),
			),
		),
		fx.Provide(
			fx.Annotate(
				filefetcher.NewEnvFetcher(filename, settings.Environment),
				fx.As(new(config.DataFetcher)),
			),
		),
		fx.Provide(func(parser config.Parser, fetcher config.DataFetcher, logger *slog.Logger) (*config.Document, error) {
			withLogger := append(slices.Clone(opts), config.WithLogger(logger))

			return config.Load(parser, fetcher, withLogger...)
		}),
	)
}
