// Package hjarta wires path-addressed YAML configuration into a go.uber.org/fx application.
//
// NewApp installs a JSON slog logger and runs the given Fx modules. WithConfig
// adds a module that loads a YAML file and provides *config.Document:
//
//	app := hjarta.NewApp(
//	    hjarta.WithLogLevel("info"),
//	    hjarta.WithConfig("config.{env}.yaml", config.WithEnvironment("prod")),
//	    hjarta.WithModules(fx.Invoke(func(doc *config.Document) {
//	        addr, _ := doc.Fmt("{}:{}", "db/redis/server+port")
//	        ...
//	    })),
//	)
//
// See package config for the path and template syntax.
package hjarta
