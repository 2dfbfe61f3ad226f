// Package config provides read-only, path-addressed access to configuration data.
//
// The package uses an interface-based design with two extension points:
//   - Parser: turns raw data into a value.Node tree
//   - DataFetcher: retrieves raw config data (file, embedded bytes, etc.)
//
// # Paths
//
// A Document resolves paths made of keys joined by a separator ("/" unless
// WithSeparator says otherwise). The last segment may join several sibling
// keys with "+" to fetch them in one lookup:
//
//	"app/port"                  -> config["app"]["port"]
//	"db/redis/server+port"      -> config["db"]["redis"]["server"], ...["port"]
//
// # Accessors
//
//   - Get returns the resolved node(s) and whether the path exists.
//   - Str returns the scalar text at a path, "" for composite or missing nodes.
//   - List returns the scalar texts of a sequence.
//   - Fmt fills "{}" placeholders of a template with the values at a path.
//
// Missing paths are never errors: they read as absent or "". Fmt does return
// an error when the template and the path disagree on the number of values.
//
// # Example
//
//	doc, err := config.Load(yamlparser.NewParser(), fetcher, config.WithEnvironment("dev"))
//	addr, err := doc.Fmt("{}:{}", "db/redis/server+port")
package config
