package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/0xalexb/hjarta-config/format"
)

// DefaultFilename is read when no filename is given.
const DefaultFilename = "config.yaml"

// EnvPlaceholder is the filename token replaced by the environment name.
const EnvPlaceholder = "env"

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Fetcher implements config.DataFetcher interface for file-based configuration.
// It reads configuration data from a file at construction time and caches the contents.
type Fetcher struct {
	filepath string
	data     []byte
}

// Filename resolves the "{env}" token in pattern. With an empty env the
// pattern is returned untouched, and an empty pattern means DefaultFilename.
func Filename(pattern, env string) (string, error) {
	if pattern == "" {
		pattern = DefaultFilename
	}

	if env == "" {
		return pattern, nil
	}

	name, err := format.Named(pattern, map[string]string{EnvPlaceholder: env})
	if err != nil {
		return "", fmt.Errorf("resolving filename %q: %w", pattern, err)
	}

	return name, nil
}

// NewFetcher returns a constructor function that creates a new file-based Fetcher
// with the specified filepath. The file is read at construction time and cached.
// This pattern is Fx-friendly, allowing the DI container to control when instantiation happens.
// Returns an error if the file cannot be read or if the path points to a directory.
func NewFetcher(fpath string) func() (*Fetcher, error) {
	return NewEnvFetcher(fpath, "")
}

// NewEnvFetcher is like NewFetcher, with "{env}" in pattern replaced by env first,
// so "config.{env}.yaml" with env "prod" reads config.prod.yaml.
func NewEnvFetcher(pattern, env string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		name, err := Filename(pattern, env)
		if err != nil {
			return nil, err
		}

		cleanPath := filepath.Clean(name)

		stat, err := os.Stat(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
		}

		return &Fetcher{
			filepath: cleanPath,
			data:     data,
		}, nil
	}
}

// Path returns the cleaned path the data was read from.
func (f *Fetcher) Path() string {
	return f.filepath
}

// Fetch returns a copy of the cached configuration data that was read at construction time.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
