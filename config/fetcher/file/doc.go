// Package file provides a file-based DataFetcher implementation for the config package.
//
// The file is read once, at construction time, and cached; Fetch returns a
// copy of the cached bytes.
//
// Filenames may contain an "{env}" token that is replaced by an environment
// name before the file is opened, which lets one pattern select a file per
// deployment:
//
//	fetcher, err := file.NewEnvFetcher("config.{env}.yaml", "production")()
//	// reads config.production.yaml
//
// An empty filename reads DefaultFilename ("config.yaml").
//
// Error Handling:
//   - Construction returns error if file cannot be read or path is a directory
//   - Errors include the filepath for easier debugging
//   - Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors
//   - Unknown filename tokens such as "{stage}" wrap format.ErrUnknownPlaceholder
package file
