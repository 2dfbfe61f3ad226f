// Package format renders templates with brace placeholders.
//
// Positional templates use bare "{}" placeholders filled left to right:
//
//	format.Positional("{}:{}", []string{"127.0.0.1", "6379"}) // "127.0.0.1:6379"
//
// Named templates use "{name}" placeholders filled from a map, which is how
// configuration filenames such as "config.{env}.yaml" are resolved.
//
// In both forms "{{" and "}}" render a single literal brace and are never
// treated as placeholders.
package format
