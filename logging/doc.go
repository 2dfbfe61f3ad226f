// Package logging builds the log/slog logger shared by the application and the config Document.
// Output is JSON by default, or slog's text format when LoggerConfig.Format is "text".
package logging
