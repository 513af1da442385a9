// Package logging adapts slog to the narrow Logger interface the lokit
// wrapper emits lifecycle events through.
package logging
