// Package wfclog wraps log/slog with the level vocabulary the generation
// pipeline logs at: slog's own Debug/Info/Warn/Error plus an Important
// level between Info and Warn for terminal solver states and artefact
// paths that should surface even at default verbosity.
package wfclog
