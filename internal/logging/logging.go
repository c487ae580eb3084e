// Package logging builds the zerolog loggers used across the application.
// Components receive child loggers tagged with their name so log lines can
// be traced back to the ledger, registry, importer, or CLI layer.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Standard component names.
const (
	ComponentCLI      = "cli"
	ComponentLedger   = "ledger"
	ComponentRegistry = "registry"
	ComponentImport   = "import"
	ComponentChart    = "chart"
)

// New builds the root logger writing console output to w at the given
// level. An unknown level falls back to info.
func New(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// Component returns a child logger tagged with a component name.
func Component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}
