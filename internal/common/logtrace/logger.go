// Package logtrace wires up structured logging for the intake service.
// It configures zerolog and exposes helpers for request tracing.
package logtrace

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger initializes the global logger writing to stderr with Unix
// timestamps. Call once at process start before any request is served.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
}
