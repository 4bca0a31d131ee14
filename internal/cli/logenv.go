package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// EnvLogLevel overrides the default log level when --log-level is not given.
const EnvLogLevel = "VRAMEST_LOG_LEVEL"

// newLogger returns a human-readable logger on w. Logs go to stderr so stdout
// only ever carries the report.
func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	var lvl zerolog.Level
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "off", "none", "disabled":
		return zerolog.Nop(), nil
	case "debug":
		lvl = zerolog.DebugLevel
	case "info":
		lvl = zerolog.InfoLevel
	case "warn", "warning":
		lvl = zerolog.WarnLevel
	case "error", "err":
		lvl = zerolog.ErrorLevel
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log level %q (want debug|info|warn|error|off)", level)
	}
	cw := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.RFC3339}
	return zerolog.New(cw).Level(lvl).With().Timestamp().Logger(), nil
}

// Env helpers
func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
