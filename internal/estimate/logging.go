package estimate

import "github.com/rs/zerolog"

// zlog is an optional structured logger. If unset, nothing is logged.
var zlog *zerolog.Logger

var nop = zerolog.Nop()

// SetLogger installs a structured logger used by the estimator.
func SetLogger(l zerolog.Logger) { zlog = &l }

func logger() *zerolog.Logger {
	if zlog == nil {
		return &nop
	}
	return zlog
}
