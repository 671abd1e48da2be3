// Package logger provides the shared logger used across go-qcc components.
//
// The root logger uses github.com/rs/zerolog with a console writer and is
// silenced automatically when running under `go test`.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	log = zerolog.New(output).With().Timestamp().Logger()

	if strings.HasSuffix(os.Args[0], ".test") {
		log = zerolog.Nop()
	}
}

// SetOutput changes the output of the global logger
func SetOutput(w io.Writer) {
	log = log.Output(w)
}

// Set allows a caller to override the global logger
func Set(l zerolog.Logger) {
	log = l
}

// Disable disables logging
func Disable() {
	log = zerolog.Nop()
}

// Logger returns the root logger; components derive their own sublogger from it
func Logger() zerolog.Logger {
	return log
}
