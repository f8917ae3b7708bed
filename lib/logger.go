package lib

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Logger builds the root logger for the vaulthive service. Output goes
// to stdout unless logFilePath is set, in which case entries are
// appended to that file. A path without an extension gets the current
// date and a .log suffix so long running deployments roll into dated
// files.
func Logger(logFilePath string) zerolog.Logger {
	var target io.Writer = os.Stdout

	if logFilePath != "" {
		path := logFilePath
		if filepath.Ext(path) == "" {
			path = path + time.Now().Format("-2006-01-02") + ".log"
		}
		file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0664)
		if err != nil {
			panic(err)
		}
		target = file
	}

	return zerolog.New(target).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Str("service", "vaulthive").
		Logger()
}
