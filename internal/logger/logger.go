// Package logger holds the process-wide logrus logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultLevel is used when no level is configured anywhere.
const DefaultLevel = "warn"

// Log is the global logger. Until Init runs it uses logrus defaults.
var Log = logrus.New()

// Init configures Log. level comes from the command line or config; when it
// is empty LOG_LEVEL is consulted, then DefaultLevel. LOG_FORMAT=json selects
// JSON output. Logs go to w so stdout stays reserved for results.
func Init(level string, w io.Writer) error {
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	if level == "" {
		level = DefaultLevel
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}

	Log.SetLevel(lvl)
	Log.SetOutput(w)
	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
		})
	}
	return nil
}
