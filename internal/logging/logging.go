// Package logging provides the logrus loggers used by the chainrender
// driver and the probe kernel. Setting CHAINS_DEBUG to a true value enables
// debug output.
package logging

import (
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

// EnvDebug is the environment variable that switches on debug logging.
const EnvDebug = "CHAINS_DEBUG"

var debug bool

func init() {
	var err error

	debug, err = strconv.ParseBool(os.Getenv(EnvDebug))
	if err != nil {
		debug = false
	}
}

// Debug reports whether CHAINS_DEBUG was set.
func Debug() bool {
	return debug
}

// New returns a logger writing to w. The level is debug when CHAINS_DEBUG
// is set and info otherwise.
func New(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if debug {
		l.SetLevel(logrus.DebugLevel)
	}

	return l
}

var std = New(os.Stderr)

// Get returns the process-wide logger.
func Get() *logrus.Logger {
	return std
}

// For returns an entry of the process-wide logger tagged with component.
func For(component string) *logrus.Entry {
	return std.WithField("component", component)
}
