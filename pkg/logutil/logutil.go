// Package logutil provides logger instances that write to a shared,
// switchable destination. Logging is off by default; the -log flag turns it
// on for all loggers at once.
package logutil

import (
	"io"
	"log"
	"os"
)

var (
	out     io.Writer = io.Discard
	loggers []*log.Logger
)

// GetLogger gets a logger with a prefix. The destination of all loggers
// obtained this way is controlled by [SetOutput] and [SetOutputFile].
func GetLogger(prefix string) *log.Logger {
	logger := log.New(out, prefix, log.LstdFlags)
	loggers = append(loggers, logger)
	return logger
}

// SetOutput redirects the output of all loggers to the given writer.
func SetOutput(newOut io.Writer) {
	out = newOut
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
}

// SetOutputFile redirects the output of all loggers to the named file,
// creating it if needed. An empty name makes all loggers silent again.
func SetOutputFile(fname string) error {
	if fname == "" {
		SetOutput(io.Discard)
		return nil
	}
	file, err := os.OpenFile(fname, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	SetOutput(file)
	return nil
}
