// Package logutil provides opt-in debug logging. Loggers are silent until
// SetOutput directs them somewhere.
package logutil

import (
	"io"
	"log"
	"sync"
)

var (
	mu      sync.Mutex
	out     io.Writer = io.Discard
	loggers []*log.Logger
)

// GetLogger returns a logger with the given prefix, writing to the output
// configured by SetOutput.
func GetLogger(prefix string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	logger := log.New(out, prefix, log.LstdFlags)
	loggers = append(loggers, logger)
	return logger
}

// SetOutput redirects all loggers, current and future, to the given writer.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
	for _, logger := range loggers {
		logger.SetOutput(w)
	}
}
