// Package logging points the standard logger at the destination a frontend needs.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup configures the standard logger. A non-empty path appends to that file, creating it if
// needed. Otherwise output goes to fallback, or is discarded when fallback is nil. The
// returned closer releases the file.
func Setup(path string, fallback io.Writer) (io.Closer, error) {
	log.SetFlags(0)
	if path == "" {
		if fallback == nil {
			fallback = io.Discard
		}
		log.SetOutput(fallback)
		return nopCloser{}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.SetOutput(f)
	return f, nil
}
