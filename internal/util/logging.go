// Package util provides common utilities including logging helpers,
// data directory resolution and small parsing functions.
package util

import (
	"io"
	"log"
)

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}

// SilenceLogs discards standard log output, e.g. while a full-screen UI
// owns the terminal.
func SilenceLogs() {
	log.SetOutput(io.Discard)
}
