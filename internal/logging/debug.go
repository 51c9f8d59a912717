package logging

import (
	"log"

	genv "github.com/blong14/scratch/internal/environment"
)

// ShouldLog returns true if in DEBUG mode
func ShouldLog() bool {
	return genv.Debug()
}

// Track logs information IFF the DEBUG env variable is "true"
// error handling should use std log package
func Track(format string, v ...any) {
	if ShouldLog() {
		log.Printf(format, v...)
	}
}
