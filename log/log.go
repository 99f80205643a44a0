// Package log provides the file loggers shared by every package.
//
// Output goes to a file in the temp directory so it never interferes with the
// alt-screen rendering of the badge.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

var (
	InfoLog    = log.New(io.Discard, "", 0)
	WarningLog = log.New(io.Discard, "", 0)
	ErrorLog   = log.New(io.Discard, "", 0)
)

var logFileName = filepath.Join(os.TempDir(), "breakpoint-indicator.log")

var globalLogFile *os.File

// Initialize opens the log file and points the loggers at it. It also sets up
// debug logging when BPI_DEBUG=1. Call Close before exiting.
func Initialize(quiet bool) {
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		// Fall back to stderr, the UI has not started yet.
		fmt.Fprintf(os.Stderr, "could not open log file: %s\n", err)
		InfoLog = log.New(os.Stderr, "INFO:", log.Ldate|log.Ltime|log.Lshortfile)
		WarningLog = log.New(os.Stderr, "WARNING:", log.Ldate|log.Ltime|log.Lshortfile)
		ErrorLog = log.New(os.Stderr, "ERROR:", log.Ldate|log.Ltime|log.Lshortfile)
		InitDebug()
		return
	}

	fmtFlags := log.Ldate | log.Ltime | log.Lshortfile
	InfoLog = log.New(f, "INFO:", fmtFlags)
	WarningLog = log.New(f, "WARNING:", fmtFlags)
	ErrorLog = log.New(f, "ERROR:", fmtFlags)
	globalLogFile = f

	if quiet {
		InfoLog.SetOutput(io.Discard)
	}

	InitDebug()
}

// Close flushes debug output and closes the log file.
func Close() {
	CloseDebug()
	if globalLogFile != nil {
		_ = globalLogFile.Close()
		globalLogFile = nil
	}
}

// FileName returns the path of the log file.
func FileName() string {
	return logFileName
}
