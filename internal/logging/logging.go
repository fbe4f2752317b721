package logging

import (
	"log"
	"os"
)

var (
	disabled = false
	out      = log.New(os.Stdout, "", log.LstdFlags)
	errOut   = log.New(os.Stderr, "", log.LstdFlags)
)

// Disable turns off all logging
func Disable() {
	disabled = true
}

// Enable turns logging back on
func Enable() {
	disabled = false
}

// Info logs an info message
func Info(v ...any) {
	if !disabled {
		out.Println(v...)
	}
}

// Infof logs a formatted info message
func Infof(format string, v ...any) {
	if !disabled {
		out.Printf(format, v...)
	}
}

// Warn logs a warning message to stderr
func Warn(v ...any) {
	if !disabled {
		errOut.Println(v...)
	}
}

// Warnf logs a formatted warning message to stderr
func Warnf(format string, v ...any) {
	if !disabled {
		errOut.Printf(format, v...)
	}
}

// Error logs an error message to stderr
func Error(v ...any) {
	if !disabled {
		errOut.Println(v...)
	}
}

// Errorf logs a formatted error message to stderr
func Errorf(format string, v ...any) {
	if !disabled {
		errOut.Printf(format, v...)
	}
}
