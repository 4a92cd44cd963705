package main

import "fmt"

// Exit codes for the gtdash CLI.
const (
	ExitOK            = 0 // Report written.
	ExitInvalidArgs   = 1 // Invalid arguments, flags, or config.
	ExitRenderFailure = 2 // Dataset loaded but the dashboard could not be built or written.
	ExitLoadFailure   = 3 // Dataset could not be loaded; nothing written.
)

// exitCodeError carries a process exit code through cobra's error return.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError. If msg is empty, the error message is
// set to a generic description of the exit code.
func exitError(code int, format string, args ...any) *exitCodeError {
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		switch code {
		case ExitRenderFailure:
			msg = "gtdash: rendering failed"
		case ExitLoadFailure:
			msg = "gtdash: dataset could not be loaded"
		default:
			msg = "gtdash: error"
		}
	}
	return &exitCodeError{code: code, msg: msg}
}
