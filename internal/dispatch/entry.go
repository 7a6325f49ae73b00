package dispatch

import (
	"fmt"
	"strings"

	"gitlab.com/adbfm/adb-file-manager/internal/runner"
)

const (
	ErrorMarker = "Error: "
)

// LogEntry is one line of session output. Err is nil for successful work
// and otherwise wraps the error kind behind the failure.
type LogEntry struct {
	Message string
	Err     error
}

func (e LogEntry) Failed() bool {
	return e.Err != nil
}

func (e LogEntry) String() string {
	if e.Err != nil {
		return ErrorMarker + e.Message
	}
	return e.Message
}

func succeeded(format string, args ...interface{}) LogEntry {
	return LogEntry{Message: fmt.Sprintf(format, args...)}
}

func commandFailed(result *runner.Result) LogEntry {
	detail := strings.TrimSpace(result.Stderr)
	if detail == "" {
		detail = fmt.Sprintf("exit status %d", result.ExitCode)
	}
	return LogEntry{
		Message: detail,
		Err:     fmt.Errorf("%w: %v", ErrCommandFailure, detail),
	}
}

func launchFailed(err error) LogEntry {
	return LogEntry{Message: err.Error(), Err: err}
}
