package exec

import (
	"fmt"
	"strings"
)

// ProcessError is returned when the external tool exits non-zero.
type ProcessError struct {
	Name     string
	Args     []string
	ExitCode int
	Stderr   string
}

// Error returns the error message.
func (e *ProcessError) Error() string {
	msg := fmt.Sprintf("%s %s exited with code %d",
		e.Name, strings.Join(e.Args, " "), e.ExitCode)

	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}

	return msg
}

// ToolNotFoundError is returned when the external tool is not found in PATH.
type ToolNotFoundError struct {
	Tool string
}

// Error returns the error message.
func (e *ToolNotFoundError) Error() string {
	return "tool not found in PATH: " + e.Tool
}
