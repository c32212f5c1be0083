package processor

import (
	"errors"
	"fmt"

	"github.com/nguyentantai21042004/vidkit/pkg/executor"
)

// StageError records the stage a job failed in.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// ToolError is a failed external tool run. Stderr is the tool's own
// diagnostic output.
type ToolError struct {
	Tool     string
	ExitCode int
	Stderr   string
	NotFound bool
	Err      error
}

func (e *ToolError) Error() string {
	if e.NotFound {
		return fmt.Sprintf("%s not found: install it or set its path in the config", e.Tool)
	}
	if e.Stderr != "" {
		return fmt.Sprintf("%s exited with code %d: %s", e.Tool, e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("%s failed: %v", e.Tool, e.Err)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

func toolError(tool string, err error) error {
	var cmdErr *executor.CommandError
	if !errors.As(err, &cmdErr) {
		return &ToolError{Tool: tool, ExitCode: -1, Err: err}
	}
	return &ToolError{
		Tool:     tool,
		ExitCode: cmdErr.ExitCode,
		Stderr:   cmdErr.Stderr,
		NotFound: cmdErr.NotFound(),
		Err:      err,
	}
}
