package executor

import "context"

// Executor defines the interface for executing external commands
type Executor interface {
	// Execute runs name with args and returns its stdout. A command that
	// cannot be started or exits non-zero yields an *Error.
	Execute(ctx context.Context, name string, args ...string) (string, error)
}
