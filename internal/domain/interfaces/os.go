package interfaces

import (
	"context"
	"time"
)

// CommandExecutor runs external system commands
type CommandExecutor interface {
	// Execute runs a command and returns its stdout
	Execute(ctx context.Context, command string, args ...string) ([]byte, error)

	// ExecuteWithTimeout runs a command under a deadline
	ExecuteWithTimeout(ctx context.Context, timeout time.Duration, command string, args ...string) ([]byte, error)
}

// FileSystem abstracts the file system operations the tool needs
type FileSystem interface {
	// ReadFile reads a file
	ReadFile(path string) ([]byte, error)

	// Exists reports whether a file or directory exists
	Exists(path string) bool
}

// Clock abstracts time for testability
type Clock interface {
	// Now returns the current time
	Now() time.Time
}

// Runtime interrogates the hosting process environment
type Runtime interface {
	// IsPrivileged reports whether the process runs with root privilege
	IsPrivileged() bool

	// LookTool resolves an external tool on PATH
	LookTool(name string) (string, error)
}
