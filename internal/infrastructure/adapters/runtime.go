package adapters

import (
	"os"
	"os/exec"

	"wifictl/internal/domain/interfaces"
)

// RealRuntime is a Runtime implementation that inspects the actual process environment
type RealRuntime struct{}

// NewRealRuntime creates a new RealRuntime
func NewRealRuntime() interfaces.Runtime {
	return &RealRuntime{}
}

// IsPrivileged reports whether the process runs as root
func (r *RealRuntime) IsPrivileged() bool {
	return os.Geteuid() == 0
}

// LookTool resolves an external tool on PATH
func (r *RealRuntime) LookTool(name string) (string, error) {
	return exec.LookPath(name)
}
