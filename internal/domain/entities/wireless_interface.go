package entities

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// Mode is the operating mode of a wireless interface
type Mode string

const (
	// ModeMonitor captures raw frames without association to a network
	ModeMonitor Mode = "monitor"

	// ModeManaged is the normal client association mode
	ModeManaged Mode = "managed"
)

var (
	ErrInvalidInterfaceName = errors.New("invalid interface name")
	ErrInvalidMode          = errors.New("invalid wireless mode")
)

// ParseMode converts a string into a Mode
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeMonitor:
		return ModeMonitor, nil
	case ModeManaged:
		return ModeManaged, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// String returns the mode as passed to the mode-change tools
func (m Mode) String() string {
	return string(m)
}

// TransitionResult classifies the outcome of a mode transition
type TransitionResult string

const (
	ResultSuccess           TransitionResult = "success"
	ResultFailed            TransitionResult = "failed"
	ResultFallbackAttempted TransitionResult = "fallback-attempted"
	ResultInterfaceNotFound TransitionResult = "interface-not-found"
)

// String returns the result as rendered to the console
func (r TransitionResult) String() string {
	return string(r)
}

// InterfaceName is a value object holding a validated network interface name
type InterfaceName struct {
	value string
}

// Linux limits interface names to 15 characters (IFNAMSIZ minus the NUL)
var interfaceNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,14}$`)

// NewInterfaceName creates a new validated interface name
func NewInterfaceName(name string) (InterfaceName, error) {
	if !interfaceNamePattern.MatchString(name) {
		return InterfaceName{}, fmt.Errorf("%w: %q", ErrInvalidInterfaceName, name)
	}
	return InterfaceName{value: name}, nil
}

// String returns the interface name
func (n InterfaceName) String() string {
	return n.value
}

// Transition records a single mode-change attempt. Transitions live only in
// process memory for session statistics; nothing is persisted.
type Transition struct {
	Interface InterfaceName
	Mode      Mode
	Result    TransitionResult
	StartedAt time.Time
	Duration  time.Duration
}

// Succeeded reports whether the transition completed and was verified
func (t Transition) Succeeded() bool {
	return t.Result == ResultSuccess
}
