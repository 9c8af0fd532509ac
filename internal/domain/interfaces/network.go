package interfaces

import (
	"context"

	"wifictl/internal/domain/entities"
)

// InterfaceCollector enumerates the wireless interfaces the OS presents
type InterfaceCollector interface {
	// Collect returns the distinct wireless interface names in discovery order
	Collect(ctx context.Context) ([]entities.InterfaceName, error)
}

// WirelessModeAdapter exposes the link and mode-change primitives for one interface
type WirelessModeAdapter interface {
	// Exists reports whether the named interface is present on the system
	Exists(ctx context.Context, name entities.InterfaceName) bool

	// Down brings the interface administratively down
	Down(ctx context.Context, name entities.InterfaceName) error

	// Up brings the interface administratively up
	Up(ctx context.Context, name entities.InterfaceName) error

	// SetType applies the target mode through the primary primitive
	SetType(ctx context.Context, name entities.InterfaceName, mode entities.Mode) error

	// LegacySetType applies the target mode through the legacy fallback primitive
	LegacySetType(ctx context.Context, name entities.InterfaceName, mode entities.Mode) error
}

// ServiceController controls a system service
type ServiceController interface {
	// IsActive reports whether the service is currently running
	IsActive(ctx context.Context, service string) (bool, error)

	// Stop stops the service
	Stop(ctx context.Context, service string) error

	// Start starts the service
	Start(ctx context.Context, service string) error
}

// DaemonGuard holds the stop/start obligation for the network-management
// daemon across one mode transition. Acquire stops the daemon if it is
// running; Release restarts it unless the guard was disarmed.
type DaemonGuard interface {
	// Acquire stops the daemon if active (best-effort)
	Acquire(ctx context.Context)

	// Stopped reports whether Acquire stopped the daemon
	Stopped() bool

	// Disarm waives the restart obligation for the current transition
	Disarm()

	// Release restarts the daemon if the guard stopped it and was not
	// disarmed, then resets the guard for the next transition
	Release(ctx context.Context) error
}

// TransitionRecorder receives completed mode transitions for statistics
type TransitionRecorder interface {
	// RecordTransition records one completed transition
	RecordTransition(t entities.Transition)
}
