package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wifictl/internal/domain/errors"
	"wifictl/internal/domain/interfaces"
	"wifictl/internal/infrastructure/metrics"

	"github.com/sirupsen/logrus"
)

// SystemdController controls system services through systemctl
type SystemdController struct {
	commandExecutor interfaces.CommandExecutor
	commandTimeout  time.Duration
	logger          *logrus.Logger
}

// NewSystemdController creates a new SystemdController
func NewSystemdController(
	executor interfaces.CommandExecutor,
	commandTimeout time.Duration,
	logger *logrus.Logger,
) *SystemdController {
	return &SystemdController{
		commandExecutor: executor,
		commandTimeout:  commandTimeout,
		logger:          logger,
	}
}

// IsActive reports whether the service is currently running
func (c *SystemdController) IsActive(ctx context.Context, service string) (bool, error) {
	output, err := c.commandExecutor.ExecuteWithTimeout(ctx, c.commandTimeout, "systemctl", "is-active", service)
	if err != nil {
		// systemctl exits non-zero for inactive units, so an error here
		// usually just means "not running"
		return false, err
	}
	return strings.TrimSpace(string(output)) == "active", nil
}

// Stop stops the service
func (c *SystemdController) Stop(ctx context.Context, service string) error {
	if _, err := c.commandExecutor.ExecuteWithTimeout(ctx, c.commandTimeout, "systemctl", "stop", service); err != nil {
		return errors.NewSystemError(fmt.Sprintf("failed to stop %s", service), err)
	}
	return nil
}

// Start starts the service
func (c *SystemdController) Start(ctx context.Context, service string) error {
	if _, err := c.commandExecutor.ExecuteWithTimeout(ctx, c.commandTimeout, "systemctl", "start", service); err != nil {
		return errors.NewSystemError(fmt.Sprintf("failed to start %s", service), err)
	}
	return nil
}

// NetworkDaemonGuard is the DaemonGuard implementation for the
// network-management daemon. Stopping the daemon is a global side effect
// that touches every interface on the host, so the guard tracks whether
// it was this process that stopped it and owes it a restart.
type NetworkDaemonGuard struct {
	controller interfaces.ServiceController
	service    string
	logger     *logrus.Logger

	stopped  bool
	disarmed bool
}

// NewNetworkDaemonGuard creates a new NetworkDaemonGuard for the named service
func NewNetworkDaemonGuard(
	controller interfaces.ServiceController,
	service string,
	logger *logrus.Logger,
) *NetworkDaemonGuard {
	return &NetworkDaemonGuard{
		controller: controller,
		service:    service,
		logger:     logger,
	}
}

// Acquire stops the daemon if it is active. Failures are logged and
// swallowed: the transition proceeds either way, matching the best-effort
// contract of the operation.
func (g *NetworkDaemonGuard) Acquire(ctx context.Context) {
	active, err := g.controller.IsActive(ctx, g.service)
	if err != nil {
		g.logger.WithError(err).WithField("service", g.service).Debug("Service state query failed, assuming inactive")
		return
	}
	if !active {
		return
	}

	if err := g.controller.Stop(ctx, g.service); err != nil {
		g.logger.WithError(err).WithField("service", g.service).Warn("Failed to stop network-management daemon")
		return
	}

	g.stopped = true
	metrics.RecordDaemonStop()
	g.logger.WithField("service", g.service).Info("Network-management daemon stopped")
}

// Stopped reports whether Acquire stopped the daemon
func (g *NetworkDaemonGuard) Stopped() bool {
	return g.stopped
}

// Disarm waives the restart obligation for the current transition
func (g *NetworkDaemonGuard) Disarm() {
	g.disarmed = true
}

// Release restarts the daemon if the guard stopped it and was not
// disarmed, then resets the guard for the next transition.
func (g *NetworkDaemonGuard) Release(ctx context.Context) error {
	defer func() {
		g.stopped = false
		g.disarmed = false
	}()

	if !g.stopped || g.disarmed {
		return nil
	}

	if err := g.controller.Start(ctx, g.service); err != nil {
		return err
	}

	metrics.RecordDaemonStart()
	g.logger.WithField("service", g.service).Info("Network-management daemon restarted")
	return nil
}
