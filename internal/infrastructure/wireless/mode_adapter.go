package wireless

import (
	"context"
	"fmt"
	"time"

	"wifictl/internal/domain/entities"
	"wifictl/internal/domain/errors"
	"wifictl/internal/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// IWModeAdapter implements WirelessModeAdapter on top of the `ip` link
// control command, the `iw` mode-change primitive and the legacy
// `iwconfig` fallback primitive.
type IWModeAdapter struct {
	commandExecutor interfaces.CommandExecutor
	fileSystem      interfaces.FileSystem
	commandTimeout  time.Duration
	logger          *logrus.Logger
}

// NewIWModeAdapter creates a new IWModeAdapter
func NewIWModeAdapter(
	executor interfaces.CommandExecutor,
	fs interfaces.FileSystem,
	commandTimeout time.Duration,
	logger *logrus.Logger,
) *IWModeAdapter {
	return &IWModeAdapter{
		commandExecutor: executor,
		fileSystem:      fs,
		commandTimeout:  commandTimeout,
		logger:          logger,
	}
}

// Exists reports whether the named interface is present on the system
func (a *IWModeAdapter) Exists(ctx context.Context, name entities.InterfaceName) bool {
	return a.fileSystem.Exists(fmt.Sprintf("/sys/class/net/%s", name.String()))
}

// Down brings the interface administratively down
func (a *IWModeAdapter) Down(ctx context.Context, name entities.InterfaceName) error {
	_, err := a.commandExecutor.ExecuteWithTimeout(ctx, a.commandTimeout, "ip", "link", "set", name.String(), "down")
	if err != nil {
		return errors.NewNetworkError(fmt.Sprintf("failed to bring %s down", name.String()), err)
	}
	return nil
}

// Up brings the interface administratively up
func (a *IWModeAdapter) Up(ctx context.Context, name entities.InterfaceName) error {
	_, err := a.commandExecutor.ExecuteWithTimeout(ctx, a.commandTimeout, "ip", "link", "set", name.String(), "up")
	if err != nil {
		return errors.NewNetworkError(fmt.Sprintf("failed to bring %s up", name.String()), err)
	}
	return nil
}

// SetType applies the target mode through `iw dev <name> set type <mode>`
func (a *IWModeAdapter) SetType(ctx context.Context, name entities.InterfaceName, mode entities.Mode) error {
	_, err := a.commandExecutor.ExecuteWithTimeout(ctx, a.commandTimeout, "iw", "dev", name.String(), "set", "type", mode.String())
	if err != nil {
		return errors.NewNetworkError(fmt.Sprintf("failed to set %s to %s mode", name.String(), mode), err)
	}

	a.logger.WithFields(logrus.Fields{
		"interface": name.String(),
		"mode":      mode.String(),
	}).Debug("Mode change primitive applied")

	return nil
}

// LegacySetType applies the target mode through `iwconfig <name> mode <mode>`
func (a *IWModeAdapter) LegacySetType(ctx context.Context, name entities.InterfaceName, mode entities.Mode) error {
	_, err := a.commandExecutor.ExecuteWithTimeout(ctx, a.commandTimeout, "iwconfig", name.String(), "mode", mode.String())
	if err != nil {
		return errors.NewNetworkError(fmt.Sprintf("legacy mode change failed for %s", name.String()), err)
	}
	return nil
}
