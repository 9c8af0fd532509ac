package wireless

import (
	"bufio"
	"context"
	"strings"
	"time"

	"wifictl/internal/domain/entities"
	"wifictl/internal/domain/errors"
	"wifictl/internal/domain/interfaces"
	"wifictl/internal/domain/services"

	"github.com/sirupsen/logrus"
)

// IWCollector is an InterfaceCollector that parses `iw dev` output and
// optionally merges names from the generic `ip -o link show` listing.
type IWCollector struct {
	commandExecutor interfaces.CommandExecutor
	matcher         *services.WirelessNameMatcher
	mergeLinkScan   bool
	commandTimeout  time.Duration
	logger          *logrus.Logger
}

// NewIWCollector creates a new IWCollector
func NewIWCollector(
	executor interfaces.CommandExecutor,
	matcher *services.WirelessNameMatcher,
	mergeLinkScan bool,
	commandTimeout time.Duration,
	logger *logrus.Logger,
) *IWCollector {
	return &IWCollector{
		commandExecutor: executor,
		matcher:         matcher,
		mergeLinkScan:   mergeLinkScan,
		commandTimeout:  commandTimeout,
		logger:          logger,
	}
}

// Collect returns the distinct wireless interface names in discovery order
func (c *IWCollector) Collect(ctx context.Context) ([]entities.InterfaceName, error) {
	output, err := c.commandExecutor.ExecuteWithTimeout(ctx, c.commandTimeout, "iw", "dev")
	if err != nil {
		return nil, errors.NewSystemError("wireless device enumeration failed", err)
	}

	names := c.parseIWDev(output)

	if c.mergeLinkScan {
		linkOutput, err := c.commandExecutor.ExecuteWithTimeout(ctx, c.commandTimeout, "ip", "-o", "link", "show")
		if err != nil {
			// The primary listing already succeeded; the secondary scan is additive only
			c.logger.WithError(err).Warn("link listing failed, using iw results only")
		} else {
			names = services.MergeInterfaceNames(names, c.parseLinkShow(linkOutput))
		}
	}

	c.logger.WithField("count", len(names)).Debug("Wireless interfaces collected")

	return names, nil
}

// parseIWDev extracts the token following the "Interface" marker on each line
func (c *IWCollector) parseIWDev(output []byte) []entities.InterfaceName {
	var names []entities.InterfaceName

	scanner := bufio.NewScanner(strings.NewReader(string(output)))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 || fields[0] != "Interface" {
			continue
		}
		name, err := entities.NewInterfaceName(fields[1])
		if err != nil {
			c.logger.WithError(err).WithField("token", fields[1]).Warn("Skipping unparseable interface token")
			continue
		}
		names = append(names, name)
	}

	return names
}

// parseLinkShow extracts device names from one-line-per-device link output
// ("3: wlan0: <BROADCAST,...>"), keeping only wireless-looking names.
func (c *IWCollector) parseLinkShow(output []byte) []entities.InterfaceName {
	var names []entities.InterfaceName

	scanner := bufio.NewScanner(strings.NewReader(string(output)))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}

		token := strings.TrimSuffix(fields[1], ":")
		// VLAN and similar stacked devices are listed as "name@parent"
		if at := strings.Index(token, "@"); at != -1 {
			token = token[:at]
		}

		if !c.matcher.Matches(token) {
			continue
		}

		name, err := entities.NewInterfaceName(token)
		if err != nil {
			continue
		}
		names = append(names, name)
	}

	return names
}
