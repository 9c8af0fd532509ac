package container

import (
	"io"

	"wifictl/internal/application/menu"
	"wifictl/internal/application/usecases"
	"wifictl/internal/domain/interfaces"
	"wifictl/internal/domain/services"
	"wifictl/internal/infrastructure/adapters"
	"wifictl/internal/infrastructure/config"
	"wifictl/internal/infrastructure/health"
	infraservices "wifictl/internal/infrastructure/services"
	"wifictl/internal/infrastructure/wireless"

	"github.com/sirupsen/logrus"
)

// Container manages dependency injection
type Container struct {
	config *config.Config
	logger *logrus.Logger

	// Infrastructure adapters
	fileSystem      interfaces.FileSystem
	commandExecutor interfaces.CommandExecutor
	clock           interfaces.Clock
	runtime         interfaces.Runtime

	// Services
	statsService *health.StatsService
	matcher      *services.WirelessNameMatcher
	controller   interfaces.ServiceController
	daemonGuard  interfaces.DaemonGuard

	// Use cases
	listInterfacesUseCase *usecases.ListInterfacesUseCase
	setModeUseCase        *usecases.SetModeUseCase
}

// NewContainer creates a new Container
func NewContainer(cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	container := &Container{
		config: cfg,
		logger: logger,
	}

	if err := container.initializeInfrastructure(); err != nil {
		return nil, err
	}

	if err := container.initializeServices(); err != nil {
		return nil, err
	}

	container.initializeUseCases()

	return container, nil
}

// initializeInfrastructure initializes the infrastructure adapters
func (c *Container) initializeInfrastructure() error {
	c.fileSystem = adapters.NewRealFileSystem()
	c.commandExecutor = adapters.NewRealCommandExecutor()
	c.clock = adapters.NewRealClock()
	c.runtime = adapters.NewRealRuntime()

	return nil
}

// initializeServices initializes the domain and infrastructure services
func (c *Container) initializeServices() error {
	matcher, err := services.NewWirelessNameMatcher(c.config.Collector.WirelessPattern)
	if err != nil {
		return err
	}
	c.matcher = matcher

	c.statsService = health.NewStatsService(c.clock, c.logger)
	c.statsService.SetDaemonName(c.config.Daemon.Name)

	c.controller = infraservices.NewSystemdController(
		c.commandExecutor,
		c.config.Setter.CommandTimeout,
		c.logger,
	)
	c.daemonGuard = infraservices.NewNetworkDaemonGuard(
		c.controller,
		c.config.Daemon.Name,
		c.logger,
	)

	return nil
}

// initializeUseCases initializes the use cases
func (c *Container) initializeUseCases() {
	collector := wireless.NewIWCollector(
		c.commandExecutor,
		c.matcher,
		c.config.Collector.MergeLinkScan,
		c.config.Setter.CommandTimeout,
		c.logger,
	)

	modeAdapter := wireless.NewIWModeAdapter(
		c.commandExecutor,
		c.fileSystem,
		c.config.Setter.CommandTimeout,
		c.logger,
	)

	c.listInterfacesUseCase = usecases.NewListInterfacesUseCase(collector, c.logger)
	c.setModeUseCase = usecases.NewSetModeUseCase(
		modeAdapter,
		c.daemonGuard,
		c.statsService,
		c.clock,
		c.logger,
		c.config.Setter.EnableFallback,
		c.config.Daemon.RestoreOnFailure,
	)
}

// GetConfig returns the configuration
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetRuntime returns the process runtime adapter
func (c *Container) GetRuntime() interfaces.Runtime {
	return c.runtime
}

// GetStatsService returns the session statistics service
func (c *Container) GetStatsService() *health.StatsService {
	return c.statsService
}

// GetSetModeUseCase returns the mode transition use case
func (c *Container) GetSetModeUseCase() *usecases.SetModeUseCase {
	return c.setModeUseCase
}

// GetListInterfacesUseCase returns the interface collection use case
func (c *Container) GetListInterfacesUseCase() *usecases.ListInterfacesUseCase {
	return c.listInterfacesUseCase
}

// NewMenu builds the interactive menu over the given streams
func (c *Container) NewMenu(in io.Reader, out io.Writer) *menu.Menu {
	return menu.NewMenu(c.listInterfacesUseCase, c.setModeUseCase, in, out, c.logger)
}
