package integration

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"wifictl/internal/application/menu"
	"wifictl/internal/application/usecases"
	"wifictl/internal/domain/services"
	"wifictl/internal/infrastructure/adapters"
	"wifictl/internal/infrastructure/health"
	infraservices "wifictl/internal/infrastructure/services"
	"wifictl/internal/infrastructure/wireless"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCommandExecutor is a mock implementation of the CommandExecutor interface
type MockCommandExecutor struct {
	mock.Mock
}

func (m *MockCommandExecutor) Execute(ctx context.Context, command string, args ...string) ([]byte, error) {
	mockArgs := m.Called(ctx, command, args)
	return mockArgs.Get(0).([]byte), mockArgs.Error(1)
}

func (m *MockCommandExecutor) ExecuteWithTimeout(ctx context.Context, timeout time.Duration, command string, args ...string) ([]byte, error) {
	mockArgs := m.Called(ctx, timeout, command, args)
	return mockArgs.Get(0).([]byte), mockArgs.Error(1)
}

// MockFileSystem is a mock implementation of the FileSystem interface
type MockFileSystem struct {
	mock.Mock
}

func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	args := m.Called(path)
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockFileSystem) Exists(path string) bool {
	args := m.Called(path)
	return args.Bool(0)
}

// buildMenu wires the real collector, mode adapter, daemon guard, usecases
// and menu over mocked command execution, mirroring the production
// container without the real adapters.
func buildMenu(t *testing.T, executor *MockCommandExecutor, fs *MockFileSystem, input string, out *bytes.Buffer) *menu.Menu {
	t.Helper()

	logger := logrus.New()
	logger.SetLevel(logrus.FatalLevel)

	matcher, err := services.NewWirelessNameMatcher(`^(wlan|wlp|wlx|wifi|ath|wl)`)
	require.NoError(t, err)

	collector := wireless.NewIWCollector(executor, matcher, false, 10*time.Second, logger)
	modeAdapter := wireless.NewIWModeAdapter(executor, fs, 10*time.Second, logger)

	controller := infraservices.NewSystemdController(executor, 10*time.Second, logger)
	guard := infraservices.NewNetworkDaemonGuard(controller, "NetworkManager", logger)

	stats := health.NewStatsService(adapters.NewRealClock(), logger)

	lister := usecases.NewListInterfacesUseCase(collector, logger)
	setter := usecases.NewSetModeUseCase(modeAdapter, guard, stats, adapters.NewRealClock(), logger, true, true)

	return menu.NewMenu(lister, setter, strings.NewReader(input), out, logger)
}

const singleInterfaceIWDev = `phy#0
	Interface wlan0
		ifindex 3
		type managed
`

const dualInterfaceIWDev = `phy#0
	Interface wlan0
		ifindex 3
		type managed
phy#1
	Interface wlan1
		ifindex 4
		type managed
`

func TestMenuFlow_MonitorSuccessLeavesDaemonStopped(t *testing.T) {
	executor := new(MockCommandExecutor)
	fs := new(MockFileSystem)

	executor.On("ExecuteWithTimeout", mock.Anything, mock.Anything, "iw", []string{"dev"}).
		Return([]byte(singleInterfaceIWDev), nil)
	fs.On("Exists", "/sys/class/net/wlan0").Return(true)

	// Daemon is active and gets stopped; a successful monitor transition
	// must NOT restart it.
	executor.On("ExecuteWithTimeout", mock.Anything, mock.Anything, "systemctl", []string{"is-active", "NetworkManager"}).
		Return([]byte("active\n"), nil).Once()
	executor.On("ExecuteWithTimeout", mock.Anything, mock.Anything, "systemctl", []string{"stop", "NetworkManager"}).
		Return([]byte(""), nil).Once()

	executor.On("ExecuteWithTimeout", mock.Anything, mock.Anything, "ip", []string{"link", "set", "wlan0", "down"}).
		Return([]byte(""), nil).Once()
	executor.On("ExecuteWithTimeout", mock.Anything, mock.Anything, "iw", []string{"dev", "wlan0", "set", "type", "monitor"}).
		Return([]byte(""), nil).Once()
	executor.On("ExecuteWithTimeout", mock.Anything, mock.Anything, "ip", []string{"link", "set", "wlan0", "up"}).
		Return([]byte(""), nil).Once()

	var out bytes.Buffer
	m := buildMenu(t, executor, fs, "1\n1\nn\n", &out)

	require.NoError(t, m.Run(context.Background()))

	assert.Contains(t, out.String(), "wlan0 -> monitor: success")
	executor.AssertExpectations(t)
	executor.AssertNotCalled(t, "ExecuteWithTimeout", mock.Anything, mock.Anything, "systemctl", []string{"start", "NetworkManager"})
}

func TestMenuFlow_ManagedSuccessRestartsDaemon(t *testing.T) {
	executor := new(MockCommandExecutor)
	fs := new(MockFileSystem)

	executor.On("ExecuteWithTimeout", mock.Anything, mock.Anything, "iw", []string{"dev"}).
		Return([]byte(dualInterfaceIWDev), nil)
	fs.On("Exists", "/sys/class/net/wlan1").Return(true)

	executor.On("ExecuteWithTimeout", mock.Anything, mock.Anything, "systemctl", []string{"is-active", "NetworkManager"}).
		Return([]byte("active\n"), nil).Once()
	executor.On("ExecuteWithTimeout", mock.Anything, mock.Anything, "systemctl", []string{"stop", "NetworkManager"}).
		Return([]byte(""), nil).Once()
	executor.On("ExecuteWithTimeout", mock.Anything, mock.Anything, "systemctl", []string{"start", "NetworkManager"}).
		Return([]byte(""), nil).Once()

	executor.On("ExecuteWithTimeout", mock.Anything, mock.Anything, "ip", []string{"link", "set", "wlan1", "down"}).
		Return([]byte(""), nil).Once()
	executor.On("ExecuteWithTimeout", mock.Anything, mock.Anything, "iw", []string{"dev", "wlan1", "set", "type", "managed"}).
		Return([]byte(""), nil).Once()
	executor.On("ExecuteWithTimeout", mock.Anything, mock.Anything, "ip", []string{"link", "set", "wlan1", "up"}).
		Return([]byte(""), nil).Once()

	var out bytes.Buffer
	m := buildMenu(t, executor, fs, "2\n2\nn\n", &out)

	require.NoError(t, m.Run(context.Background()))

	assert.Contains(t, out.String(), "  1) wlan0")
	assert.Contains(t, out.String(), "  2) wlan1")
	assert.Contains(t, out.String(), "wlan1 -> managed: success")
	executor.AssertExpectations(t)
}

func TestMenuFlow_NoInterfacesExitsCleanly(t *testing.T) {
	executor := new(MockCommandExecutor)
	fs := new(MockFileSystem)

	executor.On("ExecuteWithTimeout", mock.Anything, mock.Anything, "iw", []string{"dev"}).
		Return([]byte(""), nil)

	var out bytes.Buffer
	m := buildMenu(t, executor, fs, "", &out)

	require.NoError(t, m.Run(context.Background()))

	assert.Contains(t, out.String(), "no wireless interfaces found")
	assert.NotContains(t, out.String(), "select interface")
}

func TestMenuFlow_InactiveDaemonIsNeverTouched(t *testing.T) {
	executor := new(MockCommandExecutor)
	fs := new(MockFileSystem)

	executor.On("ExecuteWithTimeout", mock.Anything, mock.Anything, "iw", []string{"dev"}).
		Return([]byte(singleInterfaceIWDev), nil)
	fs.On("Exists", "/sys/class/net/wlan0").Return(true)

	executor.On("ExecuteWithTimeout", mock.Anything, mock.Anything, "systemctl", []string{"is-active", "NetworkManager"}).
		Return([]byte("inactive\n"), nil).Once()

	executor.On("ExecuteWithTimeout", mock.Anything, mock.Anything, "ip", []string{"link", "set", "wlan0", "down"}).
		Return([]byte(""), nil).Once()
	executor.On("ExecuteWithTimeout", mock.Anything, mock.Anything, "iw", []string{"dev", "wlan0", "set", "type", "managed"}).
		Return([]byte(""), nil).Once()
	executor.On("ExecuteWithTimeout", mock.Anything, mock.Anything, "ip", []string{"link", "set", "wlan0", "up"}).
		Return([]byte(""), nil).Once()

	var out bytes.Buffer
	m := buildMenu(t, executor, fs, "1\n2\nn\n", &out)

	require.NoError(t, m.Run(context.Background()))

	// The daemon was not running beforehand, so stop/start are both skipped
	executor.AssertNotCalled(t, "ExecuteWithTimeout", mock.Anything, mock.Anything, "systemctl", []string{"stop", "NetworkManager"})
	executor.AssertNotCalled(t, "ExecuteWithTimeout", mock.Anything, mock.Anything, "systemctl", []string{"start", "NetworkManager"})
}
