package config

import (
	"os"
	"regexp"
	"strconv"
	"time"

	"wifictl/internal/domain/errors"
	"wifictl/internal/domain/interfaces"

	"gopkg.in/yaml.v3"
)

// DefaultWirelessPattern matches the common Linux wireless naming schemes
// (wlan0, wlp3s0, wlx..., ath0, wifi0). Compiled case-insensitively.
const DefaultWirelessPattern = `^(wlan|wlp|wlx|wifi|ath|wl)`

// Config is a struct that holds application configuration
type Config struct {
	Daemon    DaemonConfig    `yaml:"daemon"`
	Collector CollectorConfig `yaml:"collector"`
	Setter    SetterConfig    `yaml:"setter"`
	Stats     StatsConfig     `yaml:"stats"`
}

// DaemonConfig configures coordination with the network-management daemon
type DaemonConfig struct {
	// Name is the systemd unit paused during manual mode changes
	Name string `yaml:"name"`

	// RestoreOnFailure restarts a stopped daemon on failed transitions
	// too. Disabling it reproduces the historical behavior where only a
	// successful managed transition restarted the daemon.
	RestoreOnFailure bool `yaml:"restore_on_failure"`
}

// CollectorConfig configures wireless interface discovery
type CollectorConfig struct {
	// MergeLinkScan merges the generic link listing into the iw results
	MergeLinkScan bool `yaml:"merge_link_scan"`

	// WirelessPattern filters link-listing names (case-insensitive)
	WirelessPattern string `yaml:"wireless_pattern"`
}

// SetterConfig configures the mode transition procedure
type SetterConfig struct {
	// EnableFallback attempts the legacy iwconfig primitive when iw fails
	EnableFallback bool `yaml:"enable_fallback"`

	// CommandTimeout bounds every external command invocation
	CommandTimeout time.Duration `yaml:"command_timeout"`
}

// StatsConfig configures the optional statistics listener
type StatsConfig struct {
	// Port enables the HTTP stats/metrics listener when non-empty
	Port string `yaml:"port"`
}

// fileConfig mirrors Config with optional fields so a partial YAML file
// only overrides the keys it sets.
type fileConfig struct {
	Daemon struct {
		Name             *string `yaml:"name"`
		RestoreOnFailure *bool   `yaml:"restore_on_failure"`
	} `yaml:"daemon"`
	Collector struct {
		MergeLinkScan   *bool   `yaml:"merge_link_scan"`
		WirelessPattern *string `yaml:"wireless_pattern"`
	} `yaml:"collector"`
	Setter struct {
		EnableFallback *bool   `yaml:"enable_fallback"`
		CommandTimeout *string `yaml:"command_timeout"`
	} `yaml:"setter"`
	Stats struct {
		Port *string `yaml:"port"`
	} `yaml:"stats"`
}

// ConfigLoader is an interface for loading configuration
type ConfigLoader interface {
	Load() (*Config, error)
}

// EnvironmentConfigLoader loads configuration from defaults, an optional
// YAML file (WIFICTL_CONFIG) and environment variable overrides, in that
// order of precedence (env wins).
type EnvironmentConfigLoader struct {
	fileSystem interfaces.FileSystem
}

// NewEnvironmentConfigLoader creates a new EnvironmentConfigLoader
func NewEnvironmentConfigLoader(fs interfaces.FileSystem) ConfigLoader {
	return &EnvironmentConfigLoader{fileSystem: fs}
}

// Load loads and validates the configuration
func (l *EnvironmentConfigLoader) Load() (*Config, error) {
	config := &Config{
		Daemon: DaemonConfig{
			Name:             "NetworkManager",
			RestoreOnFailure: true,
		},
		Collector: CollectorConfig{
			MergeLinkScan:   true,
			WirelessPattern: DefaultWirelessPattern,
		},
		Setter: SetterConfig{
			EnableFallback: true,
			CommandTimeout: 15 * time.Second,
		},
		Stats: StatsConfig{
			Port: "",
		},
	}

	if err := l.applyFile(config); err != nil {
		return nil, err
	}

	l.applyEnvironment(config)

	if err := l.validate(config); err != nil {
		return nil, err
	}

	return config, nil
}

// applyFile overlays the optional YAML configuration file
func (l *EnvironmentConfigLoader) applyFile(config *Config) error {
	path := os.Getenv("WIFICTL_CONFIG")
	if path == "" {
		return nil
	}

	if !l.fileSystem.Exists(path) {
		return errors.NewNotFoundError("configuration file not found: " + path)
	}

	content, err := l.fileSystem.ReadFile(path)
	if err != nil {
		return errors.NewSystemError("failed to read configuration file", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(content, &fc); err != nil {
		return errors.NewValidationError("failed to parse configuration file", err)
	}

	if fc.Daemon.Name != nil {
		config.Daemon.Name = *fc.Daemon.Name
	}
	if fc.Daemon.RestoreOnFailure != nil {
		config.Daemon.RestoreOnFailure = *fc.Daemon.RestoreOnFailure
	}
	if fc.Collector.MergeLinkScan != nil {
		config.Collector.MergeLinkScan = *fc.Collector.MergeLinkScan
	}
	if fc.Collector.WirelessPattern != nil {
		config.Collector.WirelessPattern = *fc.Collector.WirelessPattern
	}
	if fc.Setter.EnableFallback != nil {
		config.Setter.EnableFallback = *fc.Setter.EnableFallback
	}
	if fc.Setter.CommandTimeout != nil {
		duration, err := time.ParseDuration(*fc.Setter.CommandTimeout)
		if err != nil {
			return errors.NewValidationError("invalid command_timeout in configuration file", err)
		}
		config.Setter.CommandTimeout = duration
	}
	if fc.Stats.Port != nil {
		config.Stats.Port = *fc.Stats.Port
	}

	return nil
}

// applyEnvironment overlays environment variable overrides
func (l *EnvironmentConfigLoader) applyEnvironment(config *Config) {
	config.Daemon.Name = getEnvOrDefault("WIFICTL_DAEMON_NAME", config.Daemon.Name)
	config.Daemon.RestoreOnFailure = getEnvBoolOrDefault("WIFICTL_DAEMON_RESTORE_ON_FAILURE", config.Daemon.RestoreOnFailure)
	config.Collector.MergeLinkScan = getEnvBoolOrDefault("WIFICTL_MERGE_LINK_SCAN", config.Collector.MergeLinkScan)
	config.Collector.WirelessPattern = getEnvOrDefault("WIFICTL_WIRELESS_PATTERN", config.Collector.WirelessPattern)
	config.Setter.EnableFallback = getEnvBoolOrDefault("WIFICTL_ENABLE_FALLBACK", config.Setter.EnableFallback)
	config.Setter.CommandTimeout = getEnvDurationOrDefault("WIFICTL_COMMAND_TIMEOUT", config.Setter.CommandTimeout)
	config.Stats.Port = getEnvOrDefault("WIFICTL_STATS_PORT", config.Stats.Port)
}

// validate validates the configuration
func (l *EnvironmentConfigLoader) validate(config *Config) error {
	if config.Daemon.Name == "" {
		return errors.NewValidationError("network-management daemon name not configured", nil)
	}
	if config.Setter.CommandTimeout <= 0 {
		return errors.NewValidationError("invalid command timeout", nil)
	}
	if _, err := regexp.Compile("(?i)" + config.Collector.WirelessPattern); err != nil {
		return errors.NewValidationError("invalid wireless name pattern", err)
	}
	if config.Stats.Port != "" {
		if _, err := strconv.Atoi(config.Stats.Port); err != nil {
			return errors.NewValidationError("invalid stats port", err)
		}
	}
	return nil
}

// Environment variable helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
