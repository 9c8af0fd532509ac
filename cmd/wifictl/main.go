package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"wifictl/internal/infrastructure/adapters"
	"wifictl/internal/infrastructure/config"
	"wifictl/internal/infrastructure/container"
	"wifictl/internal/infrastructure/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

const version = "1.0.0"

// Exit codes
const (
	exitOK          = 0
	exitPrivilege   = 1
	exitMissingTool = 2
)

// requiredTools must be present for the tool to operate at all
var requiredTools = []string{"iw", "ip"}

func main() {
	os.Exit(run())
}

func run() int {
	// Initialize logger. The menu owns stdout, diagnostics go to stderr.
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{})

	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr != "" {
		logLevel, err := logrus.ParseLevel(logLevelStr)
		if err != nil {
			logger.WithError(err).Warnf("Unknown LOG_LEVEL value: %s. Using default Warn level.", logLevelStr)
			logger.SetLevel(logrus.WarnLevel)
		} else {
			logger.SetLevel(logLevel)
		}
	} else {
		// Default to Warn so routine logging stays out of the interactive session
		logger.SetLevel(logrus.WarnLevel)
	}

	// Load configuration
	configLoader := config.NewEnvironmentConfigLoader(adapters.NewRealFileSystem())
	cfg, err := configLoader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "wifictl: invalid configuration: %v\n", err)
		return exitMissingTool
	}

	// Startup checks: privilege first, then external tools
	runtime := adapters.NewRealRuntime()
	if !runtime.IsPrivileged() {
		fmt.Fprintln(os.Stderr, "wifictl: must be run as root")
		return exitPrivilege
	}

	for _, tool := range requiredTools {
		if _, err := runtime.LookTool(tool); err != nil {
			fmt.Fprintf(os.Stderr, "wifictl: required tool %q not found\n", tool)
			return exitMissingTool
		}
	}

	// Optional tools degrade features instead of aborting
	if cfg.Setter.EnableFallback {
		if _, err := runtime.LookTool("iwconfig"); err != nil {
			logger.Warn("iwconfig not found, legacy fallback disabled")
			cfg.Setter.EnableFallback = false
		}
	}
	if _, err := runtime.LookTool("systemctl"); err != nil {
		logger.Warn("systemctl not found, network-management daemon coordination disabled")
	}

	// Create dependency injection container
	appContainer, err := container.NewContainer(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wifictl: startup failed: %v\n", err)
		return exitMissingTool
	}

	metrics.SetBuildInfo(version)

	// Context and signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("Received shutdown signal")
		cancel()
	}()

	// Optional statistics listener
	if cfg.Stats.Port != "" {
		startStatsServer(appContainer, cfg.Stats.Port, logger)
	}

	m := appContainer.NewMenu(os.Stdin, os.Stdout)
	if err := m.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.WithError(err).Error("Menu loop terminated unexpectedly")
	}

	return exitOK
}

// startStatsServer serves session statistics and prometheus metrics
func startStatsServer(c *container.Container, port string, logger *logrus.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/", c.GetStatsService())
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:    ":" + port,
		Handler: mux,
	}

	go func() {
		logger.WithField("port", port).Info("Statistics server started (with /metrics)")
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			logger.WithError(err).Error("Statistics server failed")
		}
	}()
}
