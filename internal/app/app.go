// Package app provides the application initialization and lifecycle management
package app

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/tildaslashalef/critic/internal/config"
	"github.com/tildaslashalef/critic/internal/llm"
	"github.com/tildaslashalef/critic/internal/loggy"
	"github.com/tildaslashalef/critic/internal/report"
	"github.com/tildaslashalef/critic/internal/review"
	"github.com/tildaslashalef/critic/internal/scanner"
)

// App represents the application instance with its dependencies
type App struct {
	Config   *config.Config
	Factory  *llm.Factory
	Scanner  *scanner.Service
	Review   *review.Service
	Report   *report.Service
	Provider llm.ClientType
}

// New initializes a new application instance with all its dependencies.
// The credential precondition is enforced here: a missing key for the
// selected provider fails initialization before any file or network I/O.
func New() (*App, error) {
	cfg, err := initConfig()
	if err != nil {
		return nil, err
	}

	if err := initLogger(cfg); err != nil {
		return nil, err
	}

	loggy.Info("Application initializing",
		"provider", cfg.DefaultProvider,
		"log_level", cfg.Logging.Level,
	)

	return initServices(cfg)
}

// initConfig loads and sets up the application configuration
func initConfig() (*config.Config, error) {
	cfg, err := config.LoadFromEnv("", "")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Set the global configuration
	config.Set(cfg)
	return cfg, nil
}

// initLogger initializes the logging system
func initLogger(cfg *config.Config) error {
	err := loggy.Init(loggy.Config{
		Level:      config.ParseLogLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		Output:     cfg.Logging.Output,
		AddSource:  cfg.Logging.AddSource,
		TimeFormat: cfg.Logging.TimeFormat,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// initServices initializes all application services
func initServices(cfg *config.Config) (*App, error) {
	logger := loggy.GetGlobalLogger()

	scannerService := scanner.NewService(cfg.Scan, logger)

	llmFactory := llm.NewFactory(cfg, logger)
	llmClient, clientType, err := llmFactory.GetDefaultClient()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM client: %w", err)
	}
	loggy.Info("Initialized LLM client", "type", clientType)

	reviewService := review.NewService(
		scannerService,
		llmClient,
		cfg,
		string(clientType),
		logger,
	)

	reportService := report.NewService(cfg.Report, logger)

	return &App{
		Config:   cfg,
		Factory:  llmFactory,
		Scanner:  scannerService,
		Review:   reviewService,
		Report:   reportService,
		Provider: clientType,
	}, nil
}

// FromContext retrieves the App instance from the CLI context
func FromContext(c *cli.Context) (*App, error) {
	if c.App.Metadata == nil {
		return nil, fmt.Errorf("app metadata not found in context")
	}

	app, ok := c.App.Metadata["app"].(*App)
	if !ok {
		return nil, fmt.Errorf("app instance not found in context")
	}

	return app, nil
}
