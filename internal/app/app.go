package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/extport/internal/config"
	"github.com/specialistvlad/extport/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and
// loaded model.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	model  *config.Model
}

// NewApp builds the logger and loads the configuration model. Output is
// written to outW, logs to logW.
func NewApp(ctx context.Context, outW, logW io.Writer, cfg *Config, loader config.Loader) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, cfg.ConfigPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Debug("Configuration loaded.", "externals", len(model.Externals))

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		model:  model,
	}, nil
}

// Model returns the loaded configuration model.
func (a *App) Model() *config.Model {
	return a.model
}
