package app

import (
	"io"
	"log/slog"

	"github.com/vk/nfa2dfa/internal/codec"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader codec.Loader
}

// NewApp is the constructor for the main application. The converted DFA is
// written to outW; logs go to logW. loader reads the input described by cfg.
func NewApp(outW, logW io.Writer, cfg *Config, loader codec.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.", "level", cfg.LogLevel, "format", cfg.LogFormat)

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		loader: loader,
	}
}

// Logger returns the application's logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}
