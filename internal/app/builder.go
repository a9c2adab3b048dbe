package app

import (
	"go.trai.ch/corebuild/internal/core/domain"
	"go.trai.ch/corebuild/internal/core/ports"
)

// Components contains the initialized application components.
type Components struct {
	App      *App
	Logger   ports.Logger
	Settings *domain.Settings
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, logger ports.Logger, settings *domain.Settings) *Components {
	return &Components{
		App:      app,
		Logger:   logger,
		Settings: settings,
	}
}

// Close releases resources held by the components.
func (c *Components) Close() error {
	return c.App.Close()
}
