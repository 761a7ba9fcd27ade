// Package app wires the application together: configuration, logging,
// the Home Assistant and device clients, the dashboard coordinator and
// the control server.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/DennisDane/geekmagic-go/internal/config"
	"github.com/DennisDane/geekmagic-go/internal/config/hclcfg"
	"github.com/DennisDane/geekmagic-go/internal/ctxlog"
	"github.com/DennisDane/geekmagic-go/internal/dashboard"
	"github.com/DennisDane/geekmagic-go/internal/device"
	"github.com/DennisDane/geekmagic-go/internal/hass"
	"github.com/DennisDane/geekmagic-go/internal/widget"
)

// Config holds everything an App instance needs to run.
type Config struct {
	ConfigPath  string
	ControlPort int
	LogFormat   string
	LogLevel    string
	Once        bool
	DryRun      bool
}

// App encapsulates the application's dependencies and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	cfg    *Config
	model  *config.Model

	source      *hass.Client
	panel       *device.Client
	coordinator *dashboard.Coordinator
	httpServer  *http.Server
}

// NewApp constructs the application: it loads and validates the
// configuration and builds the clients and coordinator. A configuration
// failure is a fatal startup error and panics; the CLI layer recovers it
// into a clean exit.
func NewApp(outW io.Writer, appConfig *Config) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("logger configured")

	model, err := hclcfg.NewLoader().Load(ctx, appConfig.ConfigPath)
	if err != nil {
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	if err := model.Validate(widget.Known); err != nil {
		panic(fmt.Errorf("invalid configuration: %w", err))
	}
	logger.Debug("configuration loaded",
		"screens", len(model.Screens), "themes", len(model.Themes))

	source := hass.New(model.Source.URL, model.Source.Token,
		hass.WithTimeout(model.Source.Timeout))
	panel := device.New(model.Device.Host,
		device.WithTimeout(model.Device.Timeout),
		device.WithUploadPath(model.Device.UploadPath))

	coordinator := dashboard.New(model, source, panel, logger, appConfig.DryRun)

	return &App{
		outW:        outW,
		logger:      logger,
		cfg:         appConfig,
		model:       model,
		source:      source,
		panel:       panel,
		coordinator: coordinator,
	}
}

// Coordinator exposes the dashboard coordinator. This is primarily for
// testing.
func (a *App) Coordinator() *dashboard.Coordinator {
	return a.coordinator
}
