package app

import (
	"context"
	"errors"
	"time"

	"github.com/DennisDane/geekmagic-go/internal/ctxlog"
)

// tickGranularity bounds how quickly control actions and notification
// expiry take effect. The coordinator decides whether a tick actually
// renders.
const tickGranularity = time.Second

// Run executes the main loop until the context is cancelled. With Once
// set it renders and uploads a single frame and returns.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started")

	defer func() {
		_ = a.source.Close()
		_ = a.panel.Close()
	}()

	if a.cfg.ControlPort > 0 {
		a.startControlServer(a.cfg.ControlPort)
		defer a.closeControlServer()
	}

	if b := a.model.Device.Brightness; b != nil && !a.cfg.DryRun {
		if err := a.panel.SetBrightness(ctx, *b); err != nil {
			a.logger.Warn("failed to set panel brightness", "error", err)
		} else {
			a.logger.Debug("panel brightness set", "level", *b)
		}
	}

	if a.cfg.Once {
		a.logger.Info("rendering a single frame")
		return a.coordinator.Tick(ctx, time.Now())
	}

	a.logger.Info("dashboard loop starting",
		"screens", len(a.model.Screens),
		"interval", a.model.Settings.Interval,
		"dry_run", a.cfg.DryRun)

	if err := a.coordinator.Tick(ctx, time.Now()); err != nil {
		// The first frame often fails while the panel boots; keep going.
		a.logger.Warn("initial frame failed", "error", err)
	}

	ticker := time.NewTicker(tickGranularity)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			a.logger.Info("dashboard loop stopping")
			if err := ctx.Err(); !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		case now := <-ticker.C:
			if err := a.coordinator.Tick(ctx, now); err != nil {
				a.logger.Error("tick failed", "error", err)
			}
		}
	}
}
