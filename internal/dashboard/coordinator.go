// Package dashboard drives the render-and-upload cycle: it polls entity
// state, composes the active screen into a frame, pushes it to the panel
// and rotates through the configured screens.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/DennisDane/geekmagic-go/internal/config"
	"github.com/DennisDane/geekmagic-go/internal/hass"
	"github.com/DennisDane/geekmagic-go/internal/template"
	"github.com/DennisDane/geekmagic-go/internal/widget"
)

// StateSource supplies entity snapshots. *hass.Client implements it.
type StateSource interface {
	Snapshot(ctx context.Context) (*hass.Snapshot, error)
}

// Device is the panel surface the coordinator pushes frames to.
// *device.Client implements it.
type Device interface {
	UploadAndDisplay(ctx context.Context, filename string, data []byte) error
}

// Notification is a transient overlay that preempts the screen cycle
// until it expires or is dismissed.
type Notification struct {
	Title   string
	Message string
	Icon    string
	Expires time.Time
}

// Status is the introspection view served by the control endpoint.
type Status struct {
	Screen       string    `json:"screen"`
	ScreenIndex  int       `json:"screen_index"`
	Screens      []string  `json:"screens"`
	Frames       uint64    `json:"frames"`
	LastRender   time.Time `json:"last_render"`
	LastError    string    `json:"last_error,omitempty"`
	StaleData    bool      `json:"stale_data"`
	Notification bool      `json:"notification_active"`
}

// Coordinator owns the screen cycle. All exported methods are safe for
// concurrent use; the control server calls in while the tick loop runs.
type Coordinator struct {
	cfg      *config.Model
	source   StateSource
	dev      Device
	resolver *template.Resolver
	log      *slog.Logger
	dryRun   bool

	mu           sync.Mutex
	current      int
	shownAt      time.Time
	dirty        bool
	notification *Notification
	history      map[string]*ring
	lastPNG      []byte
	lastRender   time.Time
	lastErr      string
	frames       uint64
	stale        bool
}

// New creates a coordinator. With dryRun set, frames are rendered but
// never uploaded.
func New(cfg *config.Model, source StateSource, dev Device, log *slog.Logger, dryRun bool) *Coordinator {
	if log == nil {
		log = slog.Default()
	}
	return &Coordinator{
		cfg:      cfg,
		source:   source,
		dev:      dev,
		resolver: template.NewResolver(log),
		log:      log,
		dryRun:   dryRun,
		history:  make(map[string]*ring),
	}
}

// Tick advances the dashboard. It renders and uploads when the active
// screen's display time has elapsed, a control call changed state, or a
// notification appeared or expired; otherwise it is a no-op. The caller
// ticks it faster than the shortest screen duration.
func (c *Coordinator) Tick(ctx context.Context, now time.Time) error {
	c.mu.Lock()

	if n := c.notification; n != nil && now.After(n.Expires) {
		c.notification = nil
		c.dirty = true
	}

	// An active overlay owns the panel: the screen interval does not
	// elapse under it, so the cycle resumes where it left off.
	due := c.notification == nil &&
		(c.shownAt.IsZero() || now.Sub(c.shownAt) >= c.cfg.IntervalFor(c.screenLocked()))
	if due && !c.shownAt.IsZero() {
		c.advanceLocked()
	}
	render := due || c.dirty
	c.dirty = false
	c.mu.Unlock()

	if !render {
		return nil
	}
	return c.renderAndPush(ctx, now)
}

// Notify shows an overlay for the given duration. A zero duration keeps
// it up until the next Dismiss.
func (c *Coordinator) Notify(n Notification, d time.Duration, now time.Time) {
	if d > 0 {
		n.Expires = now.Add(d)
	} else {
		n.Expires = now.Add(24 * time.Hour)
	}
	c.mu.Lock()
	c.notification = &n
	c.dirty = true
	c.mu.Unlock()
}

// Dismiss clears an active notification.
func (c *Coordinator) Dismiss() {
	c.mu.Lock()
	if c.notification != nil {
		c.notification = nil
		c.dirty = true
	}
	c.mu.Unlock()
}

// Next switches to the next screen in the cycle.
func (c *Coordinator) Next() {
	c.mu.Lock()
	c.advanceLocked()
	c.dirty = true
	c.mu.Unlock()
}

// Prev switches to the previous screen.
func (c *Coordinator) Prev() {
	c.mu.Lock()
	c.current = (c.current - 1 + len(c.cfg.Screens)) % len(c.cfg.Screens)
	c.shownAt = time.Time{}
	c.dirty = true
	c.mu.Unlock()
}

// SetScreen jumps to a screen by index.
func (c *Coordinator) SetScreen(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.cfg.Screens) {
		return fmt.Errorf("dashboard: screen index %d out of range 0-%d", index, len(c.cfg.Screens)-1)
	}
	c.current = index
	c.shownAt = time.Time{}
	c.dirty = true
	return nil
}

// Preview returns the most recently rendered frame as PNG, or nil when
// nothing has rendered yet.
func (c *Coordinator) Preview() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastPNG
}

// Status reports the coordinator's current state.
func (c *Coordinator) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	names := make([]string, len(c.cfg.Screens))
	for i, s := range c.cfg.Screens {
		names[i] = s.Name
	}
	return Status{
		Screen:       c.screenLocked().Name,
		ScreenIndex:  c.current,
		Screens:      names,
		Frames:       c.frames,
		LastRender:   c.lastRender,
		LastError:    c.lastErr,
		StaleData:    c.stale,
		Notification: c.notification != nil,
	}
}

func (c *Coordinator) screenLocked() *config.Screen {
	return c.cfg.Screens[c.current]
}

func (c *Coordinator) advanceLocked() {
	c.current = (c.current + 1) % len(c.cfg.Screens)
	c.shownAt = time.Time{}
}

func (c *Coordinator) renderAndPush(ctx context.Context, now time.Time) error {
	snap, err := c.source.Snapshot(ctx)
	if err != nil {
		if snap == nil {
			c.recordError(err)
			return err
		}
		c.log.Warn("state fetch failed, rendering stale snapshot", "error", err)
	}

	c.recordHistory(snap, now)

	c.mu.Lock()
	screen := c.screenLocked()
	notification := c.notification
	c.mu.Unlock()

	var r *frame
	if notification != nil {
		r, err = c.renderNotification(notification, now)
	} else {
		r, err = c.renderScreen(screen, snap, now)
	}
	if err != nil {
		c.recordError(err)
		return err
	}

	data, err := r.jpeg(c.cfg.Settings.JPEGQuality, c.cfg.Settings.MaxUploadBytes)
	if err != nil {
		// Quality floor reached; the frame still uploads.
		c.log.Warn("frame exceeds upload limit at minimum quality", "error", err)
	}

	if !c.dryRun {
		if err := c.dev.UploadAndDisplay(ctx, c.cfg.Device.Filename, data); err != nil {
			c.recordError(err)
			return err
		}
	}

	png, pngErr := r.png()
	if pngErr != nil {
		c.log.Warn("preview encode failed", "error", pngErr)
	}

	c.mu.Lock()
	c.frames++
	c.lastRender = now
	c.lastErr = ""
	c.stale = snap.Stale
	if png != nil {
		c.lastPNG = png
	}
	if c.shownAt.IsZero() {
		c.shownAt = now
	}
	c.mu.Unlock()

	c.log.Debug("frame pushed",
		"screen", screen.Name,
		"bytes", len(data),
		"stale", snap.Stale,
		"notification", notification != nil)
	return nil
}

func (c *Coordinator) recordError(err error) {
	c.mu.Lock()
	c.lastErr = err.Error()
	c.mu.Unlock()
	c.log.Error("tick failed", "error", err)
}

// recordHistory samples the entities chart widgets track. Samples are
// taken per fetch, not per screen, so a chart fills even while its
// screen is off-cycle.
func (c *Coordinator) recordHistory(snap *hass.Snapshot, now time.Time) {
	ectx := template.Context(snap, now)
	seen := make(map[string]struct{})

	for _, screen := range c.cfg.Screens {
		for _, wc := range screen.Widgets {
			w, ok := widget.New(wc.Type)
			if !ok {
				continue
			}
			tracker, ok := w.(widget.HistoryTracker)
			if !ok {
				continue
			}
			opts := widget.NewOptions(wc.Static, c.resolver.ResolveAll(wc.Dynamic, ectx))
			for _, id := range tracker.TrackedEntities(opts) {
				if _, dup := seen[id]; dup {
					continue
				}
				seen[id] = struct{}{}

				ent, found := snap.Get(id)
				if !found {
					continue
				}
				v, ok := ent.Numeric()
				if !ok {
					continue
				}
				c.mu.Lock()
				r := c.history[id]
				if r == nil {
					r = newRing()
					c.history[id] = r
				}
				r.push(v)
				c.mu.Unlock()
			}
		}
	}
}

func (c *Coordinator) historyFor(id string) []float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	r := c.history[id]
	if r == nil {
		return nil
	}
	return r.values()
}
