package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/DennisDane/geekmagic-go/internal/config"
	"github.com/DennisDane/geekmagic-go/internal/dashboard"
	"github.com/DennisDane/geekmagic-go/internal/hass"
)

// fakeHA serves a minimal Home Assistant states API.
func fakeHA(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[
			{"entity_id": "sensor.office_temp", "state": "21.5",
			 "attributes": {"friendly_name": "Office", "unit_of_measurement": "°C"}}
		]`)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func writeAppConfig(t *testing.T, haURL string) string {
	t.Helper()
	src := fmt.Sprintf(`
device {
  host = "panel.invalid"
}

home_assistant {
  url   = %q
  token = "llat"
}

screen "main" {
  layout = "split_horizontal"

  widget "clock" {
    slot = 0
  }

  widget "entity" {
    slot = 1
    options {
      entity = "sensor.office_temp"
    }
  }
}
`, haURL)
	path := filepath.Join(t.TempDir(), "dashboard.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestNewAppAndRunOnceDryRun(t *testing.T) {
	t.Parallel()

	ha := fakeHA(t)
	var out bytes.Buffer

	a := NewApp(&out, &Config{
		ConfigPath: writeAppConfig(t, ha.URL),
		LogLevel:   "debug",
		LogFormat:  "text",
		Once:       true,
		DryRun:     true,
	})

	require.NoError(t, a.Run(context.Background()))
	require.Equal(t, uint64(1), a.Coordinator().Status().Frames)
	require.NotNil(t, a.Coordinator().Preview())
	require.True(t, strings.Contains(out.String(), "single frame"))
}

func TestNewAppPanicsOnBadConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`screen "x" { layout = "nope" }`), 0o644))

	var out bytes.Buffer
	require.Panics(t, func() {
		NewApp(&out, &Config{ConfigPath: path, LogLevel: "error"})
	})
}

func TestRunStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	ha := fakeHA(t)
	var out bytes.Buffer
	a := NewApp(&out, &Config{
		ConfigPath: writeAppConfig(t, ha.URL),
		LogLevel:   "error",
		DryRun:     true,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not stop after cancellation")
	}
}

// controlApp builds an App around coordinator fakes for handler tests.
func controlApp(t *testing.T) *App {
	t.Helper()

	model := &config.Model{
		Device:   config.Device{Host: "panel.invalid", Filename: "dashboard.jpg"},
		Source:   config.Source{URL: "http://ha.invalid", Token: "t"},
		Settings: config.Settings{Interval: 30 * time.Second, JPEGQuality: 92, Theme: "classic"},
		Screens: []*config.Screen{
			{Name: "first", Layout: "grid_2x2", Widgets: []*config.Widget{{Type: "clock"}}},
			{Name: "second", Layout: "hero", Widgets: []*config.Widget{{Type: "clock"}}},
		},
	}
	source := snapshotFunc(func(ctx context.Context) (*hass.Snapshot, error) {
		return hass.NewSnapshot(time.Now()), nil
	})
	coord := dashboard.New(model, source, nil, nil, true)

	var out bytes.Buffer
	return &App{
		outW:        &out,
		logger:      newLogger("error", "text", &out),
		cfg:         &Config{DryRun: true},
		model:       model,
		coordinator: coord,
	}
}

type snapshotFunc func(ctx context.Context) (*hass.Snapshot, error)

func (f snapshotFunc) Snapshot(ctx context.Context) (*hass.Snapshot, error) { return f(ctx) }

func TestControlEndpoints(t *testing.T) {
	t.Parallel()

	a := controlApp(t)
	srv := httptest.NewServer(a.controlMux())
	t.Cleanup(srv.Close)

	// Render one frame so preview and status have content.
	require.NoError(t, a.coordinator.Tick(context.Background(), time.Now()))

	res, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)
	_ = res.Body.Close()

	res, err = http.Get(srv.URL + "/status")
	require.NoError(t, err)
	body, _ := io.ReadAll(res.Body)
	_ = res.Body.Close()
	require.Contains(t, string(body), `"screen":"first"`)

	res, err = http.Get(srv.URL + "/preview.png")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "image/png", res.Header.Get("Content-Type"))
	_ = res.Body.Close()

	res, err = http.Get(srv.URL + "/preview.png?scale=2")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)
	_ = res.Body.Close()

	res, err = http.Get(srv.URL + "/preview.png?scale=99")
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	_ = res.Body.Close()

	res, err = http.Post(srv.URL+"/screen/next", "", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusAccepted, res.StatusCode)
	_ = res.Body.Close()
	require.Equal(t, "second", a.coordinator.Status().Screen)

	res, err = http.Post(srv.URL+"/screen/0", "", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusAccepted, res.StatusCode)
	_ = res.Body.Close()
	require.Equal(t, "first", a.coordinator.Status().Screen)

	res, err = http.Post(srv.URL+"/screen/9", "", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	_ = res.Body.Close()
}

func TestControlNotify(t *testing.T) {
	t.Parallel()

	a := controlApp(t)
	srv := httptest.NewServer(a.controlMux())
	t.Cleanup(srv.Close)

	res, err := http.Post(srv.URL+"/notify", "application/json",
		strings.NewReader(`{"title": "Doorbell", "message": "Front door", "duration": "30s"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusAccepted, res.StatusCode)
	_ = res.Body.Close()
	require.True(t, a.coordinator.Status().Notification)

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/notify", nil)
	require.NoError(t, err)
	res, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusNoContent, res.StatusCode)
	_ = res.Body.Close()
	require.False(t, a.coordinator.Status().Notification)

	res, err = http.Post(srv.URL+"/notify", "application/json",
		strings.NewReader(`{"duration": "5s"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	_ = res.Body.Close()

	res, err = http.Post(srv.URL+"/notify", "application/json",
		strings.NewReader(`not json`))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	_ = res.Body.Close()
}
