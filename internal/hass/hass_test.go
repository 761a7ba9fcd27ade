package hass

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEntityIsOn(t *testing.T) {
	t.Parallel()

	cases := []struct {
		state string
		want  bool
	}{
		{state: "on", want: true},
		{state: "ON", want: true},
		{state: "home", want: true},
		{state: "locked", want: true},
		{state: "true", want: true},
		{state: "1", want: true},
		{state: "off", want: false},
		{state: "away", want: false},
		{state: "unavailable", want: false},
		{state: "", want: false},
	}

	for _, tc := range cases {
		e := Entity{State: tc.state}
		require.Equal(t, tc.want, e.IsOn(), "state %q", tc.state)
	}
}

func TestEntityNumeric(t *testing.T) {
	t.Parallel()

	v, ok := Entity{State: "23.5"}.Numeric()
	require.True(t, ok)
	require.InDelta(t, 23.5, v, 1e-9)

	_, ok = Entity{State: "unavailable"}.Numeric()
	require.False(t, ok)

	v, ok = Entity{State: " 42 "}.Numeric()
	require.True(t, ok)
	require.InDelta(t, 42, v, 1e-9)
}

func TestEntityAttributes(t *testing.T) {
	t.Parallel()

	e := Entity{
		EntityID: "sensor.office_temp",
		Attributes: map[string]any{
			"friendly_name":       "Office",
			"unit_of_measurement": "°C",
			"battery_level":       float64(87),
			"max":                 "100",
		},
	}

	require.Equal(t, "Office", e.FriendlyName())
	require.Equal(t, "°C", e.Unit())

	v, ok := e.NumberAttr("battery_level")
	require.True(t, ok)
	require.InDelta(t, 87, v, 1e-9)

	v, ok = e.NumberAttr("max")
	require.True(t, ok)
	require.InDelta(t, 100, v, 1e-9)

	_, ok = e.NumberAttr("friendly_name")
	require.False(t, ok)

	bare := Entity{EntityID: "sensor.no_name"}
	require.Equal(t, "sensor.no_name", bare.FriendlyName())
}

func TestSnapshotFetch(t *testing.T) {
	t.Parallel()

	var gotAuth atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/states", r.URL.Path)
		gotAuth.Store(r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"entity_id": "sensor.temp", "state": "21.4", "attributes": {"unit_of_measurement": "°C"}},
			{"entity_id": "light.desk", "state": "on", "attributes": {}}
		]`))
	}))
	defer srv.Close()

	c := New(srv.URL, "secret-token")
	defer c.Close()

	snap, err := c.Snapshot(context.Background())
	require.NoError(t, err)
	require.False(t, snap.Stale)
	require.Equal(t, 2, snap.Len())
	require.Equal(t, "Bearer secret-token", gotAuth.Load())

	temp, ok := snap.Get("sensor.temp")
	require.True(t, ok)
	require.Equal(t, "°C", temp.Unit())

	_, ok = snap.Get("sensor.missing")
	require.False(t, ok)
}

func TestSnapshotStaleFallback(t *testing.T) {
	t.Parallel()

	var fail atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"entity_id": "sensor.temp", "state": "20", "attributes": {}}]`))
	}))
	defer srv.Close()

	c := New(srv.URL, "token")
	defer c.Close()

	good, err := c.Snapshot(context.Background())
	require.NoError(t, err)

	fail.Store(true)
	stale, err := c.Snapshot(context.Background())
	require.Error(t, err)
	require.NotNil(t, stale)
	require.True(t, stale.Stale)
	require.Equal(t, good.Taken, stale.Taken)
	require.Equal(t, 1, stale.Len())
}

func TestSnapshotAuthError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message": "Invalid authentication"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "expired-token")
	defer c.Close()

	_, err := c.Snapshot(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.True(t, apiErr.IsAuth())
	require.Contains(t, apiErr.Error(), "Invalid authentication")
}

func TestSnapshotTransportErrorIsNotAuth(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, "token")
	defer c.Close()

	_, err := c.Snapshot(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.False(t, apiErr.IsAuth())
}

func TestSnapshotNoFallbackOnFirstFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, "token")
	defer c.Close()

	snap, err := c.Snapshot(context.Background())
	require.Error(t, err)
	require.Nil(t, snap)
}

func TestNewSnapshot(t *testing.T) {
	t.Parallel()

	taken := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	snap := NewSnapshot(taken, Entity{EntityID: "a", State: "on"})
	require.Equal(t, taken, snap.Taken)
	require.Equal(t, 1, snap.Len())

	var nilSnap *Snapshot
	require.Equal(t, 0, nilSnap.Len())
	_, ok := nilSnap.Get("a")
	require.False(t, ok)
}
