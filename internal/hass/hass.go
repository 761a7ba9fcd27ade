// Package hass reads entity state from a Home Assistant instance over its
// REST API. The dashboard only ever needs a point-in-time view, so the
// client exposes snapshots rather than individual entity lookups.
package hass

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"resty.dev/v3"
)

// APIError reports a non-success response from Home Assistant.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	body := e.Body
	if len(body) > 120 {
		body = body[:120] + "..."
	}
	return fmt.Sprintf("hass: fetch states: status %d: %s", e.StatusCode, body)
}

// IsAuth reports whether the instance rejected the access token.
func (e *APIError) IsAuth() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// Entity is one entity row from GET /api/states.
type Entity struct {
	EntityID    string         `json:"entity_id"`
	State       string         `json:"state"`
	Attributes  map[string]any `json:"attributes"`
	LastUpdated time.Time      `json:"last_updated"`
}

// onStates are the entity states treated as "active" for binary display
// purposes.
var onStates = map[string]struct{}{
	"on":     {},
	"true":   {},
	"home":   {},
	"locked": {},
	"1":      {},
}

// IsOn reports whether the entity is in an active state.
func (e Entity) IsOn() bool {
	_, ok := onStates[strings.ToLower(e.State)]
	return ok
}

// Numeric parses the state as a number. Unavailable and non-numeric
// states report false.
func (e Entity) Numeric() (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(e.State), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Unit returns the entity's unit_of_measurement attribute, if any.
func (e Entity) Unit() string {
	return e.StringAttr("unit_of_measurement")
}

// FriendlyName returns the friendly_name attribute, falling back to the
// entity id.
func (e Entity) FriendlyName() string {
	if name := e.StringAttr("friendly_name"); name != "" {
		return name
	}
	return e.EntityID
}

// StringAttr returns a string attribute, or "" when absent or not a
// string.
func (e Entity) StringAttr(key string) string {
	s, _ := e.Attributes[key].(string)
	return s
}

// NumberAttr returns a numeric attribute. JSON numbers decode as float64;
// numeric strings are accepted too.
func (e Entity) NumberAttr(key string) (float64, bool) {
	switch v := e.Attributes[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// Snapshot is a point-in-time view of all entity states. Widgets resolve
// against one snapshot per frame so a single render never mixes two
// polls.
type Snapshot struct {
	Taken    time.Time
	Stale    bool
	entities map[string]Entity
}

// Get looks up an entity by id.
func (s *Snapshot) Get(entityID string) (Entity, bool) {
	if s == nil {
		return Entity{}, false
	}
	e, ok := s.entities[entityID]
	return e, ok
}

// Len returns the number of entities in the snapshot.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entities)
}

// Client polls Home Assistant and retains the last good snapshot so a
// transient outage degrades to stale data instead of a blank display.
type Client struct {
	rc *resty.Client

	mu   sync.Mutex
	last *Snapshot
}

// Option customizes a Client.
type Option func(*Client)

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.rc.SetTimeout(d) }
}

// New creates a client for the given base URL and long-lived access
// token.
func New(baseURL, token string, opts ...Option) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetAuthToken(token).
		SetHeader("Accept", "application/json").
		SetTimeout(10 * time.Second)

	c := &Client{rc: rc}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Close releases the underlying transport.
func (c *Client) Close() error { return c.rc.Close() }

// Snapshot fetches all entity states. When the fetch fails and a previous
// snapshot exists, that snapshot is returned marked stale alongside the
// error so the caller can keep rendering.
func (c *Client) Snapshot(ctx context.Context) (*Snapshot, error) {
	var states []Entity
	res, err := c.rc.R().
		SetContext(ctx).
		SetResult(&states).
		Get("/api/states")
	if err != nil {
		return c.staleFallback(fmt.Errorf("hass: fetch states: %w", err))
	}
	if res.IsError() {
		return c.staleFallback(&APIError{
			StatusCode: res.StatusCode(),
			Body:       res.String(),
		})
	}

	snap := &Snapshot{
		Taken:    time.Now(),
		entities: make(map[string]Entity, len(states)),
	}
	for _, e := range states {
		snap.entities[e.EntityID] = e
	}

	c.mu.Lock()
	c.last = snap
	c.mu.Unlock()
	return snap, nil
}

func (c *Client) staleFallback(err error) (*Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.last == nil {
		return nil, err
	}
	stale := &Snapshot{
		Taken:    c.last.Taken,
		Stale:    true,
		entities: c.last.entities,
	}
	return stale, err
}

// NewSnapshot builds a snapshot directly from entities. Tests and the
// template package use it.
func NewSnapshot(taken time.Time, entities ...Entity) *Snapshot {
	snap := &Snapshot{
		Taken:    taken,
		entities: make(map[string]Entity, len(entities)),
	}
	for _, e := range entities {
		snap.entities[e.EntityID] = e
	}
	return snap
}
