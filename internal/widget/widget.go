// Package widget implements the dashboard widgets. A widget is a pure
// function from frame context and options to a component tree; all pixel
// work happens in the render packages.
package widget

import (
	"fmt"
	"sort"
	"time"

	"github.com/zclconf/go-cty/cty"

	"github.com/DennisDane/geekmagic-go/internal/hass"
	"github.com/DennisDane/geekmagic-go/internal/render"
	"github.com/DennisDane/geekmagic-go/internal/render/component"
	"github.com/DennisDane/geekmagic-go/internal/template"
	"github.com/DennisDane/geekmagic-go/internal/theme"
)

// Info carries the per-frame context a widget builds against.
type Info struct {
	Snapshot *hass.Snapshot
	Now      time.Time
	Cat      render.SizeCategory
	Theme    theme.Theme
	// History returns recent numeric samples for an entity, oldest first.
	History func(entityID string) []float64
}

// Widget builds a component tree for one slot.
type Widget interface {
	// Build assembles the widget's content. It must tolerate missing
	// entities and unresolved options by showing placeholders.
	Build(info Info, opts Options) component.Component
}

// HistoryTracker is implemented by widgets that want numeric samples
// recorded for the entities they name.
type HistoryTracker interface {
	TrackedEntities(opts Options) []string
}

// Factory creates one widget instance.
type Factory func() Widget

var factories = map[string]Factory{
	"clock":          func() Widget { return clockWidget{} },
	"text":           func() Widget { return textWidget{} },
	"entity":         func() Widget { return entityWidget{} },
	"gauge":          func() Widget { return gaugeWidget{} },
	"progress":       func() Widget { return progressWidget{} },
	"multi_progress": func() Widget { return multiProgressWidget{} },
	"status":         func() Widget { return statusWidget{} },
	"status_list":    func() Widget { return statusListWidget{} },
	"weather":        func() Widget { return weatherWidget{} },
	"media":          func() Widget { return mediaWidget{} },
	"chart":          func() Widget { return chartWidget{} },
}

// Register adds a widget type. Registering a duplicate name is a
// programmer error and panics.
func Register(name string, f Factory) {
	if _, dup := factories[name]; dup {
		panic(fmt.Sprintf("widget: duplicate registration for type %q", name))
	}
	factories[name] = f
}

// New creates a widget by type name.
func New(name string) (Widget, bool) {
	f, ok := factories[name]
	if !ok {
		return nil, false
	}
	return f(), true
}

// Known reports whether a widget type exists. Config validation uses it.
func Known(name string) bool {
	_, ok := factories[name]
	return ok
}

// Names lists the registered widget types, sorted.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Options gives typed access to a widget's merged options. Per-frame
// resolved values shadow the constants from the config file.
type Options struct {
	static   map[string]cty.Value
	resolved map[string]cty.Value
}

// NewOptions combines load-time constants with this frame's resolved
// expression values.
func NewOptions(static, resolved map[string]cty.Value) Options {
	return Options{static: static, resolved: resolved}
}

func (o Options) lookup(name string) (cty.Value, bool) {
	if v, ok := o.resolved[name]; ok {
		return v, true
	}
	v, ok := o.static[name]
	return v, ok
}

// String returns a string option.
func (o Options) String(name string) (string, bool) {
	v, ok := o.lookup(name)
	if !ok {
		return "", false
	}
	return template.AsString(v)
}

// StringOr returns a string option or a default.
func (o Options) StringOr(name, def string) string {
	if s, ok := o.String(name); ok {
		return s
	}
	return def
}

// Number returns a numeric option.
func (o Options) Number(name string) (float64, bool) {
	v, ok := o.lookup(name)
	if !ok {
		return 0, false
	}
	return template.AsNumber(v)
}

// NumberOr returns a numeric option or a default.
func (o Options) NumberOr(name string, def float64) float64 {
	if n, ok := o.Number(name); ok {
		return n
	}
	return def
}

// BoolOr returns a boolean option or a default.
func (o Options) BoolOr(name string, def bool) bool {
	v, ok := o.lookup(name)
	if !ok {
		return def
	}
	b, ok := template.AsBool(v)
	if !ok {
		return def
	}
	return b
}

// Strings returns a list-of-strings option.
func (o Options) Strings(name string) []string {
	v, ok := o.lookup(name)
	if !ok || v.IsNull() || !v.CanIterateElements() {
		return nil
	}
	var out []string
	for it := v.ElementIterator(); it.Next(); {
		_, ev := it.Element()
		if s, ok := template.AsString(ev); ok {
			out = append(out, s)
		}
	}
	return out
}
