package config

import (
	"fmt"

	"github.com/DennisDane/geekmagic-go/internal/layout"
	"github.com/DennisDane/geekmagic-go/internal/theme"
)

// Validate checks the model for mistakes a loader cannot catch from
// syntax alone. knownWidget reports whether a widget type is registered;
// it is passed in so this package stays independent of the widget
// implementations.
func (m *Model) Validate(knownWidget func(string) bool) error {
	if m.Device.Host == "" {
		return fmt.Errorf("config: device host is required")
	}
	if m.Source.URL == "" {
		return fmt.Errorf("config: home_assistant url is required")
	}
	if m.Source.Token == "" {
		return fmt.Errorf("config: home_assistant token is required")
	}
	if len(m.Screens) == 0 {
		return fmt.Errorf("config: at least one screen is required")
	}
	if b := m.Device.Brightness; b != nil && (*b < 0 || *b > 100) {
		return fmt.Errorf("config: device brightness %d out of range 0-100", *b)
	}
	if q := m.Settings.JPEGQuality; q < 1 || q > 100 {
		return fmt.Errorf("config: jpeg quality %d out of range 1-100", q)
	}
	if t := m.Settings.Theme; t != "" && !m.themeKnown(t) {
		return fmt.Errorf("config: unknown theme %q", t)
	}

	seenNames := make(map[string]struct{}, len(m.Screens))
	for _, s := range m.Screens {
		if _, dup := seenNames[s.Name]; dup {
			return fmt.Errorf("config: duplicate screen %q", s.Name)
		}
		seenNames[s.Name] = struct{}{}

		if err := m.validateScreen(s, knownWidget); err != nil {
			return err
		}
	}
	return nil
}

func (m *Model) validateScreen(s *Screen, knownWidget func(string) bool) error {
	slotCount := layout.SlotCount(s.Layout)
	if slotCount == 0 {
		return fmt.Errorf("config: screen %q: unknown layout %q (known: %v)",
			s.Name, s.Layout, layout.Names())
	}
	if s.Ratio != 0 && (s.Ratio < 0.2 || s.Ratio > 0.8) {
		return fmt.Errorf("config: screen %q: ratio %.2f out of range 0.2-0.8", s.Name, s.Ratio)
	}
	if s.Theme != "" && !m.themeKnown(s.Theme) {
		return fmt.Errorf("config: screen %q: unknown theme %q", s.Name, s.Theme)
	}

	seenSlots := make(map[int]string, len(s.Widgets))
	for _, w := range s.Widgets {
		if !knownWidget(w.Type) {
			return fmt.Errorf("config: screen %q: unknown widget type %q", s.Name, w.Type)
		}
		if w.Slot < 0 || w.Slot >= slotCount {
			return fmt.Errorf("config: screen %q: widget %q slot %d out of range for layout %q (0-%d)",
				s.Name, w.Type, w.Slot, s.Layout, slotCount-1)
		}
		if other, dup := seenSlots[w.Slot]; dup {
			return fmt.Errorf("config: screen %q: widgets %q and %q both claim slot %d",
				s.Name, other, w.Type, w.Slot)
		}
		seenSlots[w.Slot] = w.Type
	}
	return nil
}

func (m *Model) themeKnown(name string) bool {
	if _, ok := m.Themes[name]; ok {
		return true
	}
	_, ok := theme.Lookup(name)
	return ok
}
