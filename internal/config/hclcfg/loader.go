// Package hclcfg loads the application configuration from HCL files and
// translates it into the format-agnostic config.Model.
package hclcfg

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/DennisDane/geekmagic-go/internal/config"
	"github.com/DennisDane/geekmagic-go/internal/ctxlog"
	"github.com/DennisDane/geekmagic-go/internal/template"
	"github.com/DennisDane/geekmagic-go/internal/theme"
)

// Loader is the HCL implementation of configuration loading.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot decodes all possible top-level blocks from any file.
type fileRoot struct {
	Device   *deviceBlock   `hcl:"device,block"`
	Source   *sourceBlock   `hcl:"home_assistant,block"`
	Settings *settingsBlock `hcl:"settings,block"`
	Themes   []*themeBlock  `hcl:"theme,block"`
	Screens  []*screenBlock `hcl:"screen,block"`
}

type deviceBlock struct {
	Host       string  `hcl:"host"`
	UploadPath *string `hcl:"upload_path,optional"`
	Filename   *string `hcl:"filename,optional"`
	Brightness *int    `hcl:"brightness,optional"`
	Timeout    *string `hcl:"timeout,optional"`
}

type sourceBlock struct {
	URL     string  `hcl:"url"`
	Token   string  `hcl:"token"`
	Timeout *string `hcl:"timeout,optional"`
}

type settingsBlock struct {
	Interval       *string `hcl:"interval,optional"`
	JPEGQuality    *int    `hcl:"jpeg_quality,optional"`
	MaxUploadBytes *int    `hcl:"max_upload_bytes,optional"`
	Theme          *string `hcl:"theme,optional"`
}

type screenBlock struct {
	Name     string         `hcl:"name,label"`
	Layout   string         `hcl:"layout"`
	Theme    *string        `hcl:"theme,optional"`
	Ratio    *float64       `hcl:"ratio,optional"`
	Duration *string        `hcl:"duration,optional"`
	Widgets  []*widgetBlock `hcl:"widget,block"`
}

type widgetBlock struct {
	Type    string        `hcl:"type,label"`
	Slot    *int          `hcl:"slot,optional"`
	Options *optionsBlock `hcl:"options,block"`
}

// optionsBlock keeps its attributes as raw expressions; which of them are
// constant is decided during translation.
type optionsBlock struct {
	Remain hcl.Body `hcl:",remain"`
}

// Load parses one file, or every .hcl file under a directory, and merges
// the blocks into a single model.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := findHCLFiles(path)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("hclcfg: no .hcl files found at %s", path)
	}
	logger.Debug("discovered config files", "count", len(files))

	model := &config.Model{
		Device: config.Device{
			UploadPath: config.DefaultUploadPath,
			Filename:   config.DefaultFilename,
			Timeout:    config.DefaultTimeout,
		},
		Source: config.Source{Timeout: config.DefaultTimeout},
		Settings: config.Settings{
			Interval:       config.DefaultInterval,
			JPEGQuality:    config.DefaultJPEGQuality,
			MaxUploadBytes: config.DefaultMaxUpload,
			Theme:          theme.Default.Name,
		},
		Themes: make(map[string]theme.Theme),
	}

	parser := hclparse.NewParser()
	var themeBlocks []*themeBlock

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("hclcfg: parse %s: %w", file, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("hclcfg: decode %s: %w", file, diags)
		}

		if root.Device != nil {
			if err := translateDevice(root.Device, &model.Device); err != nil {
				return nil, err
			}
		}
		if root.Source != nil {
			if err := translateSource(root.Source, &model.Source); err != nil {
				return nil, err
			}
		}
		if root.Settings != nil {
			if err := translateSettings(root.Settings, &model.Settings); err != nil {
				return nil, err
			}
		}
		themeBlocks = append(themeBlocks, root.Themes...)

		for _, sb := range root.Screens {
			screen, err := translateScreen(ctx, sb)
			if err != nil {
				return nil, err
			}
			model.Screens = append(model.Screens, screen)
		}
	}

	// Themes resolve after all files merged so a base can live anywhere.
	for _, tb := range themeBlocks {
		th, err := translateTheme(tb, model.Themes)
		if err != nil {
			return nil, err
		}
		model.Themes[th.Name] = th
	}

	logger.Debug("config loading complete",
		"screens", len(model.Screens), "themes", len(model.Themes))
	return model, nil
}

func findHCLFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("hclcfg: access %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && filepath.Ext(p) == ".hcl" {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func translateDevice(b *deviceBlock, out *config.Device) error {
	out.Host = b.Host
	if b.UploadPath != nil {
		out.UploadPath = *b.UploadPath
	}
	if b.Filename != nil {
		out.Filename = *b.Filename
	}
	out.Brightness = b.Brightness
	return setDuration(&out.Timeout, b.Timeout, "device timeout")
}

func translateSource(b *sourceBlock, out *config.Source) error {
	out.URL = b.URL
	out.Token = b.Token
	return setDuration(&out.Timeout, b.Timeout, "home_assistant timeout")
}

func translateSettings(b *settingsBlock, out *config.Settings) error {
	if b.JPEGQuality != nil {
		out.JPEGQuality = *b.JPEGQuality
	}
	if b.MaxUploadBytes != nil {
		out.MaxUploadBytes = *b.MaxUploadBytes
	}
	if b.Theme != nil {
		out.Theme = *b.Theme
	}
	return setDuration(&out.Interval, b.Interval, "settings interval")
}

func translateScreen(ctx context.Context, b *screenBlock) (*config.Screen, error) {
	logger := ctxlog.FromContext(ctx)

	screen := &config.Screen{
		Name:   b.Name,
		Layout: b.Layout,
	}
	if b.Theme != nil {
		screen.Theme = *b.Theme
	}
	if b.Ratio != nil {
		screen.Ratio = *b.Ratio
	}
	if err := setDuration(&screen.Duration, b.Duration, fmt.Sprintf("screen %q duration", b.Name)); err != nil {
		return nil, err
	}

	taken := make(map[int]struct{}, len(b.Widgets))
	for _, wb := range b.Widgets {
		if wb.Slot != nil {
			taken[*wb.Slot] = struct{}{}
		}
	}

	nextFree := 0
	for _, wb := range b.Widgets {
		w, err := translateWidget(wb)
		if err != nil {
			return nil, fmt.Errorf("hclcfg: screen %q: %w", b.Name, err)
		}
		if wb.Slot == nil {
			for {
				if _, used := taken[nextFree]; !used {
					break
				}
				nextFree++
			}
			w.Slot = nextFree
			taken[nextFree] = struct{}{}
		}
		screen.Widgets = append(screen.Widgets, w)
	}

	// A screen with no widgets still shows something useful.
	if len(screen.Widgets) == 0 {
		logger.Debug("screen has no widgets, adding default clock", "screen", b.Name)
		screen.Widgets = append(screen.Widgets, &config.Widget{Type: "clock"})
	}
	return screen, nil
}

// translateWidget splits the widget's options into constants and
// expressions that need entity state.
func translateWidget(b *widgetBlock) (*config.Widget, error) {
	w := &config.Widget{Type: b.Type}
	if b.Slot != nil {
		w.Slot = *b.Slot
	}
	if b.Options == nil {
		return w, nil
	}

	attrs, diags := b.Options.Remain.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("widget %q options: %w", b.Type, diags)
	}

	staticCtx := template.StaticContext()
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(staticCtx)
		if diags.HasErrors() {
			if w.Dynamic == nil {
				w.Dynamic = make(map[string]hcl.Expression)
			}
			w.Dynamic[name] = attr.Expr
			continue
		}
		if w.Static == nil {
			w.Static = make(map[string]cty.Value)
		}
		w.Static[name] = val
	}
	return w, nil
}

func setDuration(dst *time.Duration, src *string, what string) error {
	if src == nil {
		return nil
	}
	d, err := time.ParseDuration(*src)
	if err != nil {
		return fmt.Errorf("hclcfg: parse %s %q: %w", what, *src, err)
	}
	if d <= 0 {
		return fmt.Errorf("hclcfg: %s must be positive, got %q", what, *src)
	}
	*dst = d
	return nil
}
