package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/kas-gui/kas-go/pkg/geom"
	"github.com/kas-gui/kas-go/pkg/layout"
	"github.com/kas-gui/kas-go/pkg/theme"
)

// File names searched in a project root, in order.
const (
	YAMLFile = "kas.yaml"
	TOMLFile = "kas.toml"
)

// Config represents the optional kas.yaml or kas.toml configuration.
type Config struct {
	Window WindowConfig `yaml:"window" toml:"window"`
	Theme  ThemeConfig  `yaml:"theme" toml:"theme"`
	Log    LogConfig    `yaml:"log" toml:"log"`
}

// WindowConfig contains the default window settings.
type WindowConfig struct {
	Title      string `yaml:"title,omitempty" toml:"title,omitempty"`
	Width      uint32 `yaml:"width,omitempty" toml:"width,omitempty"`
	Height     uint32 `yaml:"height,omitempty" toml:"height,omitempty"`
	EnforceMin *bool  `yaml:"enforce_min,omitempty" toml:"enforce_min,omitempty"`
	EnforceMax *bool  `yaml:"enforce_max,omitempty" toml:"enforce_max,omitempty"`
}

// ThemeConfig selects metrics and overrides their dimensions.
type ThemeConfig struct {
	Metrics     string   `yaml:"metrics,omitempty" toml:"metrics,omitempty"`
	Margin      *uint32  `yaml:"margin,omitempty" toml:"margin,omitempty"`
	InnerMargin *uint32  `yaml:"inner_margin,omitempty" toml:"inner_margin,omitempty"`
	Frame       *uint32  `yaml:"frame,omitempty" toml:"frame,omitempty"`
	FontScale   *float64 `yaml:"font_scale,omitempty" toml:"font_scale,omitempty"`
}

// LogConfig contains error reporting settings.
type LogConfig struct {
	Verbose bool `yaml:"verbose,omitempty" toml:"verbose,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	Source     string
	ModulePath string
	Title      string
	Size       geom.Size
	EnforceMin bool
	EnforceMax bool
	Metrics    theme.Metrics
	Dimensions theme.Dimensions
	Verbose    bool
}

// Default window size, in the units of the resolved metrics.
var (
	DefaultPixelSize = geom.Size{W: 800, H: 600}
	DefaultCellSize  = geom.Size{W: 80, H: 24}
)

// LoadOptional reads kas.yaml, or failing that kas.toml, if present. It
// returns the name of the file read, or "" when neither exists.
func LoadOptional(dir string) (*Config, string, error) {
	for _, name := range []string{YAMLFile, TOMLFile} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, "", fmt.Errorf("failed to read %s: %w", name, err)
		}

		var cfg Config
		if name == TOMLFile {
			err = toml.Unmarshal(data, &cfg)
		} else {
			err = yaml.Unmarshal(data, &cfg)
		}
		if err != nil {
			return nil, "", fmt.Errorf("failed to parse %s: %w", name, err)
		}
		return &cfg, name, nil
	}
	return &Config{}, "", nil
}

// Resolve loads the configuration in dir (if present) and resolves defaults.
// The default title is the last element of the module path in dir's go.mod,
// or the directory name outside a module.
func Resolve(dir string) (*Resolved, error) {
	cfg, source, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	modulePath, err := modulePath(dir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	metrics, err := theme.ParseMetrics(cfg.Theme.Metrics)
	if err != nil {
		return nil, fmt.Errorf("theme.metrics: %w", err)
	}

	dims := theme.DefaultDimensions(metrics)
	if m := cfg.Theme.Margin; m != nil {
		dims.Margin = *m
	}
	if m := cfg.Theme.InnerMargin; m != nil {
		dims.InnerMargin = *m
	}
	if f := cfg.Theme.Frame; f != nil {
		dims.Frame = *f
	}
	if s := cfg.Theme.FontScale; s != nil {
		if *s <= 0 {
			return nil, fmt.Errorf("theme.font_scale must be positive (got %v)", *s)
		}
		dims.FontScale = *s
	}

	size := DefaultPixelSize
	if metrics == theme.MetricsCell {
		size = DefaultCellSize
	}
	if cfg.Window.Width > 0 {
		size.W = cfg.Window.Width
	}
	if cfg.Window.Height > 0 {
		size.H = cfg.Window.Height
	}

	title := strings.TrimSpace(cfg.Window.Title)
	if title == "" {
		title = defaultTitle(modulePath, dir)
	}

	return &Resolved{
		Root:       dir,
		Source:     source,
		ModulePath: modulePath,
		Title:      title,
		Size:       size,
		EnforceMin: boolOr(cfg.Window.EnforceMin, true),
		EnforceMax: boolOr(cfg.Window.EnforceMax, false),
		Metrics:    metrics,
		Dimensions: dims,
		Verbose:    cfg.Log.Verbose,
	}, nil
}

// FindProjectRoot walks up from the current directory to find a kas config
// file or go.mod. Outside any project it returns the current directory.
func FindProjectRoot() (string, error) {
	start, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := start
	for {
		for _, name := range []string{YAMLFile, TOMLFile, "go.mod"} {
			if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return start, nil
		}
		dir = parent
	}
}

// ParseSize parses a "WxH" size.
func ParseSize(s string) (geom.Size, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return geom.Size{}, fmt.Errorf("invalid size %q (want WxH)", s)
	}
	w, errW := strconv.ParseUint(ws, 10, 32)
	h, errH := strconv.ParseUint(hs, 10, 32)
	if errW != nil || errH != nil {
		return geom.Size{}, fmt.Errorf("invalid size %q (want WxH)", s)
	}
	if w == 0 || h == 0 {
		return geom.Size{}, fmt.Errorf("invalid size %q: dimensions must be positive", s)
	}
	return geom.Size{W: uint32(w), H: uint32(h)}, nil
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultTitle(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modulePath != "" {
		if modName, _, ok := module.SplitPathVersion(modulePath); ok {
			parts := strings.Split(modName, "/")
			base = parts[len(parts)-1]
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "kas"
	}
	return base
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

// SizeHandle returns the metrics selected by the configuration.
func (r *Resolved) SizeHandle() (layout.SizeHandle, error) {
	return theme.New(r.Metrics, r.Dimensions)
}
