package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kas-gui/kas-go/cmd/kas/internal/config"
	"github.com/kas-gui/kas-go/pkg/core"
	"github.com/kas-gui/kas-go/pkg/describe"
	"github.com/kas-gui/kas-go/pkg/engine"
	"github.com/kas-gui/kas-go/pkg/errors"
	"github.com/kas-gui/kas-go/pkg/geom"
	"github.com/kas-gui/kas-go/pkg/layout"
	"github.com/kas-gui/kas-go/pkg/theme"
	"github.com/kas-gui/kas-go/pkg/widgets"
)

func init() {
	RegisterCommand(&Command{
		Name:  "layout",
		Short: "Solve a layout and print widget rectangles",
		Long: `Build the widget tree described by a YAML file, lay it out for a surface
and print every widget's id and rectangle in tree order.

The surface size defaults to window.width and window.height from the
project configuration. Use "--size ideal" to lay out at the tree's ideal
size instead.

Flags:
  --size WxH         Surface size, or "ideal"
  --metrics NAME     Override theme.metrics (pixel or cell)
  --format FORMAT    Output format: text (default), yaml or json`,
		Usage: "kas layout <tree.yaml> [--size WxH] [--metrics NAME] [--format FORMAT]",
		Run:   runLayout,
	})
}

type viewOptions struct {
	size    geom.Size
	ideal   bool
	metrics string
	format  string
}

// parseViewArgs extracts the flags shared by layout and replay.
func parseViewArgs(args []string) ([]string, viewOptions, error) {
	opts := viewOptions{format: "text"}
	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, value, hasValue := strings.Cut(arg, "=")
		switch name {
		case "--size", "--metrics", "--format":
		default:
			filtered = append(filtered, arg)
			continue
		}
		if !hasValue {
			if i+1 >= len(args) {
				return nil, opts, fmt.Errorf("%s requires a value", name)
			}
			value = args[i+1]
			i++
		}
		switch name {
		case "--size":
			if value == "ideal" {
				opts.ideal = true
				break
			}
			size, err := config.ParseSize(value)
			if err != nil {
				return nil, opts, err
			}
			opts.size = size
		case "--metrics":
			opts.metrics = value
		case "--format":
			switch value {
			case "text", "yaml", "json":
				opts.format = value
			default:
				return nil, opts, fmt.Errorf("unknown format %q (want text, yaml or json)", value)
			}
		}
	}
	return filtered, opts, nil
}

// session is a described tree with the configuration it runs under.
type session struct {
	cfg  *config.Resolved
	tree *describe.Tree
	sh   layout.SizeHandle
	size geom.Size
}

func newSession(path string, opts viewOptions) (*session, error) {
	cfg, err := resolveConfig()
	if err != nil {
		return nil, err
	}
	errors.SetHandler(&errors.LogHandler{Verbose: cfg.Verbose})

	if opts.metrics != "" {
		m, err := theme.ParseMetrics(opts.metrics)
		if err != nil {
			return nil, err
		}
		if m != cfg.Metrics {
			cfg.Metrics = m
			cfg.Dimensions = theme.DefaultDimensions(m)
			if opts.size == (geom.Size{}) {
				cfg.Size = config.DefaultPixelSize
				if m == theme.MetricsCell {
					cfg.Size = config.DefaultCellSize
				}
			}
		}
	}
	sh, err := cfg.SizeHandle()
	if err != nil {
		return nil, err
	}

	d, err := describe.Load(path)
	if err != nil {
		return nil, err
	}
	if d.Title == "" {
		d.Title = cfg.Title
	}
	tree := d.Build()
	tree.Window.SetEnforceSize(cfg.EnforceMin, cfg.EnforceMax)

	s := &session{cfg: cfg, tree: tree, sh: sh, size: cfg.Size}
	switch {
	case opts.ideal:
		s.size = geom.Size{}
	case opts.size != (geom.Size{}):
		s.size = opts.size
	}
	return s, nil
}

func runLayout(args []string) error {
	args, opts, err := parseViewArgs(args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("expected one description file\n\nUsage: kas layout <tree.yaml> [--size WxH]")
	}

	s, err := newSession(args[0], opts)
	if err != nil {
		return err
	}

	eng := engine.New(s.tree.Window, s.sh)
	eng.Start(s.size)
	defer eng.Close()

	return printSnapshot(stdout, eng, opts.format)
}

// printSnapshot writes the engine's current geometry in format.
func printSnapshot(w io.Writer, eng *engine.Engine, format string) error {
	snap := eng.Snapshot()
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return err
		}
		return enc.Close()
	}

	minSize, ideal := eng.FindSize()
	fmt.Fprintf(w, "%s %v (min %v, ideal %v)\n", snap.Title, geom.Size{W: snap.Width, H: snap.Height}, minSize, ideal)
	for _, ws := range snap.Widgets {
		name := strings.Repeat("  ", ws.Depth) + ws.Kind
		if text, ok := widgetText(eng.Window(), ws.ID); ok {
			name += " " + quoteTruncated(text, textColumn)
		}
		fmt.Fprintf(w, "#%-4d %-36s %-10v %v\n", ws.ID, name,
			geom.Coord{X: ws.X, Y: ws.Y}, geom.Size{W: ws.Width, H: ws.Height})
	}
	return nil
}

// textColumn is the widest widget text printed, in terminal cells.
const textColumn = 16

var cells = theme.NewCellSizer(theme.DefaultCellDimensions())

func quoteTruncated(text string, width uint32) string {
	text = strings.ReplaceAll(text, "\n", " ")
	return `"` + cells.Truncate(text, width, "...") + `"`
}

func widgetText(root widgets.Widget, id uint32) (string, bool) {
	w, ok := widgets.FindByID(root, core.WidgetID(id))
	if !ok {
		return "", false
	}
	switch w := w.(type) {
	case *widgets.TextButton:
		return w.Label(), true
	case interface{ Text() string }:
		return w.Text(), true
	}
	return "", false
}
