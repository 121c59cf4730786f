// Package describe builds widget trees from declarative YAML descriptions.
//
// A description names a window title and a root node. Each node has a type
// and the fields that type understands:
//
//	title: Counter
//	root:
//	  type: column
//	  children:
//	    - type: label
//	      name: count
//	      text: "0"
//	    - type: button
//	      text: "+"
//	      msg: incr
//
// Unknown keys and malformed values are reported as *errors.ParseError with
// the path of the offending node, e.g. "root.children[1].text".
package describe

import (
	stderrors "errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kas-gui/kas-go/pkg/errors"
	"github.com/kas-gui/kas-go/pkg/layout"
	"github.com/kas-gui/kas-go/pkg/widgets"
)

// Description is the top level of a description file.
type Description struct {
	Title string `yaml:"title"`
	Root  *Node  `yaml:"root"`
}

// Node describes one widget.
type Node struct {
	Type string `yaml:"type"`
	// Name lets scripts address the widget. Names must be unique.
	Name string `yaml:"name,omitempty"`
	Text string `yaml:"text,omitempty"`
	// Msg is the message a button emits. Defaults to Text.
	Msg       string    `yaml:"msg,omitempty"`
	Direction string    `yaml:"direction,omitempty"`
	Min       float64   `yaml:"min,omitempty"`
	Max       float64   `yaml:"max,omitempty"`
	Step      float64   `yaml:"step,omitempty"`
	Value     float64   `yaml:"value,omitempty"`
	Cell      *CellSpec `yaml:"cell,omitempty"`
	Child     *Node     `yaml:"child,omitempty"`
	Children  []*Node   `yaml:"children,omitempty"`

	line int
}

// CellSpec places a grid child. Spans of zero mean one.
type CellSpec struct {
	Col     int `yaml:"col"`
	Row     int `yaml:"row"`
	ColSpan int `yaml:"colspan,omitempty"`
	RowSpan int `yaml:"rowspan,omitempty"`
}

// Line returns the source line of the node, or 0 when unknown.
func (n *Node) Line() int { return n.line }

var nodeKeys = []string{
	"type", "name", "text", "msg", "direction", "min", "max", "step", "value",
	"cell", "child", "children",
}

// UnmarshalYAML records the node's line and rejects unknown keys.
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: widget must be a mapping", value.Line)
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		key := value.Content[i].Value
		if !slices.Contains(nodeKeys, key) {
			return fmt.Errorf("line %d: unknown key %q", value.Content[i].Line, key)
		}
	}
	type plain Node
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*n = Node(p)
	n.line = value.Line
	return nil
}

// Parse decodes a description. source names the input in errors.
func Parse(source string, data []byte) (*Description, error) {
	var d Description
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, &errors.ParseError{Source: source, Err: err}
	}
	if d.Root == nil {
		return nil, &errors.ParseError{Source: source, Path: "root", Err: stderrors.New("missing root widget")}
	}
	names := make(map[string]string)
	if err := d.Root.validate(source, "root", names); err != nil {
		return nil, err
	}
	return &d, nil
}

// Load reads and parses a description file.
func Load(path string) (*Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read description: %w", err)
	}
	return Parse(path, data)
}

type kind struct {
	container bool
	single    bool
}

var kinds = map[string]kind{
	"label":  {},
	"button": {},
	"edit":   {},
	"slider": {},
	"clock":  {},
	"filler": {},
	"frame":  {single: true},
	"scroll": {single: true},
	"row":    {container: true},
	"column": {container: true},
	"grid":   {container: true},
}

func (n *Node) fail(source, path, format string, args ...any) error {
	err := fmt.Errorf(format, args...)
	if n.line > 0 {
		err = fmt.Errorf("line %d: %w", n.line, err)
	}
	return &errors.ParseError{Source: source, Path: path, Err: err}
}

func (n *Node) validate(source, path string, names map[string]string) error {
	n.Type = strings.ToLower(strings.TrimSpace(n.Type))
	k, ok := kinds[n.Type]
	if !ok {
		if n.Type == "" {
			return n.fail(source, path+".type", "missing widget type")
		}
		return n.fail(source, path+".type", "unknown widget type %q", n.Type)
	}
	if n.Name != "" {
		if prev, dup := names[n.Name]; dup {
			return n.fail(source, path+".name", "name %q already used at %s", n.Name, prev)
		}
		names[n.Name] = path
	}
	if !k.container && len(n.Children) > 0 {
		return n.fail(source, path+".children", "%s takes no children", n.Type)
	}
	if !k.single && n.Child != nil {
		return n.fail(source, path+".child", "%s takes no child", n.Type)
	}
	if k.single && n.Child == nil {
		return n.fail(source, path+".child", "%s needs a child", n.Type)
	}
	if _, err := parseDirection(n.Direction); err != nil {
		return n.fail(source, path+".direction", "%v", err)
	}

	switch n.Type {
	case "slider":
		if n.Max <= n.Min {
			return n.fail(source, path+".max", "max %v must exceed min %v", n.Max, n.Min)
		}
		if n.Step < 0 {
			return n.fail(source, path+".step", "step must not be negative")
		}
	case "grid":
		for i, c := range n.Children {
			p := fmt.Sprintf("%s.children[%d].cell", path, i)
			if c == nil {
				continue
			}
			if c.Cell == nil {
				return c.fail(source, p, "grid child needs a cell")
			}
			if c.Cell.Col < 0 || c.Cell.Row < 0 || c.Cell.ColSpan < 0 || c.Cell.RowSpan < 0 {
				return c.fail(source, p, "negative cell placement")
			}
		}
	}

	if n.Child != nil {
		if err := n.Child.validate(source, path+".child", names); err != nil {
			return err
		}
	}
	for i, c := range n.Children {
		if c == nil {
			return n.fail(source, fmt.Sprintf("%s.children[%d]", path, i), "empty widget")
		}
		if err := c.validate(source, fmt.Sprintf("%s.children[%d]", path, i), names); err != nil {
			return err
		}
	}
	return nil
}

func parseDirection(s string) (layout.Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "horizontal", "h":
		return layout.Horizontal, nil
	case "vertical", "v":
		return layout.Vertical, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}

// Tree is a built description: the window and its named widgets.
type Tree struct {
	Window *widgets.Window
	names  map[string]widgets.Widget
}

// Lookup returns the widget with the given name.
func (t *Tree) Lookup(name string) (widgets.Widget, bool) {
	w, ok := t.names[name]
	return w, ok
}

// Names returns the widget names in sorted order.
func (t *Tree) Names() []string {
	out := make([]string, 0, len(t.names))
	for name := range t.names {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// Build creates the widget tree of a parsed description. The window is not
// configured; ids are assigned when an engine starts it.
func (d *Description) Build() *Tree {
	t := &Tree{names: make(map[string]widgets.Widget)}
	t.Window = widgets.NewWindow(d.Title, t.build(d.Root))
	return t
}

func (t *Tree) build(n *Node) widgets.Widget {
	var w widgets.Widget
	switch n.Type {
	case "label":
		w = widgets.NewLabel(n.Text)
	case "button":
		msg := n.Msg
		if msg == "" {
			msg = n.Text
		}
		w = widgets.NewTextButton(n.Text, msg)
	case "edit":
		w = widgets.NewEditBox(n.Text)
	case "slider":
		dir, _ := parseDirection(n.Direction)
		s := widgets.NewSlider(dir, n.Min, n.Max, n.Step)
		s.SetValue(n.Value)
		w = s
	case "clock":
		w = widgets.NewClock()
	case "filler":
		w = widgets.NewFiller()
	case "frame":
		w = widgets.NewFrame(t.build(n.Child))
	case "scroll":
		w = widgets.NewScrollRegion(t.build(n.Child))
	case "row", "column":
		dir := layout.Horizontal
		if n.Type == "column" {
			dir = layout.Vertical
		}
		l := widgets.NewList(dir)
		for _, c := range n.Children {
			l.Push(t.build(c))
		}
		w = l
	case "grid":
		g := widgets.NewGrid()
		for _, c := range n.Children {
			g.AddSpan(c.Cell.info(), t.build(c))
		}
		w = g
	default:
		panic(fmt.Sprintf("describe: unvalidated widget type %q", n.Type))
	}
	if n.Name != "" {
		t.names[n.Name] = w
	}
	return w
}

func (c *CellSpec) info() layout.GridChildInfo {
	colSpan, rowSpan := max(c.ColSpan, 1), max(c.RowSpan, 1)
	return layout.GridChildInfo{
		Col: c.Col, ColEnd: c.Col + colSpan,
		Row: c.Row, RowEnd: c.Row + rowSpan,
	}
}
