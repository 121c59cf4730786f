package describe_test

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kas-gui/kas-go/pkg/describe"
	"github.com/kas-gui/kas-go/pkg/errors"
	"github.com/kas-gui/kas-go/pkg/layout"
	kastest "github.com/kas-gui/kas-go/pkg/testing"
	"github.com/kas-gui/kas-go/pkg/widgets"
)

const counter = `
title: Counter
root:
  type: column
  children:
    - type: label
      name: count
      text: "0"
    - type: row
      children:
        - type: button
          name: inc
          text: "+"
          msg: incr
        - type: button
          text: "-"
`

func TestParse_BuildsTree(t *testing.T) {
	d, err := describe.Parse("counter.yaml", []byte(counter))
	if err != nil {
		t.Fatal(err)
	}
	if d.Title != "Counter" || d.Root.Type != "column" || len(d.Root.Children) != 2 {
		t.Fatalf("description = %+v", d)
	}
	if d.Root.Line() != 4 {
		t.Errorf("root line = %d, want 4", d.Root.Line())
	}

	tree := d.Build()
	if tree.Window.Title() != "Counter" {
		t.Errorf("title = %q", tree.Window.Title())
	}
	if got := tree.Names(); len(got) != 2 || got[0] != "count" || got[1] != "inc" {
		t.Errorf("names = %v", got)
	}
	w, ok := tree.Lookup("count")
	if label, isLabel := w.(*widgets.Label); !ok || !isLabel || label.Text() != "0" {
		t.Errorf("count = %v", w)
	}
	col, ok := tree.Window.Child().(*widgets.List)
	if !ok || col.Direction() != layout.Vertical || col.Len() != 2 {
		t.Fatalf("root widget = %#v", tree.Window.Child())
	}
}

func TestBuild_ButtonMessages(t *testing.T) {
	d, err := describe.Parse("counter.yaml", []byte(counter))
	if err != nil {
		t.Fatal(err)
	}
	tree := d.Build()
	tester := kastest.NewWidgetTesterWithT(t)
	if err := tester.PumpWidget(tree.Window); err != nil {
		t.Fatal(err)
	}
	if tester.Window() != tree.Window {
		t.Fatal("a described window should be pumped as is")
	}

	inc, _ := tree.Lookup("inc")
	tester.Tap(kastest.ByID(inc.Core().ID()))
	tester.Tap(kastest.ByText("-"))
	got := tester.Messages()
	if len(got) != 2 || got[0] != "incr" || got[1] != "-" {
		t.Errorf("messages = %v, want [incr -]", got)
	}
}

func TestBuild_Widgets(t *testing.T) {
	src := `
root:
  type: grid
  children:
    - type: slider
      name: volume
      direction: vertical
      min: 0
      max: 10
      step: 2
      value: 4
      cell: {col: 0, row: 0, rowspan: 2}
    - type: frame
      cell: {col: 1, row: 0}
      child: {type: edit, name: field, text: hello}
    - type: scroll
      cell: {col: 1, row: 1}
      child: {type: clock}
    - type: filler
      cell: {col: 0, row: 2, colspan: 2}
`
	d, err := describe.Parse("widgets.yaml", []byte(src))
	if err != nil {
		t.Fatal(err)
	}
	tree := d.Build()
	grid, ok := tree.Window.Child().(*widgets.Grid)
	if !ok {
		t.Fatalf("root widget = %T", tree.Window.Child())
	}
	if cols, rows := grid.Dimensions(); cols != 2 || rows != 3 {
		t.Errorf("grid dimensions = %dx%d, want 2x3", cols, rows)
	}
	if c := grid.CellOf(0); c != (layout.GridChildInfo{Col: 0, ColEnd: 1, Row: 0, RowEnd: 2}) {
		t.Errorf("slider cell = %+v", c)
	}
	if c := grid.CellOf(3); c.ColEnd != 2 {
		t.Errorf("filler cell = %+v", c)
	}

	w, _ := tree.Lookup("volume")
	if s := w.(*widgets.Slider); s.Value() != 4 {
		t.Errorf("slider value = %v, want 4", s.Value())
	}
	w, _ = tree.Lookup("field")
	if e := w.(*widgets.EditBox); e.Text() != "hello" {
		t.Errorf("edit text = %q", e.Text())
	}
	if _, ok := grid.Get(2).(*widgets.ScrollRegion); !ok {
		t.Errorf("cell 2 = %T, want scroll region", grid.Get(2))
	}
	if _, ok := grid.Get(2).Get(0).(*widgets.Clock); !ok {
		t.Errorf("scroll child = %T, want clock", grid.Get(2).Get(0))
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		path string
		msg  string
	}{
		{"syntax", "root: [", "", "yaml"},
		{"missing root", "title: x", "root", "missing root"},
		{"unknown key", "root: {type: label, colour: red}", "", `unknown key "colour"`},
		{"not a mapping", "root: label", "", "must be a mapping"},
		{"bad value", "root: {type: slider, min: abc}", "", "cannot unmarshal"},
		{"unknown type", "root: {type: knob}", "root.type", `unknown widget type "knob"`},
		{"missing type", "root: {text: hi}", "root.type", "missing widget type"},
		{"children on leaf", "root: {type: label, children: [{type: label}]}", "root.children", "takes no children"},
		{"frame without child", "root: {type: frame}", "root.child", "needs a child"},
		{"child on list", "root: {type: row, child: {type: label}}", "root.child", "takes no child"},
		{"bad direction", "root: {type: slider, max: 1, direction: diagonal}", "root.direction", "unknown direction"},
		{"empty slider", "root: {type: slider, min: 5, max: 5}", "root.max", "must exceed"},
		{"negative step", "root: {type: slider, max: 5, step: -1}", "root.step", "negative"},
		{"grid without cell", "root: {type: grid, children: [{type: label}]}", "root.children[0].cell", "needs a cell"},
		{"negative cell", "root: {type: grid, children: [{type: label, cell: {col: -1, row: 0}}]}", "root.children[0].cell", "negative"},
		{"null child", "root: {type: column, children: [null]}", "root.children[0]", "empty widget"},
		{
			"duplicate name",
			"root: {type: row, children: [{type: label, name: a}, {type: column, children: [{type: label, name: a}]}]}",
			"root.children[1].children[0].name",
			"already used at root.children[0]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := describe.Parse("test.yaml", []byte(tt.src))
			var pe *errors.ParseError
			if !stderrors.As(err, &pe) {
				t.Fatalf("err = %v, want *errors.ParseError", err)
			}
			if pe.Source != "test.yaml" || pe.Path != tt.path {
				t.Errorf("source, path = %q, %q; want test.yaml, %q", pe.Source, pe.Path, tt.path)
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("err = %v, want it to mention %q", err, tt.msg)
			}
		})
	}
}

func TestParse_ErrorLine(t *testing.T) {
	src := "root:\n  type: column\n  children:\n    - type: label\n    - type: knob\n"
	_, err := describe.Parse("test.yaml", []byte(src))
	if err == nil || !strings.Contains(err.Error(), "line 5") {
		t.Errorf("err = %v, want line 5", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counter.yaml")
	if err := os.WriteFile(path, []byte(counter), 0o644); err != nil {
		t.Fatal(err)
	}
	d, err := describe.Load(path)
	if err != nil || d.Title != "Counter" {
		t.Fatalf("Load = %v, %v", d, err)
	}

	if _, err := describe.Load(filepath.Join(t.TempDir(), "missing.yaml")); !stderrors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v", err)
	}
}
