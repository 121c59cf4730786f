package testing

import (
	"fmt"
	"reflect"

	"github.com/kas-gui/kas-go/pkg/core"
	"github.com/kas-gui/kas-go/pkg/engine"
	"github.com/kas-gui/kas-go/pkg/geom"
	"github.com/kas-gui/kas-go/pkg/widgets"
)

// Finder locates widgets in the tree.
type Finder interface {
	// Evaluate returns all matching widgets under root, in pre-order.
	Evaluate(root widgets.Widget) []widgets.Widget
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	widgets []widgets.Widget
	finder  Finder
}

func (r FinderResult) description() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() widgets.Widget {
	if len(r.widgets) == 0 {
		panic(fmt.Sprintf("FinderResult.First: no widgets found for %s", r.description()))
	}
	return r.widgets[0]
}

// FirstOrNil returns the first match, or nil.
func (r FinderResult) FirstOrNil() widgets.Widget {
	if len(r.widgets) == 0 {
		return nil
	}
	return r.widgets[0]
}

// At returns match i. Panics if out of range.
func (r FinderResult) At(i int) widgets.Widget {
	if i < 0 || i >= len(r.widgets) {
		panic(fmt.Sprintf("FinderResult.At(%d): %d matches for %s", i, len(r.widgets), r.description()))
	}
	return r.widgets[i]
}

// All returns every match.
func (r FinderResult) All() []widgets.Widget { return r.widgets }

// Count returns the number of matches.
func (r FinderResult) Count() int { return len(r.widgets) }

// Exists reports whether anything matched.
func (r FinderResult) Exists() bool { return len(r.widgets) > 0 }

// ID returns the id of the first match, or core.NoWidget.
func (r FinderResult) ID() core.WidgetID {
	if len(r.widgets) == 0 {
		return core.NoWidget
	}
	return r.widgets[0].Core().ID()
}

// Rect returns the rectangle of the first match.
func (r FinderResult) Rect() (geom.Rect, bool) {
	if len(r.widgets) == 0 {
		return geom.Rect{}, false
	}
	return r.widgets[0].Core().Rect(), true
}

// Find evaluates finder against the pumped tree.
func (t *WidgetTester) Find(finder Finder) FinderResult {
	if t.engine == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{widgets: finder.Evaluate(t.engine.Window()), finder: finder}
}

// ByType matches widgets whose concrete type is T.
func ByType[T widgets.Widget]() Finder {
	var zero T
	return typeFinder{t: reflect.TypeOf(zero), name: fmt.Sprintf("%T", zero)}
}

// ByKind matches widgets whose type name, as reported in frame snapshots,
// is kind.
func ByKind(kind string) Finder {
	return predicateFinder{
		match: func(w widgets.Widget) bool { return engine.KindOf(w) == kind },
		desc:  fmt.Sprintf("ByKind(%q)", kind),
	}
}

// ByID matches the widget owning id.
func ByID(id core.WidgetID) Finder {
	return predicateFinder{
		match: func(w widgets.Widget) bool { return w.Core().ID() == id },
		desc:  fmt.Sprintf("ByID(%v)", id),
	}
}

// ByText matches labels, buttons and edit boxes showing exactly text.
func ByText(text string) Finder {
	return predicateFinder{
		match: func(w widgets.Widget) bool {
			s, ok := textOf(w)
			return ok && s == text
		},
		desc: fmt.Sprintf("ByText(%q)", text),
	}
}

// ByPredicate matches widgets for which fn returns true.
func ByPredicate(desc string, fn func(widgets.Widget) bool) Finder {
	return predicateFinder{match: fn, desc: desc}
}

func textOf(w widgets.Widget) (string, bool) {
	switch v := w.(type) {
	case *widgets.Label:
		return v.Text(), true
	case *widgets.TextButton:
		return v.Label(), true
	case *widgets.EditBox:
		return v.Text(), true
	}
	return "", false
}

type typeFinder struct {
	t    reflect.Type
	name string
}

func (f typeFinder) Evaluate(root widgets.Widget) []widgets.Widget {
	var out []widgets.Widget
	widgets.Walk(root, func(w widgets.Widget) bool {
		if reflect.TypeOf(w) == f.t {
			out = append(out, w)
		}
		return true
	})
	return out
}

func (f typeFinder) Description() string { return "ByType(" + f.name + ")" }

type predicateFinder struct {
	match func(widgets.Widget) bool
	desc  string
}

func (f predicateFinder) Evaluate(root widgets.Widget) []widgets.Widget {
	var out []widgets.Widget
	widgets.Walk(root, func(w widgets.Widget) bool {
		if f.match(w) {
			out = append(out, w)
		}
		return true
	})
	return out
}

func (f predicateFinder) Description() string { return f.desc }
