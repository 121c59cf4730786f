package testing

import (
	stderrors "errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/kas-gui/kas-go/pkg/core"
	"github.com/kas-gui/kas-go/pkg/engine"
	"github.com/kas-gui/kas-go/pkg/errors"
	"github.com/kas-gui/kas-go/pkg/event"
	"github.com/kas-gui/kas-go/pkg/geom"
	"github.com/kas-gui/kas-go/pkg/layout"
	"github.com/kas-gui/kas-go/pkg/theme"
	"github.com/kas-gui/kas-go/pkg/widgets"
)

const (
	// DefaultTestWidth is the default surface width, in cells.
	DefaultTestWidth = 80
	// DefaultTestHeight is the default surface height, in cells.
	DefaultTestHeight = 24
)

// ErrNotPumped is returned by operations that need a tree before
// PumpWidget has been called.
var ErrNotPumped = stderrors.New("no widget pumped")

// WidgetTester drives a widget tree through an engine without a platform.
// Time comes from a FakeClock, metrics from a terminal-cell sizer (unless
// replaced), and reported errors are captured instead of logged.
type WidgetTester struct {
	engine      *engine.Engine
	clock       *FakeClock
	size        geom.Size
	sh          layout.SizeHandle
	errs        *ErrorRecorder
	prevHandler errors.ErrorHandler
	messages    []any
	nextTouch   uint64
}

// NewWidgetTester creates a tester with the default test environment. Call
// Cleanup when done, or use NewWidgetTesterWithT instead.
func NewWidgetTester() *WidgetTester {
	rec := &ErrorRecorder{}
	return &WidgetTester{
		clock:       NewFakeClock(),
		size:        geom.Size{W: DefaultTestWidth, H: DefaultTestHeight},
		sh:          theme.NewCellSizer(theme.DefaultCellDimensions()),
		errs:        rec,
		prevHandler: errors.SetHandler(rec),
	}
}

// NewWidgetTesterWithT creates a tester that cleans up via t.Cleanup.
func NewWidgetTesterWithT(t testing.TB) *WidgetTester {
	tester := NewWidgetTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup closes the window and restores the global error handler.
func (t *WidgetTester) Cleanup() {
	if t.engine != nil {
		t.engine.Close()
		t.engine = nil
	}
	errors.SetHandler(t.prevHandler)
}

// SetSize sets the surface size used by the next PumpWidget. If a tree is
// already pumped it is resized immediately.
func (t *WidgetTester) SetSize(size geom.Size) {
	t.size = size
	if t.engine != nil {
		t.engine.Resize(size)
	}
}

// SetSizeHandle replaces the theme metrics used by the next PumpWidget.
func (t *WidgetTester) SetSizeHandle(sh layout.SizeHandle) {
	t.sh = sh
}

// Clock returns the tester's fake clock.
func (t *WidgetTester) Clock() *FakeClock { return t.clock }

// Engine returns the engine of the pumped tree, or nil.
func (t *WidgetTester) Engine() *engine.Engine { return t.engine }

// Manager returns the event manager of the pumped tree, or nil.
func (t *WidgetTester) Manager() *event.Manager {
	if t.engine == nil {
		return nil
	}
	return t.engine.Manager()
}

// Window returns the root of the pumped tree, or nil.
func (t *WidgetTester) Window() *widgets.Window {
	if t.engine == nil {
		return nil
	}
	return t.engine.Window()
}

// Errors returns the recorder capturing reported errors and panics.
func (t *WidgetTester) Errors() *ErrorRecorder { return t.errs }

// PumpWidget mounts w, wrapping it in a window unless it already is one,
// then configures and sizes the tree and fires any timers armed during
// configuration.
func (t *WidgetTester) PumpWidget(w widgets.Widget) error {
	if w == nil {
		return fmt.Errorf("PumpWidget: nil widget")
	}
	if t.engine != nil {
		t.engine.Close()
	}
	win, ok := w.(*widgets.Window)
	if !ok {
		win = widgets.NewWindow("test", w)
	}
	t.engine = engine.New(win, t.sh)
	t.engine.SetClock(t.clock)
	t.messages = nil
	t.engine.Start(t.size)
	return t.Pump()
}

// Pump processes queued input and fires expired timers. Messages reaching
// the window are appended to Messages.
func (t *WidgetTester) Pump() error {
	if t.engine == nil {
		return ErrNotPumped
	}
	t.messages = append(t.messages, t.engine.ProcessBatch()...)
	return nil
}

// PumpFor advances the clock by d and pumps.
func (t *WidgetTester) PumpFor(d time.Duration) error {
	t.clock.Advance(d)
	return t.Pump()
}

// PumpUntilIdle repeatedly advances the clock to the next timer deadline and
// pumps, until no timer is pending or maxSteps batches have run. It returns
// the number of batches run.
func (t *WidgetTester) PumpUntilIdle(maxSteps int) (int, error) {
	if t.engine == nil {
		return 0, ErrNotPumped
	}
	steps := 0
	for ; steps < maxSteps; steps++ {
		next, ok := t.engine.NextTimer()
		if !ok {
			break
		}
		t.clock.AdvanceTo(next)
		if err := t.Pump(); err != nil {
			return steps, err
		}
	}
	return steps, nil
}

// Messages returns every message that reached the window since the tree was
// pumped.
func (t *WidgetTester) Messages() []any {
	return t.messages
}

// TakeMessages returns and clears the recorded messages.
func (t *WidgetTester) TakeMessages() []any {
	msgs := t.messages
	t.messages = nil
	return msgs
}

// Frame consumes the redraw flag, as a platform repaint would.
func (t *WidgetTester) Frame() (engine.FrameSnapshot, bool) {
	if t.engine == nil {
		return engine.FrameSnapshot{}, false
	}
	return t.engine.Frame()
}

// RectOf returns the rectangle of the widget owning id.
func (t *WidgetTester) RectOf(id core.WidgetID) (geom.Rect, bool) {
	if t.engine == nil {
		return geom.Rect{}, false
	}
	w, ok := widgets.FindByID(t.engine.Window(), id)
	if !ok {
		return geom.Rect{}, false
	}
	return w.Core().Rect(), true
}

// ErrorRecorder is an errors.ErrorHandler that keeps everything reported.
type ErrorRecorder struct {
	mu     sync.Mutex
	errs   []*errors.KasError
	panics []*errors.PanicError
}

func (r *ErrorRecorder) HandleError(err *errors.KasError) {
	r.mu.Lock()
	r.errs = append(r.errs, err)
	r.mu.Unlock()
}

func (r *ErrorRecorder) HandlePanic(err *errors.PanicError) {
	r.mu.Lock()
	r.panics = append(r.panics, err)
	r.mu.Unlock()
}

// Errors returns the reported errors in order.
func (r *ErrorRecorder) Errors() []*errors.KasError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*errors.KasError(nil), r.errs...)
}

// Panics returns the reported panics in order.
func (r *ErrorRecorder) Panics() []*errors.PanicError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*errors.PanicError(nil), r.panics...)
}

// Count returns the number of errors of the given kind.
func (r *ErrorRecorder) Count(kind errors.ErrorKind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.errs {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Reset discards everything recorded.
func (r *ErrorRecorder) Reset() {
	r.mu.Lock()
	r.errs = nil
	r.panics = nil
	r.mu.Unlock()
}
