// Package engine owns a window's widget tree together with its event manager
// and theme, and turns raw platform input into dispatch batches.
//
// Input may be pushed from any goroutine; it is queued and applied, in
// order, by ProcessBatch on the goroutine that owns the tree. Each batch ends
// by firing the timers that have expired. Widget panics are recovered and
// reported so a long-running session keeps going.
package engine

import (
	"sync"
	"time"

	"github.com/kas-gui/kas-go/pkg/core"
	"github.com/kas-gui/kas-go/pkg/errors"
	"github.com/kas-gui/kas-go/pkg/event"
	"github.com/kas-gui/kas-go/pkg/geom"
	"github.com/kas-gui/kas-go/pkg/layout"
	"github.com/kas-gui/kas-go/pkg/widgets"
)

type inputKind uint8

const (
	inputPress inputKind = iota
	inputCancel
	inputAction
	inputCharacter
	inputFocus
)

// input is one queued platform event.
type input struct {
	kind   inputKind
	source event.PressSource
	phase  event.PressPhase
	coord  geom.Coord
	id     core.WidgetID
	action event.Action
	char   rune
}

// Engine drives one window.
type Engine struct {
	window *widgets.Window
	mgr    *event.Manager
	sh     layout.SizeHandle

	size       geom.Size
	limits     widgets.SizeLimits
	configured bool
	started    bool
	nextID     core.WidgetID
	frameID    uint64

	queueMu sync.Mutex
	queue   []input

	onMessage func(msg any)
	trace     *BatchTraceBuffer
}

// New creates an engine for window, sized with sh.
func New(window *widgets.Window, sh layout.SizeHandle) *Engine {
	return &Engine{
		window: window,
		mgr:    event.NewManager(),
		sh:     sh,
	}
}

// Window returns the engine's window.
func (e *Engine) Window() *widgets.Window { return e.window }

// Manager returns the engine's event manager.
func (e *Engine) Manager() *event.Manager { return e.mgr }

// SizeHandle returns the theme metrics in use.
func (e *Engine) SizeHandle() layout.SizeHandle { return e.sh }

// SetClock replaces the clock used for timers.
func (e *Engine) SetClock(c event.Clock) event.Clock { return e.mgr.SetClock(c) }

// OnMessage registers fn to receive every message that reaches the window
// unconsumed.
func (e *Engine) OnMessage(fn func(msg any)) { e.onMessage = fn }

// EnableTrace starts recording a sample per batch, keeping the last capacity
// samples. Batches slower than threshold are counted as slow.
func (e *Engine) EnableTrace(capacity int, threshold time.Duration) *BatchTraceBuffer {
	e.trace = NewBatchTraceBuffer(capacity, threshold)
	return e.trace
}

// Configure numbers the tree and resets the manager. It must run before the
// first batch and again after any change to the tree's shape. If the window
// has already been sized it is laid out again.
func (e *Engine) Configure() {
	e.mgr.Reset()
	e.nextID = widgets.Configure(e.window, e.mgr, 1)
	e.configured = true
	if e.size != (geom.Size{}) {
		e.limits = e.window.Resize(e.sh, e.size)
	}
}

// WidgetCount returns the number of widgets numbered by the last Configure.
func (e *Engine) WidgetCount() int {
	if !e.configured {
		return 0
	}
	return int(e.nextID) - 1
}

// FindSize returns the window's minimum and ideal surface sizes.
func (e *Engine) FindSize() (minSize, ideal geom.Size) {
	return e.window.FindSize(e.sh)
}

// Start configures the tree, sizes it to size (or its ideal size if size is
// zero) and runs the window's start callbacks.
func (e *Engine) Start(size geom.Size) widgets.SizeLimits {
	e.Configure()
	if size == (geom.Size{}) {
		_, size = e.FindSize()
	}
	lim := e.Resize(size)
	if !e.started {
		e.started = true
		e.runCallbacks(widgets.CallbackStart)
	}
	return lim
}

// Close runs the window's close callbacks.
func (e *Engine) Close() {
	e.runCallbacks(widgets.CallbackClose)
}

func (e *Engine) runCallbacks(cond widgets.Callback) {
	for i, c := range e.window.Callbacks() {
		if c == cond {
			func() {
				defer errors.Recover("engine.callback")
				e.window.TriggerCallback(i, e.mgr)
			}()
		}
	}
}

// Resize lays the window out for a surface of size and returns the limits
// the platform should apply. The surface is clamped to the enforced limits.
func (e *Engine) Resize(size geom.Size) widgets.SizeLimits {
	if !e.configured {
		e.Configure()
	}
	if e.limits.Min != (geom.Size{}) {
		size = size.Max(e.limits.Min)
	}
	if e.limits.Max != (geom.Size{}) {
		size = size.Min(e.limits.Max)
	}
	e.size = size
	e.limits = e.window.Resize(e.sh, size)
	e.mgr.Redraw(e.window.ID())
	return e.limits
}

// Size returns the current surface size.
func (e *Engine) Size() geom.Size { return e.size }

// Limits returns the size limits from the last resize.
func (e *Engine) Limits() widgets.SizeLimits { return e.limits }

func (e *Engine) push(in input) {
	e.queueMu.Lock()
	e.queue = append(e.queue, in)
	e.queueMu.Unlock()
}

// PushPress queues a press event.
func (e *Engine) PushPress(source event.PressSource, phase event.PressPhase, coord geom.Coord) {
	e.push(input{kind: inputPress, source: source, phase: phase, coord: coord})
}

// PushCancel queues cancellation of source.
func (e *Engine) PushCancel(source event.PressSource) {
	e.push(input{kind: inputCancel, source: source})
}

// PushAction queues an id-addressed action.
func (e *Engine) PushAction(id core.WidgetID, action event.Action) {
	e.push(input{kind: inputAction, id: id, action: action})
}

// PushCharacter queues a character for the char-focus owner.
func (e *Engine) PushCharacter(r rune) {
	e.push(input{kind: inputCharacter, char: r})
}

// PushCharFocus queues a char-focus change. core.NoWidget clears focus. The
// previous owner receives LostCharFocus when the batch is processed.
func (e *Engine) PushCharFocus(id core.WidgetID) {
	e.push(input{kind: inputFocus, id: id})
}

// Pending returns the number of queued inputs.
func (e *Engine) Pending() int {
	e.queueMu.Lock()
	defer e.queueMu.Unlock()
	return len(e.queue)
}

func (e *Engine) drainQueue() []input {
	e.queueMu.Lock()
	q := e.queue
	e.queue = nil
	e.queueMu.Unlock()
	return q
}

// ProcessBatch applies all queued input in order, then fires expired
// timers, and returns the messages that reached the window.
func (e *Engine) ProcessBatch() []any {
	if !e.configured {
		e.Configure()
	}
	start := time.Now()
	inputs := e.drainQueue()

	var msgs []any
	collect := func(resp event.Response) {
		if !resp.IsMsg() {
			return
		}
		msgs = append(msgs, resp.Message())
		if e.onMessage != nil {
			e.onMessage(resp.Message())
		}
	}

	for _, in := range inputs {
		collect(e.apply(in))
	}
	fired := e.fireTimers()

	if e.trace != nil {
		elapsed := time.Since(start)
		e.trace.Add(BatchSample{
			Timestamp:     start.UnixMilli(),
			BatchMs:       durationToMillis(elapsed),
			Inputs:        len(inputs),
			TimersFired:   fired,
			Messages:      len(msgs),
			Grabs:         e.mgr.GrabCount(),
			PendingTimers: e.mgr.PendingTimers(),
		}, elapsed)
	}
	return msgs
}

// apply dispatches one input, recovering from widget panics.
func (e *Engine) apply(in input) (resp event.Response) {
	defer errors.RecoverWithCallback("engine.ProcessBatch", func(any) {
		resp = event.None()
		e.mgr.Redraw(e.window.ID())
	})
	switch in.kind {
	case inputPress:
		return e.mgr.HandlePress(e.window, in.source, in.phase, in.coord)
	case inputCancel:
		return e.mgr.CancelPress(e.window, in.source)
	case inputAction:
		return e.mgr.HandleAction(e.window, in.id, in.action)
	case inputCharacter:
		return e.mgr.ReceivedCharacter(e.window, in.char)
	case inputFocus:
		e.mgr.SetCharFocus(e.window, in.id)
	}
	return event.None()
}

func (e *Engine) fireTimers() (n int) {
	defer errors.RecoverWithCallback("engine.FireTimers", nil)
	return e.mgr.FireTimers(e.window)
}

// NextTimer returns when the next timer is due, so a platform loop can sleep
// until then.
func (e *Engine) NextTimer() (time.Time, bool) {
	return e.mgr.NextTimer()
}

// Frame reports whether a repaint is due and, if so, captures the
// rectangles to draw. Any number of redraw requests since the previous
// frame result in one frame.
func (e *Engine) Frame() (FrameSnapshot, bool) {
	if !e.mgr.TakeRedraw() {
		return FrameSnapshot{}, false
	}
	e.frameID++
	return e.Snapshot(), true
}
