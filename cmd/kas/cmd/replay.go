package cmd

import (
	"fmt"
	"io"

	"github.com/kas-gui/kas-go/pkg/describe"
	"github.com/kas-gui/kas-go/pkg/engine"
	"github.com/kas-gui/kas-go/pkg/errors"
	"github.com/kas-gui/kas-go/pkg/geom"
	kastest "github.com/kas-gui/kas-go/pkg/testing"
)

func init() {
	RegisterCommand(&Command{
		Name:  "replay",
		Short: "Replay scripted input against a layout",
		Long: `Build the widget tree described by a YAML file, then replay the steps of
a script against it and print, per step, the messages that reached the
window and any errors reported during dispatch.

Time is simulated: "wait" steps advance a fake clock and fire the timers
that fall due, so a replay is deterministic and does not sleep.

Script steps (one key per step):
  tap: {target: NAME} or {x: X, y: Y}
  press: {phase: start|move|end, target: NAME or x/y, source: mouse|touch:N}
  cancel: SOURCE
  action: {target: NAME, kind: activate|scroll|pan|timer, x: DX, y: DY}
  text: STRING
  wait: DURATION
  resize: {width: W, height: H}

Flags:
  --size WxH         Surface size, or "ideal"
  --metrics NAME     Override theme.metrics (pixel or cell)
  --format FORMAT    Format of the final layout: text (default), yaml or json
  --trace            Print dispatch batch timing after the replay`,
		Usage: "kas replay <tree.yaml> <script.yaml> [--size WxH] [--trace]",
		Run:   runReplay,
	})
}

func runReplay(args []string) error {
	trace := false
	filtered := args[:0:0]
	for _, arg := range args {
		if arg == "--trace" {
			trace = true
			continue
		}
		filtered = append(filtered, arg)
	}
	args, opts, err := parseViewArgs(filtered)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("expected a description and a script\n\nUsage: kas replay <tree.yaml> <script.yaml>")
	}

	s, err := newSession(args[0], opts)
	if err != nil {
		return err
	}
	script, err := describe.LoadScript(args[1])
	if err != nil {
		return err
	}

	tester := kastest.NewWidgetTester()
	defer tester.Cleanup()
	tester.SetSizeHandle(s.sh)
	// A zero size starts the window at its ideal size.
	tester.SetSize(s.size)
	if err := tester.PumpWidget(s.tree.Window); err != nil {
		return err
	}

	var buf *engine.BatchTraceBuffer
	if trace {
		buf = tester.Engine().EnableTrace(0, 0)
	}

	r := &replayer{tester: tester, tree: s.tree, out: stdout}
	for i, step := range script.Steps {
		if err := r.step(i, step); err != nil {
			return err
		}
	}

	fmt.Fprintln(stdout)
	if err := printSnapshot(stdout, tester.Engine(), opts.format); err != nil {
		return err
	}
	if buf != nil {
		printTimeline(stdout, buf.Snapshot())
	}
	return nil
}

type replayer struct {
	tester *kastest.WidgetTester
	tree   *describe.Tree
	out    io.Writer
}

func (r *replayer) coord(t *describe.Target) (geom.Coord, error) {
	if t.Target == "" {
		return t.Coord(), nil
	}
	w, ok := r.tree.Lookup(t.Target)
	if !ok {
		return geom.Coord{}, fmt.Errorf("no widget named %q", t.Target)
	}
	return w.Core().Rect().Center(), nil
}

func (r *replayer) step(i int, step *describe.Step) error {
	fmt.Fprintf(r.out, "step %d: %v\n", i+1, step)
	if err := r.apply(step); err != nil {
		return fmt.Errorf("step %d (%v): %w", i+1, step, err)
	}
	for _, msg := range r.tester.TakeMessages() {
		fmt.Fprintf(r.out, "  message: %v\n", msg)
	}
	recorder := r.tester.Errors()
	for _, err := range recorder.Errors() {
		switch err.Kind {
		case errors.KindRouting:
			// Routine when scripts tap empty space.
			fmt.Fprintf(r.out, "  unhandled: %v\n", err.Err)
		case errors.KindPolicy:
			fmt.Fprintf(r.out, "  overflow: %v\n", err.Err)
		default:
			fmt.Fprintf(r.out, "  error: %v\n", err)
		}
	}
	for _, p := range recorder.Panics() {
		fmt.Fprintf(r.out, "  panic: %v\n", p)
	}
	recorder.Reset()
	return nil
}

func (r *replayer) apply(step *describe.Step) error {
	t := r.tester
	switch step.Kind() {
	case describe.StepTap:
		pos, err := r.coord(step.Tap)
		if err != nil {
			return err
		}
		return t.TapAt(pos)
	case describe.StepPress:
		pos, err := r.coord(&step.Press.Target)
		if err != nil {
			return err
		}
		if err := t.SendPress(step.Source(), step.Phase(), pos); err != nil {
			return err
		}
		return t.Pump()
	case describe.StepCancel:
		if err := t.SendCancel(step.Source()); err != nil {
			return err
		}
		return t.Pump()
	case describe.StepAction:
		w, ok := r.tree.Lookup(step.Action.Target)
		if !ok {
			return fmt.Errorf("no widget named %q", step.Action.Target)
		}
		return t.SendActionTo(w.Core().ID(), step.EventAction())
	case describe.StepText:
		return t.EnterText(step.Text)
	case describe.StepWait:
		return t.PumpFor(step.Duration())
	case describe.StepResize:
		t.SetSize(step.Resize.Size())
		return t.Pump()
	}
	return fmt.Errorf("unsupported step %v", step.Kind())
}

func printTimeline(w io.Writer, tl engine.BatchTimeline) {
	var total float64
	for _, s := range tl.Samples {
		total += s.BatchMs
	}
	fmt.Fprintf(w, "\nbatches: %d, slow (> %.1fms): %d", len(tl.Samples), tl.ThresholdMs, tl.SlowBatches)
	if n := len(tl.Samples); n > 0 {
		fmt.Fprintf(w, ", mean %.3fms", total/float64(n))
	}
	fmt.Fprintln(w)
}
