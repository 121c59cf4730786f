package describe

import (
	stderrors "errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kas-gui/kas-go/pkg/errors"
	"github.com/kas-gui/kas-go/pkg/event"
	"github.com/kas-gui/kas-go/pkg/geom"
)

// StepKind identifies what a script step does.
type StepKind uint8

const (
	StepTap StepKind = iota
	StepPress
	StepCancel
	StepAction
	StepText
	StepWait
	StepResize
)

func (k StepKind) String() string {
	switch k {
	case StepTap:
		return "tap"
	case StepPress:
		return "press"
	case StepCancel:
		return "cancel"
	case StepAction:
		return "action"
	case StepText:
		return "text"
	case StepWait:
		return "wait"
	case StepResize:
		return "resize"
	default:
		return fmt.Sprintf("StepKind(%d)", uint8(k))
	}
}

// Script is a sequence of input steps replayed against a described tree:
//
//	steps:
//	  - tap: {target: inc}
//	  - press: {phase: start, x: 3, y: 1, source: "touch:1"}
//	  - action: {target: list, kind: scroll, y: -2}
//	  - text: "hello\n"
//	  - wait: 1.5s
//	  - resize: {width: 40, height: 10}
//
// Each step sets exactly one key.
type Script struct {
	Steps []*Step `yaml:"steps"`
}

// Step is one script step.
type Step struct {
	Tap    *Target     `yaml:"tap,omitempty"`
	Press  *PressStep  `yaml:"press,omitempty"`
	Cancel string      `yaml:"cancel,omitempty"`
	Action *ActionStep `yaml:"action,omitempty"`
	Text   string      `yaml:"text,omitempty"`
	Wait   string      `yaml:"wait,omitempty"`
	Resize *SizeStep   `yaml:"resize,omitempty"`

	kind   StepKind
	source event.PressSource
	phase  event.PressPhase
	wait   time.Duration
	action event.Action
}

// Target addresses a widget by name, or a point by coordinates.
type Target struct {
	Target string `yaml:"target,omitempty"`
	X      int32  `yaml:"x,omitempty"`
	Y      int32  `yaml:"y,omitempty"`
}

// Coord returns the target's coordinates.
func (t *Target) Coord() geom.Coord { return geom.Coord{X: t.X, Y: t.Y} }

// SizeStep is the new surface size of a resize step.
type SizeStep struct {
	Width  uint32 `yaml:"width"`
	Height uint32 `yaml:"height"`
}

// Size returns the size as a geom.Size.
func (s *SizeStep) Size() geom.Size { return geom.Size{W: s.Width, H: s.Height} }

// PressStep queues one raw press event.
type PressStep struct {
	Target `yaml:",inline"`
	Source string `yaml:"source,omitempty"`
	Phase  string `yaml:"phase"`
}

// ActionStep delivers an action to a named widget. X and Y are the scroll
// delta in lines, or the pan translation.
type ActionStep struct {
	Target string  `yaml:"target"`
	Kind   string  `yaml:"kind"`
	X      float32 `yaml:"x,omitempty"`
	Y      float32 `yaml:"y,omitempty"`
}

// Kind returns what the step does.
func (s *Step) Kind() StepKind { return s.kind }

// Source returns the press source of a press or cancel step.
func (s *Step) Source() event.PressSource { return s.source }

// Phase returns the phase of a press step.
func (s *Step) Phase() event.PressPhase { return s.phase }

// Duration returns the duration of a wait step.
func (s *Step) Duration() time.Duration { return s.wait }

// EventAction returns the action of an action step.
func (s *Step) EventAction() event.Action { return s.action }

func (s *Step) String() string {
	switch s.kind {
	case StepTap:
		if s.Tap.Target != "" {
			return "tap " + s.Tap.Target
		}
		return fmt.Sprintf("tap %v", s.Tap.Coord())
	case StepPress:
		if s.Press.Target.Target != "" {
			return fmt.Sprintf("press %v %s on %s", s.source, s.phase, s.Press.Target.Target)
		}
		return fmt.Sprintf("press %v %s at %v", s.source, s.phase, s.Press.Coord())
	case StepCancel:
		return fmt.Sprintf("cancel %v", s.source)
	case StepAction:
		return fmt.Sprintf("action %v to %s", s.action, s.Action.Target)
	case StepText:
		return fmt.Sprintf("text %q", s.Text)
	case StepWait:
		return fmt.Sprintf("wait %v", s.wait)
	case StepResize:
		return fmt.Sprintf("resize %v", s.Resize.Size())
	default:
		return s.kind.String()
	}
}

// ParseScript decodes a script. source names the input in errors.
func ParseScript(source string, data []byte) (*Script, error) {
	var sc Script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, &errors.ParseError{Source: source, Err: err}
	}
	for i, s := range sc.Steps {
		path := fmt.Sprintf("steps[%d]", i)
		if s == nil {
			return nil, &errors.ParseError{Source: source, Path: path, Err: stderrors.New("empty step")}
		}
		if err := s.resolve(); err != nil {
			return nil, &errors.ParseError{Source: source, Path: path, Err: err}
		}
	}
	return &sc, nil
}

// LoadScript reads and parses a script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return ParseScript(path, data)
}

func (s *Step) resolve() error {
	var set []StepKind
	if s.Tap != nil {
		set = append(set, StepTap)
	}
	if s.Press != nil {
		set = append(set, StepPress)
	}
	if s.Cancel != "" {
		set = append(set, StepCancel)
	}
	if s.Action != nil {
		set = append(set, StepAction)
	}
	if s.Text != "" {
		set = append(set, StepText)
	}
	if s.Wait != "" {
		set = append(set, StepWait)
	}
	if s.Resize != nil {
		set = append(set, StepResize)
	}
	switch len(set) {
	case 0:
		return stderrors.New("step does nothing")
	case 1:
		s.kind = set[0]
	default:
		return fmt.Errorf("step sets both %s and %s", set[0], set[1])
	}

	var err error
	switch s.kind {
	case StepPress:
		if s.source, err = ParseSource(s.Press.Source); err != nil {
			return err
		}
		s.phase, err = parsePhase(s.Press.Phase)
	case StepCancel:
		s.source, err = ParseSource(s.Cancel)
	case StepAction:
		if s.Action.Target == "" {
			return stderrors.New("action needs a target")
		}
		s.action, err = parseAction(s.Action)
	case StepWait:
		s.wait, err = time.ParseDuration(s.Wait)
		if err == nil && s.wait < 0 {
			err = fmt.Errorf("negative wait %v", s.wait)
		}
	case StepResize:
		if s.Resize.Width == 0 || s.Resize.Height == 0 {
			err = fmt.Errorf("resize to empty size %v", s.Resize.Size())
		}
	}
	return err
}

// ParseSource parses a press source: "mouse" (the left button),
// "mouse:right", "mouse:middle", or "touch:N". Empty means "mouse".
func ParseSource(s string) (event.PressSource, error) {
	name, arg, _ := strings.Cut(strings.ToLower(strings.TrimSpace(s)), ":")
	switch name {
	case "", "mouse":
		switch arg {
		case "", "left":
			return event.Mouse(event.ButtonLeft), nil
		case "right":
			return event.Mouse(event.ButtonRight), nil
		case "middle":
			return event.Mouse(event.ButtonMiddle), nil
		}
	case "touch":
		id, err := strconv.ParseUint(arg, 10, 64)
		if err == nil {
			return event.Touch(id), nil
		}
	}
	return event.PressSource{}, fmt.Errorf("unknown press source %q", s)
}

func parsePhase(s string) (event.PressPhase, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "start":
		return event.PhaseStart, nil
	case "move":
		return event.PhaseMove, nil
	case "end":
		return event.PhaseEnd, nil
	default:
		return 0, fmt.Errorf("unknown press phase %q (want start, move or end)", s)
	}
}

func parseAction(a *ActionStep) (event.Action, error) {
	switch strings.ToLower(strings.TrimSpace(a.Kind)) {
	case "activate":
		return event.Activate(), nil
	case "scroll":
		return event.Scroll(event.LineDelta(a.X, a.Y)), nil
	case "pan":
		return event.Pan(geom.Vec2{X: 1}, geom.Vec2{X: a.X, Y: a.Y}), nil
	case "timer":
		return event.TimerUpdate(), nil
	default:
		return event.Action{}, fmt.Errorf("unknown action kind %q", a.Kind)
	}
}
