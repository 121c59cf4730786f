// Package errors provides structured error reporting for the toolkit.
//
// Nothing in layout or event dispatch is fatal. Problems are reported to a
// global ErrorHandler and the caller carries on with its previous valid
// state: configuration errors (such as a duplicate grab) are logged as
// warnings, routing misses (such as a stale widget id) are logged only in
// verbose mode, and panics raised by widget code are recovered.
package errors

import (
	"fmt"
	"time"

	"github.com/kas-gui/kas-go/pkg/core"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates a rejected request that would break a tree or
	// grab invariant, e.g. a second grab on an already-grabbed source.
	KindConfig
	// KindRouting indicates an event with no live recipient: a coordinate
	// outside every widget, or an id made stale by reconfiguration.
	KindRouting
	// KindPolicy indicates a layout promise that could not be kept, e.g. a
	// surface smaller than the window's minimum. Content overflows; it is
	// not an error at the protocol level.
	KindPolicy
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindRouting:
		return "routing"
	case KindPolicy:
		return "policy"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// KasError represents a structured, non-fatal error.
type KasError struct {
	// Op is the operation that failed (e.g., "event.RequestGrab").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Widget is the widget involved, if any.
	Widget core.WidgetID
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *KasError) Error() string {
	if e.Widget.IsValid() {
		return fmt.Sprintf("%s [%s] widget=%v: %v", e.Op, e.Kind, e.Widget, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *KasError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "engine.ProcessBatch").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ParseError represents a failure to decode external input such as a
// description file. It is returned to the caller, not reported.
type ParseError struct {
	// Source names the input (a file path or "stdin").
	Source string
	// Path locates the offending value within the input, e.g. "root.children[2]".
	Path string
	// Err is the underlying error.
	Err error
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("parse %s at %s: %v", e.Source, e.Path, e.Err)
	}
	return fmt.Sprintf("parse %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported by the toolkit.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *KasError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
