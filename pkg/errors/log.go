package errors

import (
	"fmt"
	"io"
	"os"
)

// LogHandler is an ErrorHandler that writes one line per error.
//
// Routing misses are expected during normal use (clicks on empty space,
// events racing a reconfiguration) and policy reports only describe overflow,
// so both are written only when Verbose is set. Everything else is written
// as a warning.
type LogHandler struct {
	// Verbose enables routing-miss and policy output and stack traces.
	Verbose bool
	// Out receives the log lines. Nil means stderr.
	Out io.Writer
}

func (h *LogHandler) out() io.Writer {
	if h.Out == nil {
		return os.Stderr
	}
	return h.Out
}

// HandleError logs a KasError.
func (h *LogHandler) HandleError(err *KasError) {
	if err == nil {
		return
	}
	w := h.out()
	if err.Kind == KindRouting || err.Kind == KindPolicy {
		if h.Verbose {
			fmt.Fprintf(w, "[kas debug] %s: %v\n", err.Op, err.Err)
		}
		return
	}
	if h.Verbose {
		fmt.Fprintf(w, "[kas warning] %s [%s]", err.Op, err.Kind)
		if err.Widget.IsValid() {
			fmt.Fprintf(w, " widget=%v", err.Widget)
		}
		fmt.Fprintf(w, ": %v\n", err.Err)
		if err.StackTrace != "" {
			fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
		}
	} else {
		fmt.Fprintf(w, "[kas warning] %s: %v\n", err.Op, err.Err)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	w := h.out()
	if err.Op != "" {
		fmt.Fprintf(w, "[kas panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(w, "[kas panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}
