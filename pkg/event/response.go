package event

import "fmt"

type responseKind uint8

const (
	respNone responseKind = iota
	respMsg
	respUnhandled
)

// Response is the result of delivering an event: handled without a message,
// handled with a message for the caller, or unhandled. An unhandled response
// carries the event to offer to the next ancestor. A widget may translate the
// event it received before passing it on.
type Response struct {
	kind responseKind
	msg  any
	ev   Event
}

// None returns the "handled, no message" response.
func None() Response { return Response{} }

// Msg returns a "handled, emit message" response.
func Msg(m any) Response { return Response{kind: respMsg, msg: m} }

// Unhandled returns a response asking the ancestors to handle ev.
func Unhandled(ev Event) Response { return Response{kind: respUnhandled, ev: ev} }

// IsNone reports whether the event was handled without a message.
func (r Response) IsNone() bool { return r.kind == respNone }

// IsMsg reports whether the response carries a message.
func (r Response) IsMsg() bool { return r.kind == respMsg }

// IsUnhandled reports whether the event was not handled.
func (r Response) IsUnhandled() bool { return r.kind == respUnhandled }

// Message returns the message of a Msg response, or nil.
func (r Response) Message() any {
	if r.kind != respMsg {
		return nil
	}
	return r.msg
}

// Event returns the event carried by an Unhandled response.
func (r Response) Event() (Event, bool) {
	return r.ev, r.kind == respUnhandled
}

func (r Response) String() string {
	switch r.kind {
	case respMsg:
		return fmt.Sprintf("Msg(%v)", r.msg)
	case respUnhandled:
		return fmt.Sprintf("Unhandled(%v)", r.ev)
	default:
		return "None"
	}
}
