package game

// EventKind is a discrete input event delivered to the session.
type EventKind int

const (
	EventNone    EventKind = iota
	EventQuit              // window closed, Escape or Ctrl-C
	EventPrimary           // primary mouse button or space bar pressed
	EventCopy              // copy the session report (terminal phases only)
)

func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "quit"
	case EventPrimary:
		return "primary"
	case EventCopy:
		return "copy"
	default:
		return "none"
	}
}

// Input is everything a host collected since the previous tick. Events are
// in arrival order; PointerX is the latest pointer x-coordinate.
type Input struct {
	Events   []EventKind
	PointerX float64
}

// Press appends an event and returns the input for chaining.
func (in Input) Press(k EventKind) Input {
	in.Events = append(in.Events, k)
	return in
}
