package blockfall

// EventType identifies a kind of screensaver event.
type EventType uint8

const (
	EventExit      EventType = iota // the exit state machine reached EXITING
	EventCloudWrap                  // a cloud wrapped back past the left edge
)

func (t EventType) String() string {
	switch t {
	case EventExit:
		return "exit"
	case EventCloudWrap:
		return "cloud-wrap"
	default:
		return "unknown"
	}
}

// Event carries one notification from the frame loop.
type Event struct {
	Type    EventType
	Trigger ExitTrigger // valid for EventExit
	Cloud   int         // cloud index, valid for EventCloudWrap
	Frame   int
	Elapsed float64 // seconds since start
}

// EventSink receives frame loop events. Set one with
// Screensaver.SetEventSink; the ecs package provides a Donburi-backed sink.
type EventSink interface {
	EmitEvent(event Event)
}
