package ecs

import (
	"github.com/phanxgames/blockfall"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ScreensaverEventType is the Donburi event type for blockfall events.
var ScreensaverEventType = events.NewEventType[blockfall.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on ScreensaverEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) blockfall.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event blockfall.Event) {
	ScreensaverEventType.Publish(s.world, event)
}

// Summary tallies the events a run produced.
type Summary struct {
	Exit       blockfall.Event
	Exited     bool
	CloudWraps int
}

// Track subscribes a Summary to world's screensaver events. The summary is
// filled in as events are processed.
func Track(world donburi.World) *Summary {
	sum := &Summary{}
	ScreensaverEventType.Subscribe(world, func(w donburi.World, e blockfall.Event) {
		switch e.Type {
		case blockfall.EventExit:
			if !sum.Exited {
				sum.Exit = e
				sum.Exited = true
			}
		case blockfall.EventCloudWrap:
			sum.CloudWraps++
		}
	})
	return sum
}
