package ecs

import (
	"testing"

	"github.com/phanxgames/blockfall"

	"github.com/yohamta/donburi"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []blockfall.Event
	ScreensaverEventType.Subscribe(world, func(w donburi.World, e blockfall.Event) {
		received = append(received, e)
	})

	sink.EmitEvent(blockfall.Event{Type: blockfall.EventCloudWrap, Cloud: 3, Frame: 10})
	sink.EmitEvent(blockfall.Event{Type: blockfall.EventExit, Trigger: blockfall.TriggerKey, Frame: 11})

	if len(received) != 0 {
		t.Fatalf("events delivered before ProcessEvents: %d", len(received))
	}
	ScreensaverEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e := received[0]; e.Type != blockfall.EventCloudWrap || e.Cloud != 3 || e.Frame != 10 {
		t.Errorf("event 0: %+v", e)
	}
	if e := received[1]; e.Type != blockfall.EventExit || e.Trigger != blockfall.TriggerKey {
		t.Errorf("event 1: %+v", e)
	}
}

func TestDonburiSink_ImplementsEventSink(t *testing.T) {
	var _ blockfall.EventSink = NewDonburiSink(donburi.NewWorld())
}

func TestTrack(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	sum := Track(world)

	for i := 0; i < 4; i++ {
		sink.EmitEvent(blockfall.Event{Type: blockfall.EventCloudWrap, Cloud: i})
	}
	sink.EmitEvent(blockfall.Event{Type: blockfall.EventExit, Trigger: blockfall.TriggerMouseMove, Elapsed: 2.5})
	sink.EmitEvent(blockfall.Event{Type: blockfall.EventExit, Trigger: blockfall.TriggerFault})
	ScreensaverEventType.ProcessEvents(world)

	if sum.CloudWraps != 4 {
		t.Errorf("CloudWraps = %d, want 4", sum.CloudWraps)
	}
	if !sum.Exited {
		t.Fatal("Exited = false")
	}
	if sum.Exit.Trigger != blockfall.TriggerMouseMove || sum.Exit.Elapsed != 2.5 {
		t.Errorf("Exit = %+v, want first exit event", sum.Exit)
	}
}

func TestTrack_NoEvents(t *testing.T) {
	world := donburi.NewWorld()
	sum := Track(world)
	ScreensaverEventType.ProcessEvents(world)
	if sum.Exited || sum.CloudWraps != 0 {
		t.Errorf("summary = %+v, want zero", *sum)
	}
}
