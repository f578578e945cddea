package blockfall

import "testing"

func TestScriptedInputIdle(t *testing.T) {
	in := NewScriptedInput(50, 60)
	for i := 0; i < 3; i++ {
		s := in.Snapshot()
		if s != (InputSnapshot{CursorX: 50, CursorY: 60}) {
			t.Fatalf("idle snapshot %d = %+v", i, s)
		}
	}
}

func TestScriptedInputFIFO(t *testing.T) {
	in := NewScriptedInput(0, 0)
	in.QueueIdle(2)
	in.QueueKey()
	in.QueueClick()
	in.QueueClose()
	if in.Pending() != 5 {
		t.Fatalf("Pending = %d, want 5", in.Pending())
	}

	want := []InputSnapshot{
		{},
		{},
		{KeyPressed: true},
		{ButtonPressed: true},
		{CloseRequested: true},
	}
	for i, w := range want {
		if got := in.Snapshot(); got != w {
			t.Errorf("frame %d = %+v, want %+v", i, got, w)
		}
	}
	if in.Pending() != 0 {
		t.Errorf("Pending = %d after draining", in.Pending())
	}
}

func TestScriptedInputMovePersists(t *testing.T) {
	in := NewScriptedInput(10, 10)
	in.QueueMove(30, 40)
	in.QueueClick()

	if s := in.Snapshot(); s.CursorX != 30 || s.CursorY != 40 {
		t.Errorf("move frame = %+v", s)
	}
	if s := in.Snapshot(); !s.ButtonPressed || s.CursorX != 30 {
		t.Errorf("click frame = %+v, want click at the moved cursor", s)
	}
	if s := in.Snapshot(); s.CursorX != 30 || s.CursorY != 40 {
		t.Errorf("idle frame = %+v, want cursor resting at (30, 40)", s)
	}
}

func TestScriptedInputDrivesExitMonitor(t *testing.T) {
	in := NewScriptedInput(100, 100)
	m := NewExitMonitor(0)
	in.QueueIdle(5)
	in.QueueMove(101, 100)

	frames := 0
	for m.Poll(in.Snapshot()) == StateRunning {
		frames++
		if frames > 10 {
			t.Fatal("monitor never exited")
		}
	}
	if frames != 5 || m.Trigger() != TriggerMouseMove {
		t.Errorf("exited after %d frames by %v, want 5 by mouse-move", frames, m.Trigger())
	}
}
