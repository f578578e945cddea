package blockfall

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type fakeCursor struct {
	visible bool
	grabbed bool
	grabErr error
	calls   int
}

func newFakeCursor() *fakeCursor {
	return &fakeCursor{visible: true}
}

func (c *fakeCursor) SetVisible(v bool) {
	c.calls++
	c.visible = v
}

func (c *fakeCursor) SetGrabbed(g bool) error {
	c.calls++
	if g && c.grabErr != nil {
		return c.grabErr
	}
	c.grabbed = g
	return nil
}

func (c *fakeCursor) restored() bool {
	return c.visible && !c.grabbed
}

// captureLog redirects package logging into a buffer for the test's
// duration.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogOutput(&buf)
	t.Cleanup(func() { SetLogOutput(os.Stderr) })
	return &buf
}

func TestAcquireSessionHidesAndGrabs(t *testing.T) {
	c := newFakeCursor()
	s := AcquireSession(c)
	if c.visible || !c.grabbed {
		t.Errorf("after acquire: visible %v grabbed %v", c.visible, c.grabbed)
	}
	if s.Released() {
		t.Error("fresh session reports released")
	}
}

func TestSessionReleaseRestores(t *testing.T) {
	c := newFakeCursor()
	s := AcquireSession(c)
	s.Release()
	if !c.restored() {
		t.Errorf("after release: visible %v grabbed %v", c.visible, c.grabbed)
	}
	if !s.Released() {
		t.Error("Released() = false")
	}
}

func TestSessionReleaseIdempotent(t *testing.T) {
	c := newFakeCursor()
	s := AcquireSession(c)
	s.Release()
	calls := c.calls
	s.Release()
	s.Release()
	if c.calls != calls {
		t.Errorf("repeat Release touched the cursor: %d calls, want %d", c.calls, calls)
	}

	var nilSession *Session
	nilSession.Release()
}

func TestAcquireSessionGrabFailureIgnored(t *testing.T) {
	buf := captureLog(t)
	c := newFakeCursor()
	c.grabErr = ErrGrabUnsupported

	s := AcquireSession(c)
	if c.visible || c.grabbed {
		t.Errorf("visible %v grabbed %v, want hidden and ungrabbed", c.visible, c.grabbed)
	}
	if !strings.Contains(buf.String(), "grab") {
		t.Errorf("grab failure not logged: %q", buf.String())
	}

	s.Release()
	if !c.restored() {
		t.Error("cursor not restored after a failed grab")
	}
}

// updateLoop stands in for ebiten.RunGame: it calls Update until it returns
// and reports Termination as a clean exit.
func updateLoop(g ebiten.Game) error {
	for {
		if err := g.Update(); err != nil {
			if errors.Is(err, ebiten.Termination) {
				return nil
			}
			return err
		}
	}
}

func newRunSaver(t *testing.T, in InputSource) *Screensaver {
	t.Helper()
	s, err := New(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	s.SetRand(newTestRand())
	s.SetInput(in)
	s.Layout(640, 480)
	return s
}

func TestRunRestoresCursorForEveryTrigger(t *testing.T) {
	tests := []struct {
		name  string
		queue func(*ScriptedInput)
		want  ExitTrigger
	}{
		{"close", func(in *ScriptedInput) { in.QueueClose() }, TriggerWindowClose},
		{"key", func(in *ScriptedInput) { in.QueueKey() }, TriggerKey},
		{"click", func(in *ScriptedInput) { in.QueueClick() }, TriggerMouseButton},
		{"move", func(in *ScriptedInput) { in.QueueIdle(5); in.QueueMove(9, 9) }, TriggerMouseMove},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewScriptedInput(0, 0)
			tt.queue(in)
			s := newRunSaver(t, in)
			c := newFakeCursor()

			var hidden bool
			err := run(s, c, func(g ebiten.Game) error {
				hidden = !c.visible && c.grabbed
				return updateLoop(g)
			})
			if err != nil {
				t.Fatalf("run() = %v", err)
			}
			if !hidden {
				t.Error("cursor was not hidden and grabbed while running")
			}
			if s.Exit().Trigger() != tt.want {
				t.Errorf("trigger = %v, want %v", s.Exit().Trigger(), tt.want)
			}
			if !c.restored() {
				t.Errorf("cursor not restored: visible %v grabbed %v", c.visible, c.grabbed)
			}
		})
	}
}

type panickingInput struct{}

func (panickingInput) Snapshot() InputSnapshot { panic("input device lost") }

func TestRunReturnsFault(t *testing.T) {
	captureLog(t)
	s := newRunSaver(t, panickingInput{})
	c := newFakeCursor()

	err := run(s, c, updateLoop)
	if !errors.Is(err, ErrFault) {
		t.Fatalf("run() = %v, want ErrFault", err)
	}
	if !c.restored() {
		t.Errorf("cursor not restored after fault: visible %v grabbed %v", c.visible, c.grabbed)
	}
}

func TestRunRestoresCursorOnPanic(t *testing.T) {
	s := newRunSaver(t, NewScriptedInput(0, 0))
	c := newFakeCursor()
	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic")
			}
		}()
		run(s, c, func(ebiten.Game) error { panic("driver lost") })
	}()
	if !c.restored() {
		t.Errorf("cursor not restored after panic: visible %v grabbed %v", c.visible, c.grabbed)
	}
}
