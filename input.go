package blockfall

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSnapshot is the input state observed during one frame.
type InputSnapshot struct {
	CloseRequested bool // window manager asked the window to close
	KeyPressed     bool // some key went down this frame
	ButtonPressed  bool // some mouse button went down this frame
	CursorX        int
	CursorY        int
}

// InputSource yields one InputSnapshot per frame. Snapshot is called exactly
// once per Update.
type InputSource interface {
	Snapshot() InputSnapshot
}

// ebitenInput reads the live keyboard, mouse and window state.
type ebitenInput struct {
	keys []ebiten.Key
}

// NewEbitenInput returns the InputSource backed by ebiten's input state.
// ebiten.SetWindowClosingHandled(true) must be in effect for close requests
// to be observed.
func NewEbitenInput() InputSource {
	return &ebitenInput{}
}

func (in *ebitenInput) Snapshot() InputSnapshot {
	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	x, y := ebiten.CursorPosition()
	return InputSnapshot{
		CloseRequested: ebiten.IsWindowBeingClosed(),
		KeyPressed:     len(in.keys) > 0,
		ButtonPressed:  anyMouseButtonJustPressed(),
		CursorX:        x,
		CursorY:        y,
	}
}

func anyMouseButtonJustPressed() bool {
	for b := ebiten.MouseButton0; b <= ebiten.MouseButtonMax; b++ {
		if inpututil.IsMouseButtonJustPressed(b) {
			return true
		}
	}
	return false
}

// ExitState is the state of the exit state machine.
type ExitState uint8

const (
	StateRunning ExitState = iota // animation in progress
	StateExiting                  // terminal; the loop ends
)

func (s ExitState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateExiting:
		return "exiting"
	default:
		return "unknown"
	}
}

// ExitTrigger records what moved the state machine to StateExiting.
type ExitTrigger uint8

const (
	TriggerNone        ExitTrigger = iota // still running
	TriggerWindowClose                    // window manager close request
	TriggerKey                            // any key down
	TriggerMouseButton                    // any mouse button down
	TriggerMouseMove                      // cursor left its start position
	TriggerFault                          // a panic inside the frame loop
)

func (t ExitTrigger) String() string {
	switch t {
	case TriggerNone:
		return "none"
	case TriggerWindowClose:
		return "window-close"
	case TriggerKey:
		return "key"
	case TriggerMouseButton:
		return "mouse-button"
	case TriggerMouseMove:
		return "mouse-move"
	case TriggerFault:
		return "fault"
	default:
		return "unknown"
	}
}

// ExitMonitor is the RUNNING → EXITING state machine. Once exiting it
// ignores all further input.
type ExitMonitor struct {
	state   ExitState
	trigger ExitTrigger

	settle         int
	startX, startY int
	started        bool
}

// NewExitMonitor creates a running monitor. The cursor start position is
// taken from the first poll and re-taken for the next settleFrames polls,
// absorbing the pointer warp some platforms perform when the cursor is
// captured.
func NewExitMonitor(settleFrames int) *ExitMonitor {
	return &ExitMonitor{settle: max(0, settleFrames)}
}

// State returns the current state.
func (m *ExitMonitor) State() ExitState { return m.state }

// Trigger returns what caused the exit, or TriggerNone while running.
func (m *ExitMonitor) Trigger() ExitTrigger { return m.trigger }

// StartPosition returns the recorded cursor start position. ok is false
// before the first poll.
func (m *ExitMonitor) StartPosition() (x, y int, ok bool) {
	return m.startX, m.startY, m.started
}

// SetStartPosition records the cursor start position explicitly and ends the
// settle period.
func (m *ExitMonitor) SetStartPosition(x, y int) {
	m.startX, m.startY, m.started = x, y, true
	m.settle = 0
}

// Poll feeds one frame of input and returns the resulting state.
func (m *ExitMonitor) Poll(in InputSnapshot) ExitState {
	if m.state == StateExiting {
		return m.state
	}

	switch {
	case in.CloseRequested:
		m.exit(TriggerWindowClose)
	case in.KeyPressed:
		m.exit(TriggerKey)
	case in.ButtonPressed:
		m.exit(TriggerMouseButton)
	case !m.started || m.settle > 0:
		if m.started {
			m.settle--
		}
		m.startX, m.startY, m.started = in.CursorX, in.CursorY, true
	case in.CursorX != m.startX || in.CursorY != m.startY:
		m.exit(TriggerMouseMove)
	}
	return m.state
}

// Fail moves the monitor to StateExiting because of a fault.
func (m *ExitMonitor) Fail() {
	m.exit(TriggerFault)
}

func (m *ExitMonitor) exit(t ExitTrigger) {
	if m.state == StateExiting {
		return
	}
	m.state = StateExiting
	m.trigger = t
}
