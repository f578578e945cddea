package blockfall

import (
	"errors"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"
)

// Cursor controls the system cursor's visibility and input grab.
type Cursor interface {
	SetVisible(visible bool)
	SetGrabbed(grabbed bool) error
}

// ErrGrabUnsupported is returned by SetGrabbed on platforms without a
// pointer grab.
var ErrGrabUnsupported = errors.New("blockfall: input grab not supported on " + runtime.GOOS)

// ebitenCursor maps visibility and grab onto ebiten's cursor modes. A grab
// always hides the cursor.
type ebitenCursor struct {
	visible bool
	grabbed bool
}

// NewEbitenCursor returns the Cursor backed by ebiten.SetCursorMode.
func NewEbitenCursor() Cursor {
	return &ebitenCursor{visible: true}
}

func (c *ebitenCursor) SetVisible(visible bool) {
	c.visible = visible
	c.apply()
}

func (c *ebitenCursor) SetGrabbed(grabbed bool) error {
	if grabbed && !grabSupported() {
		return ErrGrabUnsupported
	}
	c.grabbed = grabbed
	c.apply()
	return nil
}

func (c *ebitenCursor) apply() {
	switch {
	case c.grabbed:
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	case c.visible:
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	default:
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}
}

func grabSupported() bool {
	switch runtime.GOOS {
	case "android", "ios", "js":
		return false
	}
	return true
}

// Session holds the hidden, grabbed cursor for the lifetime of the
// screensaver. Release restores it on every exit path.
type Session struct {
	cursor   Cursor
	released bool
}

// AcquireSession hides the cursor and tries to grab input. A failed grab is
// logged and otherwise ignored.
func AcquireSession(c Cursor) *Session {
	c.SetVisible(false)
	if err := c.SetGrabbed(true); err != nil {
		logf("cursor grab unavailable: %v", err)
	}
	return &Session{cursor: c}
}

// Release ungrabs and shows the cursor. Safe to call more than once; only
// the first call has an effect.
func (s *Session) Release() {
	if s == nil || s.released {
		return
	}
	s.released = true
	if err := s.cursor.SetGrabbed(false); err != nil {
		logf("cursor ungrab: %v", err)
	}
	s.cursor.SetVisible(true)
}

// Released reports whether Release has run.
func (s *Session) Released() bool {
	return s.released
}
