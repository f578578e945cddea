package blockfall

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a capture of the next drawn frame. Files are named after
// the frame number and the label, e.g. frame000120-idle.png.
func (s *Screensaver) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, label)
}

// flushScreenshots encodes the drawn frame once and writes it under every
// queued label. Failures are logged; the animation keeps running.
func (s *Screensaver) flushScreenshots(screen *ebiten.Image) {
	if len(s.screenshotQueue) == 0 {
		return
	}
	labels := s.screenshotQueue
	s.screenshotQueue = s.screenshotQueue[:0]
	if s.cfg.ScreenshotDir == "" {
		return
	}

	// ReadPixels yields premultiplied RGBA, which is image.RGBA's layout.
	img := image.NewRGBA(screen.Bounds())
	screen.ReadPixels(img.Pix)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		logf("screenshot: encode frame %d: %v", s.clock.Frames(), err)
		return
	}

	if err := os.MkdirAll(s.cfg.ScreenshotDir, 0o755); err != nil {
		logf("screenshot: %v", err)
		return
	}
	for _, label := range labels {
		path := filepath.Join(s.cfg.ScreenshotDir, screenshotName(s.clock.Frames(), label))
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			logf("screenshot: %v", err)
		}
	}
}

// screenshotName returns the file name for a capture of frame.
func screenshotName(frame int, label string) string {
	if tag := labelTag(label); tag != "" {
		return fmt.Sprintf("frame%06d-%s.png", frame, tag)
	}
	return fmt.Sprintf("frame%06d.png", frame)
}

// labelTag lowercases label and collapses each run of characters outside
// [a-z0-9] into one '-'. Leading and trailing runs are dropped.
func labelTag(label string) string {
	var b strings.Builder
	gap := false
	for _, r := range strings.ToLower(label) {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			gap = true
			continue
		}
		if gap && b.Len() > 0 {
			b.WriteByte('-')
		}
		gap = false
		b.WriteRune(r)
	}
	return b.String()
}
