package blockfall

import (
	"io"
	"log"
	"os"
	"time"
)

var logger = log.New(os.Stderr, "[blockfall] ", log.LstdFlags)

// SetLogOutput redirects the package's diagnostic output. The default is
// stderr.
func SetLogOutput(w io.Writer) {
	logger.SetOutput(w)
}

func logf(format string, args ...any) {
	logger.Printf(format, args...)
}

// debugStats accumulates per-frame metrics between debug reports.
// Only populated when Config.Debug is true.
type debugStats struct {
	frames     int
	wraps      int
	updateTime time.Duration
	drawTime   time.Duration
	window     float64 // seconds of clock time covered so far
}

// debugInterval is how much clock time one report covers.
const debugInterval = 1.0

// record folds one frame into the stats and reports whether a report is due.
func (d *debugStats) record(dt float64, update time.Duration, wraps int) bool {
	d.frames++
	d.wraps += wraps
	d.updateTime += update
	d.window += dt
	return d.window >= debugInterval
}

// debugLog prints the accumulated stats and resets them.
func (s *Screensaver) debugLog() {
	d := &s.stats
	if !s.cfg.Debug || d.frames == 0 {
		return
	}
	n := time.Duration(d.frames)
	logf("frames: %d | particles: %d | spawned: %d | cloud wraps: %d | update: %v/frame | draw: %v/frame",
		d.frames, s.particles.Len(), s.particles.Spawned(), d.wraps, d.updateTime/n, d.drawTime/n)
	*d = debugStats{}
}
