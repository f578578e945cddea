package blockfall

import (
	"strings"
	"testing"
	"time"
)

func TestDebugStatsRecord(t *testing.T) {
	var d debugStats
	for i := 0; i < 59; i++ {
		if d.record(1.0/60, time.Millisecond, 0) {
			t.Fatalf("report due after %d frames", i+1)
		}
	}
	d.record(1.0/60, time.Millisecond, 2)
	if !d.record(1.0/60, time.Millisecond, 1) {
		t.Error("report not due after a second of frames")
	}
	if d.frames != 61 || d.wraps != 3 {
		t.Errorf("frames %d wraps %d, want 61 and 3", d.frames, d.wraps)
	}
	if d.updateTime != 61*time.Millisecond {
		t.Errorf("updateTime = %v", d.updateTime)
	}
}

func TestDebugLogReports(t *testing.T) {
	buf := captureLog(t)

	cfg := DefaultConfig()
	cfg.Debug = true
	s, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	s.SetRand(newTestRand())
	s.SetInput(NewScriptedInput(0, 0))
	s.Layout(800, 600)

	for i := 0; i < 2*FPS; i++ {
		if err := s.Update(); err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
	}
	out := buf.String()
	if !strings.Contains(out, "[blockfall] ") {
		t.Errorf("missing log prefix: %q", out)
	}
	if !strings.Contains(out, "frames:") || !strings.Contains(out, "particles:") {
		t.Errorf("missing debug report: %q", out)
	}
}

func TestDebugLogSilentByDefault(t *testing.T) {
	buf := captureLog(t)

	s, err := New(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	s.SetInput(NewScriptedInput(0, 0))
	s.Layout(800, 600)
	for i := 0; i < 2*FPS; i++ {
		s.Update()
	}
	if strings.Contains(buf.String(), "frames:") {
		t.Errorf("debug report without Config.Debug: %q", buf.String())
	}
}
