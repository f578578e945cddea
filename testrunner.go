package blockfall

import (
	"encoding/json"
	"fmt"
)

// testStep is one action in a test script.
type testStep struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
	X      int    `json:"x,omitempty"`
	Y      int    `json:"y,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

type testScript struct {
	CursorX int        `json:"cursorX"`
	CursorY int        `json:"cursorY"`
	Steps   []testStep `json:"steps"`
}

// TestRunner sequences synthetic input and screenshots across frames for
// automated runs. Attach it with Screensaver.SetTestRunner; it replaces the
// screensaver's input source with its own ScriptedInput.
type TestRunner struct {
	input     *ScriptedInput
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script. Supported actions are wait
// (frames), key, click, move (x, y), close and screenshot (label).
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "wait", "key", "click", "move", "close", "screenshot":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{
		input: NewScriptedInput(script.CursorX, script.CursorY),
		steps: script.Steps,
	}, nil
}

// Input returns the runner's scripted input source.
func (r *TestRunner) Input() *ScriptedInput {
	return r.input
}

// Done reports whether every step has been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Screensaver.Update
// before input is polled.
func (r *TestRunner) step(s *Screensaver) {
	if r.done {
		return
	}
	// Let queued frames drain before advancing.
	if r.input.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		s.Screenshot(st.Label)
	case "key":
		r.input.QueueKey()
	case "click":
		r.input.QueueClick()
	case "move":
		r.input.QueueMove(st.X, st.Y)
	case "close":
		r.input.QueueClose()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && r.input.Pending() == 0 {
		r.done = true
	}
}
