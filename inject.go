package blockfall

// ScriptedInput is an InputSource fed from a queue of synthetic frames. Each
// Snapshot consumes one queued frame; with an empty queue it reports an idle
// frame at the last cursor position. Tests and TestRunner drive the exit
// state machine through it exactly as real input would.
type ScriptedInput struct {
	queue   []InputSnapshot
	cursorX int
	cursorY int
}

// NewScriptedInput creates an idle source with the cursor resting at (x, y).
func NewScriptedInput(x, y int) *ScriptedInput {
	return &ScriptedInput{cursorX: x, cursorY: y}
}

// Pending returns the number of queued frames not yet consumed.
func (in *ScriptedInput) Pending() int {
	return len(in.queue)
}

// QueueIdle queues n frames with no input and the cursor at rest.
func (in *ScriptedInput) QueueIdle(n int) {
	for i := 0; i < n; i++ {
		in.push(InputSnapshot{})
	}
}

// QueueKey queues a frame in which a key goes down.
func (in *ScriptedInput) QueueKey() {
	in.push(InputSnapshot{KeyPressed: true})
}

// QueueClick queues a frame in which a mouse button goes down at the
// current cursor position.
func (in *ScriptedInput) QueueClick() {
	in.push(InputSnapshot{ButtonPressed: true})
}

// QueueClose queues a window close request.
func (in *ScriptedInput) QueueClose() {
	in.push(InputSnapshot{CloseRequested: true})
}

// QueueMove queues a frame in which the cursor moves to (x, y). The cursor
// stays there for later frames.
func (in *ScriptedInput) QueueMove(x, y int) {
	in.cursorX, in.cursorY = x, y
	in.queue = append(in.queue, InputSnapshot{CursorX: x, CursorY: y})
}

// push appends a frame at the cursor position current at queue time.
func (in *ScriptedInput) push(s InputSnapshot) {
	s.CursorX, s.CursorY = in.cursorX, in.cursorY
	in.queue = append(in.queue, s)
}

// Snapshot implements InputSource.
func (in *ScriptedInput) Snapshot() InputSnapshot {
	if len(in.queue) == 0 {
		return InputSnapshot{CursorX: in.cursorX, CursorY: in.cursorY}
	}
	s := in.queue[0]
	copy(in.queue, in.queue[1:])
	in.queue = in.queue[:len(in.queue)-1]
	return s
}
