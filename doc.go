// Package blockfall is a full-screen decorative screensaver for
// [Ebitengine]: a bobbing pixel-art grass block, falling colored blocks and
// drifting translucent clouds over a night sky. Any key press, mouse click,
// mouse motion or window close ends it.
//
// # Quick start
//
//	s, err := blockfall.New(blockfall.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := blockfall.Run(s); err != nil {
//		log.Fatal(err)
//	}
//
// [Run] hides and grabs the cursor, runs the loop fullscreen and restores
// the cursor on every exit path.
//
// # Frame loop
//
// Each tick runs, in order: the [FrameClock], the [ExitMonitor] fed by an
// [InputSource], the [ParticleSystem], the [CloudField], and finally the
// [Renderer] from Draw. Nothing runs concurrently.
//
// # Testing
//
// [ScriptedInput] replaces live input with queued frames, and
// [LoadTestScript] sequences those frames (plus screenshots) from JSON:
//
//	runner, _ := blockfall.LoadTestScript([]byte(`{"steps": [
//		{"action": "wait", "frames": 30},
//		{"action": "screenshot", "label": "idle"},
//		{"action": "key"}
//	]}`))
//	s.SetTestRunner(runner)
//
// # Events
//
// An [EventSink] receives exit and cloud-wrap events. The ecs subpackage
// bridges them into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package blockfall
