// Blockfall runs the grass block screensaver fullscreen. Any key, click,
// mouse motion or window close exits.
package main

import (
	"log"

	"github.com/phanxgames/blockfall"
	"github.com/phanxgames/blockfall/ecs"

	"github.com/yohamta/donburi"
)

func main() {
	s, err := blockfall.New(blockfall.DefaultConfig())
	if err != nil {
		log.Fatal(err)
	}

	world := donburi.NewWorld()
	s.SetEventSink(ecs.NewDonburiSink(world))
	summary := ecs.Track(world)

	err = blockfall.Run(s)
	ecs.ScreensaverEventType.ProcessEvents(world)

	if summary.Exited {
		log.Printf("exit: %s after %.1fs (%d frames, %d cloud wraps)",
			summary.Exit.Trigger, summary.Exit.Elapsed, summary.Exit.Frame, summary.CloudWraps)
	}
	if err != nil {
		log.Fatal(err)
	}
}
