// Package ecs provides ECS adapters for blockfall's event stream.
//
// [NewDonburiSink] bridges screensaver events (exit, cloud wrap) into a
// [Donburi] world as typed events. Subscribe to [ScreensaverEventType] in
// your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	saver.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
