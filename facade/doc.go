// Package facade implements the Facade structural pattern: one simple entry
// point orchestrating a set of fiddly subsystems.
//
// What:
//
//   - DVDPlayer, SoundSystem, Projector: the subsystems, each with its own
//     small API and narration.
//   - HomeTheater: the facade. WatchMovie and EndMovie run the full
//     power-up and power-down choreography so callers never touch the
//     subsystems directly.
//
// Why:
//   - Replace a brittle seven-call ritual with one intention-revealing call
//   - Keep subsystem APIs available for power users; the facade hides
//     nothing, it only simplifies
//
// The choreography is fixed: WatchMovie always runs projector, sound, then
// DVD in the same order, and EndMovie powers down in DVD, sound, projector
// order.
package facade
