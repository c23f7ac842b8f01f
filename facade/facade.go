// SPDX-License-Identifier: MIT
// Package: gopatterns/facade
//
// facade.go — the home-theater subsystems and their facade.

package facade

import (
	"fmt"
	"io"
	"os"
)

// DVDPlayer is a subsystem: it spins discs.
type DVDPlayer struct {
	w io.Writer
}

// NewDVDPlayer returns a DVDPlayer narrating to w.
// A nil w falls back to os.Stdout.
func NewDVDPlayer(w io.Writer) *DVDPlayer {
	return &DVDPlayer{w: orStdout(w)}
}

// On writes "DVD Player is ON.".
func (d *DVDPlayer) On() { fmt.Fprintln(d.w, "DVD Player is ON.") }

// Play writes "Playing movie: <movie>".
func (d *DVDPlayer) Play(movie string) { fmt.Fprintf(d.w, "Playing movie: %s\n", movie) }

// Off writes "DVD Player is OFF.".
func (d *DVDPlayer) Off() { fmt.Fprintln(d.w, "DVD Player is OFF.") }

// SoundSystem is a subsystem: it makes noise at a chosen level.
type SoundSystem struct {
	w io.Writer
}

// NewSoundSystem returns a SoundSystem narrating to w.
// A nil w falls back to os.Stdout.
func NewSoundSystem(w io.Writer) *SoundSystem {
	return &SoundSystem{w: orStdout(w)}
}

// On writes "Sound System is ON.".
func (s *SoundSystem) On() { fmt.Fprintln(s.w, "Sound System is ON.") }

// SetVolume writes "Setting volume to <level>.".
func (s *SoundSystem) SetVolume(level int) { fmt.Fprintf(s.w, "Setting volume to %d.\n", level) }

// Off writes "Sound System is OFF.".
func (s *SoundSystem) Off() { fmt.Fprintln(s.w, "Sound System is OFF.") }

// Projector is a subsystem: it throws the picture on the wall.
type Projector struct {
	w io.Writer
}

// NewProjector returns a Projector narrating to w.
// A nil w falls back to os.Stdout.
func NewProjector(w io.Writer) *Projector {
	return &Projector{w: orStdout(w)}
}

// On writes "Projector is ON.".
func (p *Projector) On() { fmt.Fprintln(p.w, "Projector is ON.") }

// SetInput writes "Setting projector input to <source>.".
func (p *Projector) SetInput(source string) {
	fmt.Fprintf(p.w, "Setting projector input to %s.\n", source)
}

// Off writes "Projector is OFF.".
func (p *Projector) Off() { fmt.Fprintln(p.w, "Projector is OFF.") }

// movieVolume is the level WatchMovie always dials in.
const movieVolume = 20

// HomeTheater is the facade: one call runs the whole choreography.
type HomeTheater struct {
	dvd       *DVDPlayer
	sound     *SoundSystem
	projector *Projector
	w         io.Writer
}

// NewHomeTheater wires the facade over the given subsystems, narrating its
// own framing lines to w. A nil w falls back to os.Stdout.
func NewHomeTheater(dvd *DVDPlayer, sound *SoundSystem, projector *Projector, w io.Writer) *HomeTheater {
	return &HomeTheater{dvd: dvd, sound: sound, projector: projector, w: orStdout(w)}
}

// WatchMovie powers up projector, sound and DVD in the fixed order and
// starts the movie.
func (h *HomeTheater) WatchMovie(movie string) {
	fmt.Fprintf(h.w, "Preparing to watch movie: %s\n", movie)
	h.projector.On()
	h.projector.SetInput("DVD")
	h.sound.On()
	h.sound.SetVolume(movieVolume)
	h.dvd.On()
	h.dvd.Play(movie)
	fmt.Fprintln(h.w, "Enjoy your movie!")
}

// EndMovie powers everything down, DVD first, projector last.
func (h *HomeTheater) EndMovie() {
	fmt.Fprintln(h.w, "Shutting down the home theater.")
	h.dvd.Off()
	h.sound.Off()
	h.projector.Off()
}

func orStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}

	return w
}
