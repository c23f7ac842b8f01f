// SPDX-License-Identifier: MIT
// Package: gopatterns/adapter
//
// adapter.go — the MediaPlayer capability, the vendor API, and the adapter.

package adapter

import (
	"fmt"
	"io"
	"os"
)

// MediaPlayer is the capability client code programs against.
type MediaPlayer interface {
	// Play plays fileName interpreted as the given audio format.
	Play(audioType, fileName string)
}

// AdvancedMediaPlayer is the incompatible vendor API: one method per format,
// no generic entry point.
type AdvancedMediaPlayer struct {
	w io.Writer
}

// NewAdvancedPlayer returns the vendor player narrating to w.
// A nil w falls back to os.Stdout.
func NewAdvancedPlayer(w io.Writer) *AdvancedMediaPlayer {
	return &AdvancedMediaPlayer{w: orStdout(w)}
}

// PlayVLC writes "Playing VLC file: <name>".
func (p *AdvancedMediaPlayer) PlayVLC(fileName string) {
	fmt.Fprintf(p.w, "Playing VLC file: %s\n", fileName)
}

// PlayMP4 writes "Playing MP4 file: <name>".
func (p *AdvancedMediaPlayer) PlayMP4(fileName string) {
	fmt.Fprintf(p.w, "Playing MP4 file: %s\n", fileName)
}

// MediaAdapter bridges the MediaPlayer capability onto the vendor API by
// routing each format to the matching vendor method.
type MediaAdapter struct {
	advanced *AdvancedMediaPlayer
	w        io.Writer
}

// NewAdapter returns a MediaAdapter narrating to w.
// A nil w falls back to os.Stdout.
func NewAdapter(w io.Writer) *MediaAdapter {
	w = orStdout(w)

	return &MediaAdapter{advanced: NewAdvancedPlayer(w), w: w}
}

// Play routes "vlc" and "mp4" to the vendor methods; anything else gets the
// soft "Unsupported format" notice.
func (a *MediaAdapter) Play(audioType, fileName string) {
	switch audioType {
	case "vlc":
		a.advanced.PlayVLC(fileName)
	case "mp4":
		a.advanced.PlayMP4(fileName)
	default:
		fmt.Fprintf(a.w, "Unsupported format: %s\n", audioType)
	}
}

// AudioPlayer is the client-facing player: native mp3 support, adapter-backed
// vlc and mp4 support, and the soft failure path for everything else.
type AudioPlayer struct {
	w io.Writer
}

// NewAudioPlayer returns an AudioPlayer narrating to w.
// A nil w falls back to os.Stdout.
func NewAudioPlayer(w io.Writer) *AudioPlayer {
	return &AudioPlayer{w: orStdout(w)}
}

// Play plays mp3 files directly, delegates vlc and mp4 to a fresh adapter,
// and reports any other format as unsupported.
func (p *AudioPlayer) Play(audioType, fileName string) {
	switch audioType {
	case "mp3":
		fmt.Fprintf(p.w, "Playing MP3 file: %s\n", fileName)
	case "vlc", "mp4":
		NewAdapter(p.w).Play(audioType, fileName)
	default:
		fmt.Fprintf(p.w, "Unsupported format: %s\n", audioType)
	}
}

func orStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}

	return w
}
