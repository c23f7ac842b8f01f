// SPDX-License-Identifier: MIT
// Package: gopatterns/bridge
//
// bridge.go — the TV implementors and the remote-control abstractions.

package bridge

import (
	"fmt"
	"io"
	"os"
)

// TV is the implementor capability the remotes drive.
type TV interface {
	// On powers the set on.
	On()
	// Off powers the set off.
	Off()
	// SetChannel tunes the set to the given channel.
	SetChannel(channel int)
}

// SonyTV is a concrete implementor.
type SonyTV struct {
	w io.Writer
}

// NewSony returns a SonyTV narrating to w. A nil w falls back to os.Stdout.
func NewSony(w io.Writer) *SonyTV {
	return &SonyTV{w: orStdout(w)}
}

// On writes "Sony TV is ON".
func (t *SonyTV) On() { fmt.Fprintln(t.w, "Sony TV is ON") }

// Off writes "Sony TV is OFF".
func (t *SonyTV) Off() { fmt.Fprintln(t.w, "Sony TV is OFF") }

// SetChannel writes "Sony TV set to channel <n>".
func (t *SonyTV) SetChannel(channel int) {
	fmt.Fprintf(t.w, "Sony TV set to channel %d\n", channel)
}

// SamsungTV is a concrete implementor.
type SamsungTV struct {
	w io.Writer
}

// NewSamsung returns a SamsungTV narrating to w. A nil w falls back to os.Stdout.
func NewSamsung(w io.Writer) *SamsungTV {
	return &SamsungTV{w: orStdout(w)}
}

// On writes "Samsung TV is ON".
func (t *SamsungTV) On() { fmt.Fprintln(t.w, "Samsung TV is ON") }

// Off writes "Samsung TV is OFF".
func (t *SamsungTV) Off() { fmt.Fprintln(t.w, "Samsung TV is OFF") }

// SetChannel writes "Samsung TV set to channel <n>".
func (t *SamsungTV) SetChannel(channel int) {
	fmt.Fprintf(t.w, "Samsung TV set to channel %d\n", channel)
}

// RemoteControl is the abstraction side of the bridge: every operation
// forwards to the TV it was constructed with.
type RemoteControl struct {
	tv TV
}

// NewRemote returns a RemoteControl bridged to tv.
func NewRemote(tv TV) *RemoteControl {
	return &RemoteControl{tv: tv}
}

// TurnOn powers the bridged TV on.
func (r *RemoteControl) TurnOn() { r.tv.On() }

// TurnOff powers the bridged TV off.
func (r *RemoteControl) TurnOff() { r.tv.Off() }

// SetChannel tunes the bridged TV.
func (r *RemoteControl) SetChannel(channel int) { r.tv.SetChannel(channel) }

// favoriteChannel is the preset AdvancedRemoteControl jumps to.
const favoriteChannel = 10

// AdvancedRemoteControl refines the abstraction with a one-touch favorite,
// still driving whatever TV sits behind the bridge.
type AdvancedRemoteControl struct {
	RemoteControl
	w io.Writer
}

// NewAdvancedRemote returns an AdvancedRemoteControl bridged to tv, narrating
// its own extras to w. A nil w falls back to os.Stdout.
func NewAdvancedRemote(tv TV, w io.Writer) *AdvancedRemoteControl {
	return &AdvancedRemoteControl{RemoteControl: RemoteControl{tv: tv}, w: orStdout(w)}
}

// SetFavoriteChannel announces the preset and tunes the bridged TV to it.
func (r *AdvancedRemoteControl) SetFavoriteChannel() {
	fmt.Fprintf(r.w, "Setting to favorite channel: %d\n", favoriteChannel)
	r.tv.SetChannel(favoriteChannel)
}

func orStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}

	return w
}
