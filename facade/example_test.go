package facade_test

import (
	"os"

	"github.com/katalvlaran/gopatterns/facade"
)

// ExampleHomeTheater runs a full movie night through two facade calls.
func ExampleHomeTheater() {
	dvd := facade.NewDVDPlayer(os.Stdout)
	sound := facade.NewSoundSystem(os.Stdout)
	projector := facade.NewProjector(os.Stdout)

	homeTheater := facade.NewHomeTheater(dvd, sound, projector, os.Stdout)

	homeTheater.WatchMovie("Inception")
	homeTheater.EndMovie()

	// Output:
	// Preparing to watch movie: Inception
	// Projector is ON.
	// Setting projector input to DVD.
	// Sound System is ON.
	// Setting volume to 20.
	// DVD Player is ON.
	// Playing movie: Inception
	// Enjoy your movie!
	// Shutting down the home theater.
	// DVD Player is OFF.
	// Sound System is OFF.
	// Projector is OFF.
}
