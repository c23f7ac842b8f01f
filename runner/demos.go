// SPDX-License-Identifier: MIT
// Package: gopatterns/runner
//
// demos.go — the canonical driver sequence for every pattern package.
// Each driver replays the pattern's original teaching scenario; the line
// sequences here are the module's golden transcripts.

package runner

import (
	"fmt"
	"io"

	"github.com/katalvlaran/gopatterns/adapter"
	"github.com/katalvlaran/gopatterns/bridge"
	"github.com/katalvlaran/gopatterns/builder"
	"github.com/katalvlaran/gopatterns/command"
	"github.com/katalvlaran/gopatterns/composite"
	"github.com/katalvlaran/gopatterns/decorator"
	"github.com/katalvlaran/gopatterns/delegate"
	"github.com/katalvlaran/gopatterns/facade"
	"github.com/katalvlaran/gopatterns/factory"
	"github.com/katalvlaran/gopatterns/observer"
	"github.com/katalvlaran/gopatterns/prototype"
	"github.com/katalvlaran/gopatterns/proxy"
	"github.com/katalvlaran/gopatterns/singleton"
	"github.com/katalvlaran/gopatterns/strategy"
	"github.com/katalvlaran/gopatterns/visitor"
)

// catalog lists every demo in the original teaching order:
// creational, then behavioral, then structural.
var catalog = []Demo{
	{Name: "prototype", Category: Creational, Summary: "clone configured shape exemplars", Run: runPrototype},
	{Name: "factory", Category: Creational, Summary: "map selectors to car variants", Run: runFactory},
	{Name: "singleton", Category: Creational, Summary: "one lazily-constructed instance per slot", Run: runSingleton},
	{Name: "builder", Category: Creational, Summary: "fixed recipe, interchangeable pizza builders", Run: runBuilder},
	{Name: "strategy", Category: Behavioral, Summary: "swap routing algorithms at runtime", Run: runStrategy},
	{Name: "command", Category: Behavioral, Summary: "undoable light switch requests", Run: runCommand},
	{Name: "observer", Category: Behavioral, Summary: "news fan-out to subscribers", Run: runObserver},
	{Name: "visitor", Category: Behavioral, Summary: "new zoo operations without touching animals", Run: runVisitor},
	{Name: "composite", Category: Structural, Summary: "org-chart tree behind one capability", Run: runComposite},
	{Name: "bridge", Category: Structural, Summary: "remotes and TVs varying independently", Run: runBridge},
	{Name: "adapter", Category: Structural, Summary: "vendor player behind the client interface", Run: runAdapter},
	{Name: "delegate", Category: Structural, Summary: "printer handing work to helpers", Run: runDelegate},
	{Name: "proxy", Category: Structural, Summary: "lazy image loading behind a stand-in", Run: runProxy},
	{Name: "facade", Category: Structural, Summary: "movie night in two calls", Run: runFacade},
	{Name: "decorator", Category: Structural, Summary: "coffee add-ons layered at runtime", Run: runDecorator},
}

func runPrototype(w io.Writer) {
	circlePrototype := prototype.NewCircle(10)
	rectanglePrototype := prototype.NewRectangle(5, 8)

	circlePrototype.Clone().Draw(w)
	rectanglePrototype.Clone().Draw(w)
}

func runFactory(w io.Writer) {
	sedan, _ := factory.New("Sedan")
	suv, _ := factory.New("SUV")

	sedan.Drive(w)
	suv.Drive(w)
}

func runSingleton(w io.Writer) {
	slot := singleton.NewLazy(w)

	s1 := slot.Instance()
	s1.DisplayMessage()

	if s2 := slot.Instance(); s1 == s2 {
		fmt.Fprintln(w, "Both instances are the same.")
	}

	singleton.NewMutexLazy(w).Instance().DisplayMessage()
}

func runBuilder(w io.Writer) {
	var director builder.Director

	director.Construct(builder.NewVeggieBuilder()).Show(w)
	director.Construct(builder.NewMeatLoversBuilder()).Show(w)
}

func runStrategy(w io.Writer) {
	navigator := strategy.NewNavigator(w)

	navigator.SetStrategy(strategy.ShortestRoute{})
	navigator.Navigate()
	navigator.SetStrategy(strategy.FastestRoute{})
	navigator.Navigate()
	navigator.SetStrategy(strategy.ScenicRoute{})
	navigator.Navigate()
}

func runCommand(w io.Writer) {
	light := command.NewLight(w)
	remote := command.NewRemote(w)

	remote.SetCommand(command.NewLightOn(light))
	remote.PressButton()
	remote.PressUndo()

	remote.SetCommand(command.NewLightOff(light))
	remote.PressButton()
	remote.PressUndo()
}

func runObserver(w io.Writer) {
	agency := observer.NewAgency()

	alice := observer.NewSubscriber("Alice", w)
	bob := observer.NewSubscriber("Bob", w)

	agency.Attach(alice)
	agency.Attach(bob)
	agency.SetNews("Breaking News: Observer Pattern Implemented!")

	agency.Detach(bob)
	agency.SetNews("Update: Observer Pattern is Awesome!")
}

func runVisitor(w io.Writer) {
	zoo := []visitor.Animal{
		&visitor.Lion{},
		&visitor.Penguin{},
		&visitor.Elephant{},
	}

	feeding := visitor.NewFeeding(w)
	for _, animal := range zoo {
		animal.Accept(feeding)
	}

	healthCheck := visitor.NewHealthCheck(w)
	for _, animal := range zoo {
		animal.Accept(healthCheck)
	}
}

func runComposite(w io.Writer) {
	teamLead := composite.NewManager("Team Lead")
	teamLead.Add(
		composite.NewDeveloper("Alice", "Frontend Developer"),
		composite.NewDeveloper("Bob", "Backend Developer"),
		composite.NewDesigner("Charlie", "UX Designer"),
	)

	generalManager := composite.NewManager("General Manager")
	generalManager.Add(teamLead)

	generalManager.ShowDetails(w)
}

func runBridge(w io.Writer) {
	basicRemote := bridge.NewRemote(bridge.NewSony(w))
	basicRemote.TurnOn()
	basicRemote.SetChannel(5)
	basicRemote.TurnOff()

	advancedRemote := bridge.NewAdvancedRemote(bridge.NewSamsung(w), w)
	advancedRemote.TurnOn()
	advancedRemote.SetFavoriteChannel()
	advancedRemote.TurnOff()
}

func runAdapter(w io.Writer) {
	player := adapter.NewAudioPlayer(w)

	player.Play("mp3", "song.mp3")
	player.Play("mp4", "movie.mp4")
	player.Play("vlc", "video.vlc")
	player.Play("avi", "clip.avi")
}

func runDelegate(w io.Writer) {
	printer := delegate.NewPrinter(w)

	printer.SetPrintStrategy(delegate.NewConsolePrint(w))
	printer.Print("Hello, Console!")

	printer.SetPrintStrategy(delegate.NewFilePrint(w))
	printer.Print("Hello, File!")
}

func runProxy(w io.Writer) {
	proxyImage := proxy.NewImageProxy("test_image.jpg", w)

	fmt.Fprintln(w, "Image is not yet loaded.")
	proxyImage.Display()
	proxyImage.Display()
}

func runFacade(w io.Writer) {
	homeTheater := facade.NewHomeTheater(
		facade.NewDVDPlayer(w),
		facade.NewSoundSystem(w),
		facade.NewProjector(w),
		w,
	)

	homeTheater.WatchMovie("Inception")
	homeTheater.EndMovie()
}

func runDecorator(w io.Writer) {
	myCoffee := decorator.Coffee(decorator.NewPlainCoffee())
	fmt.Fprintf(w, "%s costs $%.2f\n", myCoffee.Description(), myCoffee.Cost())

	for _, wrap := range []func(decorator.Coffee) decorator.Coffee{
		decorator.WithMilk,
		decorator.WithSugar,
		decorator.WithCaramel,
	} {
		myCoffee = wrap(myCoffee)
		fmt.Fprintf(w, "%s costs $%.2f\n", myCoffee.Description(), myCoffee.Cost())
	}
}
