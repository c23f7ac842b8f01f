package delegate_test

import (
	"os"

	"github.com/katalvlaran/gopatterns/delegate"
)

// ExamplePrinter swaps the printing delegate between two outputs.
func ExamplePrinter() {
	printer := delegate.NewPrinter(os.Stdout)

	consolePrinter := delegate.NewConsolePrint(os.Stdout)
	filePrinter := delegate.NewFilePrint(os.Stdout)

	printer.SetPrintStrategy(consolePrinter)
	printer.Print("Hello, Console!")

	printer.SetPrintStrategy(filePrinter)
	printer.Print("Hello, File!")

	// Output:
	// Printing to console: Hello, Console!
	// Saving to file: Hello, File!
}
