// Command patterns is the CLI front end over the gopatterns demo catalog.
//
// Usage:
//
//	patterns list
//	patterns run <name>...
//	patterns run --all [--parallel]
package main

import (
	"os"

	"github.com/katalvlaran/gopatterns/cmd/patterns/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
