// Package cmd implements the patterns CLI commands.
//
// The command structure follows standard Go CLI patterns: a root dispatcher
// plus self-registering subcommands (list, run). Diagnostics go to stderr
// through zerolog; demo narration goes to stdout untouched.
package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// log is the CLI-wide diagnostic logger. Narration never goes through it.
var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	Level(zerolog.InfoLevel).
	With().Timestamp().Logger()

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(args []string) error
}

var rootCmd = &Command{
	Name:  "patterns",
	Short: "patterns - classic design patterns, one runnable demo at a time",
	Long: `patterns replays the classic design-pattern demonstrations bundled in
this module: creational, behavioral and structural, fifteen in all.

Use "patterns <command> --help" for more information about a command.`,
	Usage: "patterns <command> [flags]",
}

// commands indexes registered subcommands; ordered keeps listing stable.
var (
	commands = make(map[string]*Command)
	ordered  []*Command
)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	ordered = append(ordered, cmd)
}

// Execute runs the CLI with the given arguments.
func Execute(args []string) error {
	// Global flags first; --verbose may appear anywhere.
	var filtered []string
	for _, arg := range args {
		switch arg {
		case "-h", "--help", "help":
			if len(filtered) == 0 {
				printHelp(rootCmd)

				return nil
			}
			filtered = append(filtered, arg)
		case "-v", "--version", "version":
			if len(filtered) == 0 {
				fmt.Printf("patterns version %s (built %s)\n", Version, BuildTime)

				return nil
			}
			filtered = append(filtered, arg)
		case "--verbose":
			log = log.Level(zerolog.DebugLevel)
		default:
			filtered = append(filtered, arg)
		}
	}

	if len(filtered) == 0 {
		printHelp(rootCmd)

		return nil
	}

	name := filtered[0]
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", name)
		printHelp(rootCmd)

		return fmt.Errorf("unknown command: %s", name)
	}

	cmdArgs := filtered[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" {
			printCommandHelp(cmd)

			return nil
		}
	}

	if err := cmd.Run(cmdArgs); err != nil {
		log.Error().Err(err).Str("command", name).Msg("command failed")

		return err
	}

	return nil
}

func printHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
	fmt.Println()
	fmt.Println("Commands:")
	for _, sub := range ordered {
		fmt.Printf("  %-8s %s\n", sub.Name, sub.Short)
	}
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -h, --help     Show help for a command")
	fmt.Println("  -v, --version  Show version information")
	fmt.Println("  --verbose      Enable debug diagnostics on stderr")
}

func printCommandHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
}
