package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/katalvlaran/gopatterns/cmd/patterns/internal/config"
	"github.com/katalvlaran/gopatterns/runner"
)

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Replay one or more demos",
		Long: `Replay pattern demonstrations by name, or the whole catalog with --all.

With --parallel the demos render concurrently; the printed output is still
in catalog order, so transcripts stay deterministic. A patterns.yaml next to
the working directory (or the file named by --config) can preselect demos
and flags for a bare "patterns run".`,
		Usage: "patterns run [--all] [--parallel] [--no-headers] [--config FILE] [name...]",
		Run:   runRun,
	})
}

// runFlags is the parsed flag set of the run command.
type runFlags struct {
	all        bool
	parallel   bool
	noHeaders  bool
	configPath string
	names      []string
}

func parseRunFlags(args []string) (runFlags, error) {
	f := runFlags{configPath: "patterns.yaml"}
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "--all":
			f.all = true
		case "--parallel":
			f.parallel = true
		case "--no-headers":
			f.noHeaders = true
		case "--config":
			if i+1 >= len(args) {
				return f, fmt.Errorf("--config requires a file path")
			}
			f.configPath = args[i+1]
			i++
		default:
			f.names = append(f.names, arg)
		}
	}

	return f, nil
}

func runRun(args []string) error {
	f, err := parseRunFlags(args)
	if err != nil {
		return err
	}

	// Explicit names take priority; then the config file; then the catalog.
	if len(f.names) == 0 && !f.all {
		cfg, err := config.LoadOptional(f.configPath)
		if err != nil {
			return err
		}
		f.names = cfg.Demos
		f.parallel = f.parallel || cfg.Parallel
		f.noHeaders = f.noHeaders || cfg.NoHeaders
	}

	return replay(os.Stdout, f)
}

// replay resolves the selection and writes the transcripts to w.
func replay(w io.Writer, f runFlags) error {
	started := time.Now()

	if len(f.names) == 0 {
		opts := []runner.Option{}
		if f.parallel {
			opts = append(opts, runner.WithParallel())
		}
		if f.noHeaders {
			opts = append(opts, runner.WithoutHeaders())
		}
		if err := runner.RunAll(w, opts...); err != nil {
			return err
		}
		log.Debug().Int("demos", len(runner.All())).Dur("took", time.Since(started)).Msg("catalog replayed")

		return nil
	}

	// Validate the whole selection before narrating anything.
	demos := make([]runner.Demo, 0, len(f.names))
	for _, name := range f.names {
		d, err := runner.Lookup(name)
		if err != nil {
			return err
		}
		demos = append(demos, d)
	}

	for _, d := range demos {
		if !f.noHeaders {
			fmt.Fprintf(w, "=== %s ===\n", d.Name)
		}
		d.Run(w)
	}
	log.Debug().Int("demos", len(demos)).Dur("took", time.Since(started)).Msg("selection replayed")

	return nil
}
