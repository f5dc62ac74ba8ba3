// Command termtheme prints "dark" or "light" for the controlling
// terminal's color scheme.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-termtheme/termtheme"
	"github.com/go-termtheme/termtheme/internal/cliconfig"
	"github.com/go-termtheme/termtheme/internal/debuglog"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	cfg, err := cliconfig.Load(scanConfigFlag(args))
	if err != nil {
		fmt.Fprintf(stderr, "termtheme: could not load config: %v\n", err)
		cfg = cliconfig.Default()
	}

	fs := flag.NewFlagSet("termtheme", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		noNewline  bool
		force      bool
		timeout    time.Duration
		debugLog   string
		configPath string
	)
	fs.BoolVar(&noNewline, "n", false, "suppress the trailing newline")
	fs.BoolVar(&force, "force", cfg.Force, "bypass the \"stdout is a TTY\" precondition")
	fs.BoolVar(&force, "f", cfg.Force, "shorthand for --force")
	fs.DurationVar(&timeout, "timeout", cfg.Timeout, "how long to wait for the terminal to reply")
	fs.StringVar(&debugLog, "debug-log", cfg.DebugLog, "path to a debug log file")
	// Registered so --config appears in -h output and doesn't error as
	// unrecognized; the value itself is read by scanConfigFlag before the
	// rest of the flags get their config-derived defaults.
	fs.StringVar(&configPath, "config", "", "path to a YAML config file overriding the built-in defaults")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [OPTIONS]\n\n", fs.Name())
		fmt.Fprintf(stderr, "Print \"dark\" or \"light\" for the terminal's color scheme.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if debugLog != "" {
		if err := debuglog.SetFile(debugLog); err != nil {
			fmt.Fprintf(stderr, "termtheme: could not open debug log: %v\n", err)
		}
	}
	defer debuglog.Close()

	mode, err := termtheme.ColorScheme(termtheme.QueryOptions{
		Timeout:          timeout,
		RequireStdoutTTY: !force,
	})
	if err != nil {
		debuglog.Printf("color scheme query failed: %v", err)
		fmt.Fprintln(stderr, err)
		return 1
	}

	if noNewline {
		fmt.Fprint(stdout, mode.String())
	} else {
		fmt.Fprintln(stdout, mode.String())
	}
	return 0
}

// scanConfigFlag looks for --config/-config ahead of the main flag
// parse, so its value can seed the other flags' defaults from file
// before those flags are declared.
func scanConfigFlag(args []string) string {
	for i, a := range args {
		switch {
		case a == "--config" || a == "-config":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(a, "--config="):
			return strings.TrimPrefix(a, "--config=")
		case strings.HasPrefix(a, "-config="):
			return strings.TrimPrefix(a, "-config=")
		}
	}
	return ""
}
