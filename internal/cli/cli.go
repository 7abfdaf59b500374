package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/citymap/astar"
	"github.com/katalvlaran/citymap/internal/logging"
)

// Sub-commands.
const (
	CommandRun   = "run"
	CommandBench = "bench"
	CommandServe = "serve"
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Config is the parsed command line.
type Config struct {
	Command   string
	LogLevel  string
	LogFormat string
	Policy    astar.Policy

	// run
	ScenarioPath string

	// bench
	Cities   int
	MaxRoads int
	Seed     int64
	Queries  int
	Verify   bool

	// serve
	Addr string
}

const usage = `
citymap - city road maps and A* shortest routes.

Usage:
  citymap run   [options] FILE.hcl   execute a scenario file
  citymap bench [options]            time queries on a random map
  citymap serve [options]            serve the HTTP API

Run "citymap <command> -h" for the options of a command.
`

// Parse processes command-line arguments. It returns the populated Config,
// true when the program should exit cleanly (help was requested), or an
// *ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	if len(args) == 0 || args[0] == "-h" || args[0] == "-help" || args[0] == "--help" {
		fmt.Fprint(output, usage)
		return nil, true, nil
	}

	cfg := &Config{Command: args[0]}
	flagSet := flag.NewFlagSet("citymap "+cfg.Command, flag.ContinueOnError)
	flagSet.SetOutput(output)

	logLevelFlag := flagSet.String("log-level", "info", "Logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", logging.FormatText, "Log output format. Options: 'text' or 'json'.")
	policyFlag := flagSet.String("policy", astar.PolicyRelax.String(), "Default relaxation policy. Options: 'relax' or 'first-opened'.")

	switch cfg.Command {
	case CommandRun:
		flagSet.Usage = func() {
			fmt.Fprint(output, "\nUsage:\n  citymap run [options] FILE.hcl\n\nOptions:\n")
			flagSet.PrintDefaults()
		}
	case CommandBench:
		flagSet.IntVar(&cfg.Cities, "cities", 1000, "Number of cities on the random map.")
		flagSet.IntVar(&cfg.MaxRoads, "roads", 3, "Upper bound (exclusive) on extra roads drawn per city.")
		flagSet.Int64Var(&cfg.Seed, "seed", 1, "Random seed.")
		flagSet.IntVar(&cfg.Queries, "queries", 100, "Number of path queries to time.")
		flagSet.BoolVar(&cfg.Verify, "verify", false, "Check every query length against Dijkstra.")
	case CommandServe:
		flagSet.StringVar(&cfg.Addr, "addr", ":8080", "Address to listen on.")
	default:
		fmt.Fprint(output, usage)
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unknown command %q", cfg.Command)}
	}

	if err := flagSet.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	cfg.LogFormat = strings.ToLower(*logFormatFlag)
	if cfg.LogFormat != logging.FormatText && cfg.LogFormat != logging.FormatJSON {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	cfg.LogLevel = strings.ToLower(*logLevelFlag)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	p, err := astar.ParsePolicy(*policyFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: "invalid policy: must be 'relax' or 'first-opened'"}
	}
	cfg.Policy = p

	switch cfg.Command {
	case CommandRun:
		if flagSet.NArg() != 1 {
			flagSet.Usage()
			return nil, false, &ExitError{Code: 2, Message: "run expects exactly one scenario file"}
		}
		cfg.ScenarioPath = flagSet.Arg(0)
	case CommandBench:
		if cfg.Cities < 2 || cfg.MaxRoads < 1 || cfg.Queries < 1 {
			return nil, false, &ExitError{Code: 2, Message: "bench needs cities >= 2, roads >= 1 and queries >= 1"}
		}
	case CommandServe:
		if cfg.Addr == "" {
			return nil, false, &ExitError{Code: 2, Message: "serve needs a listen address"}
		}
	}

	return cfg, false, nil
}
