// Command citymap runs scenario files, times queries on random maps and
// serves the HTTP API.
package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/juju/clock"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"

	"github.com/katalvlaran/citymap/astar"
	"github.com/katalvlaran/citymap/builder"
	"github.com/katalvlaran/citymap/core"
	"github.com/katalvlaran/citymap/dijkstra"
	"github.com/katalvlaran/citymap/internal/cli"
	"github.com/katalvlaran/citymap/internal/logging"
	"github.com/katalvlaran/citymap/internal/scenario"
	"github.com/katalvlaran/citymap/internal/server"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args and dispatches to the selected command. Informational
// output goes to outW; diagnostics and logs go to errW.
func run(outW, errW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat, errW)
	switch cfg.Command {
	case cli.CommandRun:
		return runScenario(outW, errW, cfg, logger)
	case cli.CommandBench:
		return runBench(outW, cfg, logger, clock.WallClock)
	default:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg, logger)
	}
}

func runScenario(outW, errW io.Writer, cfg *cli.Config, logger *logrus.Entry) error {
	s, err := scenario.ParseFile(cfg.ScenarioPath)
	if err != nil {
		return err
	}

	r, err := scenario.NewRunner(scenario.Config{
		Out:    outW,
		Err:    errW,
		Policy: cfg.Policy,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	rep, err := r.Run(s)
	if err != nil {
		return xerrors.Errorf("%d of %d steps failed: %w", rep.Failed, rep.Steps, err)
	}

	return nil
}

// runBench builds a random map and times path queries between random pairs.
// The first query always runs between the first and the last city.
func runBench(outW io.Writer, cfg *cli.Config, logger *logrus.Entry, clk clock.Clock) error {
	start := clk.Now()
	m, err := builder.BuildMap(nil,
		[]builder.BuilderOption{builder.WithSeed(cfg.Seed)},
		builder.RandomMap(cfg.Cities, cfg.MaxRoads))
	if err != nil {
		return err
	}
	buildTime := clk.Now().Sub(start)

	rng := rand.New(rand.NewSource(cfg.Seed))
	first, last := builder.CityIDFn(0), builder.CityIDFn(cfg.Cities-1)

	var expanded int
	var total float64
	start = clk.Now()
	for q := 0; q < cfg.Queries; q++ {
		from, to := first, last
		if q > 0 {
			from, to = builder.CityIDFn(rng.Intn(cfg.Cities)), builder.CityIDFn(rng.Intn(cfg.Cities))
		}
		res, err := astar.FindPath(m, from, to, astar.WithPolicy(cfg.Policy))
		if err != nil {
			return err
		}
		if q == 0 {
			fmt.Fprintf(outW, "From %s to %s: %.6g\n", from, to, res.Length)
		}
		if cfg.Verify {
			if err := verify(m, from, to, res.Length); err != nil {
				return err
			}
		}
		expanded += res.Expanded
		total += res.Length
	}
	queryTime := clk.Now().Sub(start)

	st := m.Stats()
	fmt.Fprintf(outW, "cities=%d roads=%d queries=%d mean_expanded=%.1f mean_length=%.6g\n",
		st.CityCount, st.RoadCount, cfg.Queries,
		float64(expanded)/float64(cfg.Queries), total/float64(cfg.Queries))

	logger.WithFields(logrus.Fields{
		"cities":     st.CityCount,
		"roads":      st.RoadCount,
		"queries":    cfg.Queries,
		"policy":     cfg.Policy.String(),
		"build_time": buildTime.String(),
		"query_time": queryTime.String(),
	}).Info("benchmark completed")

	return nil
}

// verify recomputes the distance with Dijkstra. Only PolicyRelax is
// guaranteed to agree.
func verify(m *core.Map, from, to string, got float64) error {
	dist, _, err := dijkstra.Dijkstra(m, dijkstra.Source(from))
	if err != nil {
		return err
	}
	if want := dist[to]; math.Abs(want-got) > 1e-9*math.Max(1, want) {
		return xerrors.Errorf("bench: %s to %s: A* length %v, Dijkstra length %v", from, to, got, want)
	}

	return nil
}

func serve(ctx context.Context, cfg *cli.Config, logger *logrus.Entry) error {
	svc, err := server.NewService(server.Config{
		ListenAddr: cfg.Addr,
		Policy:     cfg.Policy,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	return svc.Run(ctx)
}
