package scenario

import (
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/juju/clock"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"

	"github.com/katalvlaran/citymap/astar"
	"github.com/katalvlaran/citymap/core"
	"github.com/katalvlaran/citymap/internal/logging"
)

// ErrExpectation is wrapped by every step whose outcome differs from the
// expectation written in the scenario.
var ErrExpectation = errors.New("scenario: expectation failed")

// Config encapsulates the settings for a Runner.
type Config struct {
	// Out receives informational messages, path listings and totals.
	Out io.Writer

	// Err receives diagnostics. Defaults to Out.
	Err io.Writer

	// Policy is used by path blocks without their own policy.
	Policy astar.Policy

	// The logger to use. If not defined an output-discarding logger will
	// be used instead.
	Logger *logrus.Entry

	// The clock used to time runs. Defaults to the wall clock.
	Clock clock.Clock
}

// Validate checks the config for errors and fills in defaults.
func (cfg *Config) Validate() error {
	var err error
	if cfg.Out == nil {
		err = multierror.Append(err, xerrors.Errorf("output writer has not been provided"))
	}
	if cfg.Err == nil {
		cfg.Err = cfg.Out
	}
	if _, perr := astar.ParsePolicy(cfg.Policy.String()); perr != nil {
		err = multierror.Append(err, xerrors.Errorf("invalid policy: %w", perr))
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Discard()
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.WallClock
	}

	return err
}

// Runner executes scenarios.
type Runner struct {
	cfg Config
}

// NewRunner creates a Runner with the specified config.
func NewRunner(cfg Config) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, xerrors.Errorf("scenario runner: config validation failed: %w", err)
	}

	return &Runner{cfg: cfg}, nil
}

// Report summarizes a run.
type Report struct {
	Steps   int
	Failed  int
	Map     *core.Map
	Elapsed time.Duration
}

// Run executes the steps of s in order against a fresh map. Every step runs
// even after a failed one; the mismatches are returned together.
func (r *Runner) Run(s *Scenario) (Report, error) {
	start := r.cfg.Clock.Now()
	logger := r.cfg.Logger.WithField("scenario", s.Name)
	logger.WithField("steps", len(s.Steps)).Info("starting scenario")

	// At debug level map events are also logged.
	var reporter core.Reporter = core.NewStreamReporter(r.cfg.Out, r.cfg.Err)
	if logger.Logger.IsLevelEnabled(logrus.DebugLevel) {
		reporter = logging.Tee{reporter, logging.NewReporter(logger)}
	}

	rep := Report{
		Steps: len(s.Steps),
		Map:   core.NewMap(core.WithReporter(reporter)),
	}

	var result error
	for _, st := range s.Steps {
		if err := r.step(rep.Map, st); err != nil {
			rep.Failed++
			logger.WithFields(logrus.Fields{
				"step":  st.Kind.String(),
				"range": st.Range.String(),
				"err":   err,
			}).Warn("step did not meet expectation")
			result = multierror.Append(result, xerrors.Errorf("%s: %s %s: %w", st.Range, st.Kind, st.subject(), err))
		}
	}

	rep.Elapsed = r.cfg.Clock.Now().Sub(start)
	logger.WithFields(logrus.Fields{
		"steps":        rep.Steps,
		"failed":       rep.Failed,
		"cities":       rep.Map.CityCount(),
		"roads":        rep.Map.RoadCount(),
		"elapsed_time": rep.Elapsed.String(),
	}).Info("completed scenario")

	return rep, result
}

func (r *Runner) step(m *core.Map, st Step) error {
	switch st.Kind {
	case KindAddCity:
		return checkError(st.ExpectError, m.AddCity(st.A, st.X, st.Y))
	case KindAddRoad:
		return checkError(st.ExpectError, m.AddRoad(st.A, st.B))
	case KindRemoveCity:
		return checkError(st.ExpectError, m.RemoveCity(st.A))
	case KindRemoveRoad:
		return checkError(st.ExpectError, m.RemoveRoad(st.A, st.B))
	case KindPath:
		return r.path(m, st)
	default:
		return fmt.Errorf("unknown step kind %v", st.Kind)
	}
}

func (r *Runner) path(m *core.Map, st Step) error {
	policy := r.cfg.Policy
	if st.Policy != nil {
		policy = *st.Policy
	}

	res, err := astar.FindPath(m, st.A, st.B, astar.WithPolicy(policy))
	if err == nil {
		if st.Print {
			if _, werr := res.WriteTo(r.cfg.Out); werr != nil {
				return werr
			}
		}
		fmt.Fprintf(r.cfg.Out, "From %s to %s: %skm\n", st.A, st.B, formatLength(res.Length))
	}
	if cerr := checkError(st.ExpectError, err); cerr != nil || err != nil {
		return cerr
	}

	if st.ExpectLength != nil && math.Abs(res.Length-*st.ExpectLength) > st.Tolerance {
		return fmt.Errorf("%w: length %v, want %v", ErrExpectation, res.Length, *st.ExpectLength)
	}
	if len(st.ExpectPaths) > 0 {
		for _, want := range st.ExpectPaths {
			if slices.Equal(want, res.Path) {
				return nil
			}
		}

		return fmt.Errorf("%w: path %v, want one of %v", ErrExpectation, res.Path, st.ExpectPaths)
	}

	return nil
}

// checkError compares an operation's error with the expected failure kind.
func checkError(want string, err error) error {
	switch {
	case want == "" && err != nil:
		return fmt.Errorf("%w: want success, got %s: %v", ErrExpectation, kindName(err), err)
	case want != "" && err == nil:
		return fmt.Errorf("%w: want %s, got success", ErrExpectation, want)
	case want != "" && !errors.Is(err, errKinds[want]):
		return fmt.Errorf("%w: want %s, got %s: %v", ErrExpectation, want, kindName(err), err)
	}

	return nil
}

// kindName is KindOf with a fallback for errors outside the taxonomy.
func kindName(err error) string {
	if k := KindOf(err); k != "" {
		return k
	}

	return "error"
}

func (st Step) subject() string {
	if st.B == "" {
		return strconv.Quote(st.A)
	}

	return strconv.Quote(st.A) + " " + strconv.Quote(st.B)
}

func formatLength(l float64) string {
	return strconv.FormatFloat(l, 'g', 6, 64)
}
