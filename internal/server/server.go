// Package server exposes one city map over a JSON HTTP API.
//
// Mutations take the write lock and queries the read lock, so the map itself
// stays single-threaded.
package server

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/hashicorp/go-multierror"
	"github.com/juju/clock"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"

	"github.com/katalvlaran/citymap/astar"
	"github.com/katalvlaran/citymap/core"
	"github.com/katalvlaran/citymap/internal/logging"
)

const defaultShutdownTimeout = 5 * time.Second

// Config encapsulates the settings for configuring the map service.
type Config struct {
	// The address to listen for incoming requests.
	ListenAddr string

	// Policy is used by path queries that do not name one.
	Policy astar.Policy

	// How long Run waits for in-flight requests once its context is done.
	// Defaults to 5s.
	ShutdownTimeout time.Duration

	// The logger to use. If not defined an output-discarding logger will
	// be used instead.
	Logger *logrus.Entry

	// The clock used to time requests. Defaults to the wall clock.
	Clock clock.Clock
}

func (cfg *Config) validate() error {
	var err error
	if cfg.ListenAddr == "" {
		err = multierror.Append(err, xerrors.Errorf("listen address has not been specified"))
	}
	if _, perr := astar.ParsePolicy(cfg.Policy.String()); perr != nil {
		err = multierror.Append(err, xerrors.Errorf("invalid default policy: %w", perr))
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Discard()
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.WallClock
	}

	return err
}

// Service serves a single in-memory map.
type Service struct {
	cfg    Config
	router *mux.Router

	mu sync.RWMutex
	m  *core.Map
}

// NewService creates a new map service with the specified config.
func NewService(cfg Config) (*Service, error) {
	if err := cfg.validate(); err != nil {
		return nil, xerrors.Errorf("map service: config validation failed: %w", err)
	}

	svc := &Service{
		cfg:    cfg,
		router: mux.NewRouter(),
		m:      core.NewMap(core.WithReporter(logging.NewReporter(cfg.Logger))),
	}
	svc.routes()

	return svc, nil
}

// Handler returns the HTTP handler serving the API.
func (svc *Service) Handler() http.Handler { return svc.router }

// Run serves requests until ctx expires, then shuts the server down.
func (svc *Service) Run(ctx context.Context) error {
	l, err := net.Listen("tcp", svc.cfg.ListenAddr)
	if err != nil {
		return xerrors.Errorf("map service: %w", err)
	}
	defer func() { _ = l.Close() }()

	srv := &http.Server{
		Addr:              svc.cfg.ListenAddr,
		Handler:           svc.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), svc.cfg.ShutdownTimeout)
		defer cancel()
		if serr := srv.Shutdown(sctx); serr != nil {
			svc.cfg.Logger.WithField("err", serr).Error("shutdown failed")
		}
	}()

	svc.cfg.Logger.WithField("addr", l.Addr().String()).Info("listening for requests")
	if err = srv.Serve(l); err == http.ErrServerClosed {
		err = nil
	}
	<-done

	return err
}
