// Package server exposes the solver as a small JSON API with Prometheus metrics.
package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/nntour/geom"
	"github.com/katalvlaran/nntour/internal/config"
	"github.com/katalvlaran/nntour/report"
	"github.com/katalvlaran/nntour/tsp"
)

// queryKeys are the request parameters /tour accepts.
var queryKeys = map[string]bool{"cities": true, "seed": true, "start": true}

// Server answers tour requests using base as the per-request defaults.
type Server struct {
	base    config.Config
	log     *slog.Logger
	metrics *Metrics
	now     func() time.Time
	build   func(*geom.Points, tsp.Options) (*report.Report, error)
}

// TourResponse is the /tour payload: the seed used plus the full report.
type TourResponse struct {
	Seed int64 `json:"seed"`
	*report.Report
}

// NewHandler builds the router: GET /tour, GET /healthz and GET /metrics.
// Metrics are registered on reg and served from it.
func NewHandler(base config.Config, log *slog.Logger, reg *prometheus.Registry) http.Handler {
	s := &Server{
		base:    base,
		log:     log,
		metrics: NewMetrics(reg),
		now:     time.Now,
		build:   report.Build,
	}

	return s.routes(reg)
}

// routes mounts the handlers behind panic recovery; a panicking handler
// answers 500 instead of dropping the connection.
func (s *Server) routes(reg *prometheus.Registry) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/tour", s.Tour)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return r
}

// Tour handles GET /tour?cities=&seed=&start=.
func (s *Server) Tour(w http.ResponseWriter, r *http.Request) {
	started := s.now()

	cfg, err := s.parse(r)
	if err != nil {
		s.metrics.Solves.WithLabelValues("bad_request").Inc()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	seed := cfg.EffectiveSeed(s.now)
	pts, err := geom.RandomPoints(cfg.Cities, geom.NewRand(seed))
	if err != nil {
		s.fail(w, err)
		return
	}
	rep, err := s.build(pts, tsp.Options{Start: cfg.Start})
	if err != nil {
		s.fail(w, err)
		return
	}

	s.metrics.Solves.WithLabelValues("ok").Inc()
	s.metrics.Duration.Observe(s.now().Sub(started).Seconds())
	s.metrics.Length.Observe(rep.Length)
	s.log.Info("tour solved", "cities", cfg.Cities, "seed", seed, "start", cfg.Start, "length", rep.Length)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(TourResponse{Seed: seed, Report: rep}); err != nil {
		s.log.Error("encode tour response", "error", err)
	}
}

// parse overlays the query parameters on the base configuration and validates.
func (s *Server) parse(r *http.Request) (config.Config, error) {
	values := make(map[string]any)
	for k, v := range r.URL.Query() {
		if !queryKeys[k] {
			return config.Config{}, fmt.Errorf("unknown parameter %q", k)
		}
		if len(v) > 0 {
			values[k] = v[0]
		}
	}
	cfg, err := s.base.Apply(values)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	s.metrics.Solves.WithLabelValues("error").Inc()
	s.log.Error("tour failed", "error", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}
