// Package telemetry exposes Prometheus metrics for the board service on a
// dedicated listener, kept separate from the API port so scrapes never
// compete with board traffic.
package telemetry

import (
	"net"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	FeedBuildSeconds  *prometheus.HistogramVec
	FeedEntries       *prometheus.GaugeVec
	HTTPRequestsTotal *prometheus.CounterVec
}

func NewMetrics(registry *prometheus.Registry) *Metrics {
	metrics := &Metrics{
		FeedBuildSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "board_feed_build_seconds",
				Help:    "Time to evaluate the schedule feed for a station",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"station"},
		),
		FeedEntries: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "board_feed_entries",
				Help: "Currently relevant entries in the last feed built per station",
			},
			[]string{"station"},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "board_http_requests_total",
				Help: "API requests served per endpoint and status code",
			},
			[]string{"endpoint", "code"},
		),
	}

	registry.MustRegister(
		metrics.FeedBuildSeconds,
		metrics.FeedEntries,
		metrics.HTTPRequestsTotal,
	)

	return metrics
}

type Server struct {
	addr     string
	mux      *http.ServeMux
	registry *prometheus.Registry

	server   *http.Server
	listener net.Listener
}

func NewServer(addr string) *Server {
	telemetry := &Server{
		addr:     addr,
		registry: prometheus.NewRegistry(),
		mux:      http.NewServeMux(),
	}

	telemetry.mux.Handle(
		"/metrics",
		promhttp.HandlerFor(telemetry.registry, promhttp.HandlerOpts{}),
	)

	telemetry.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	telemetry.mux.HandleFunc("/debug/pprof/", pprof.Index)
	telemetry.mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	telemetry.mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	telemetry.mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	telemetry.mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	return telemetry
}

func (telemetry *Server) GetRegistry() *prometheus.Registry {
	return telemetry.registry
}

func (telemetry *Server) Start() error {
	telemetry.server = &http.Server{
		Addr:              telemetry.addr,
		Handler:           telemetry.mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	listener, err := net.Listen("tcp", telemetry.addr)
	if err != nil {
		return err
	}

	telemetry.listener = listener

	go telemetry.server.Serve(telemetry.listener)

	return nil
}

func (telemetry *Server) Stop() error {
	if telemetry.server == nil {
		return nil
	}

	return telemetry.server.Close()
}
