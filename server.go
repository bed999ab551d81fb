// Package poskoka serves station display boards computed by the schedule
// engine over a small JSON API.
package poskoka

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/dhisandaichi/poskoka-board/config"
	"github.com/dhisandaichi/poskoka-board/schedule"
	"github.com/dhisandaichi/poskoka-board/telemetry"
	"github.com/dhisandaichi/poskoka-board/timetable"
)

// Server wires the feed builder and catalog behind the board API.
type Server struct {
	cfg     config.AppConfig
	catalog *timetable.Catalog
	feeds   *schedule.FeedBuilder
	metrics *telemetry.Metrics

	http *http.Server
}

// NewServer builds the router and handlers. metrics may be nil when
// telemetry is disabled.
func NewServer(cfg config.AppConfig, catalog *timetable.Catalog, metrics *telemetry.Metrics) *Server {
	s := &Server{
		cfg:     cfg,
		catalog: catalog,
		feeds:   schedule.NewFeedBuilder(catalog, cfg),
		metrics: metrics,
	}

	origins := cfg.Server.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))
	r.Get("/api/health", s.handleHealth)
	r.Get("/api/stations", s.handleStations)
	r.Get("/api/board/{code}", s.handleBoard)
	r.Get("/api/board/{code}/tracks", s.handleTracks)

	s.http = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.http.Handler }

func (s *Server) Start() {
	go func() {
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on %s", s.http.Addr)
}

func (s *Server) HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Printf("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.http.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	} else {
		log.Printf("server shut down successfully")
	}
}
