package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	poskoka "github.com/dhisandaichi/poskoka-board"
	"github.com/dhisandaichi/poskoka-board/board"
	"github.com/dhisandaichi/poskoka-board/config"
	"github.com/dhisandaichi/poskoka-board/schedule"
	"github.com/dhisandaichi/poskoka-board/telemetry"
	"github.com/dhisandaichi/poskoka-board/timetable"
)

func main() {
	// .env first so env-backed flag defaults see it
	_ = godotenv.Load()

	mode := flag.String("mode", "serve", "serve|oneshot")
	cfgPath := flag.String("config", os.Getenv("POSKOKA_CONFIG"), "path to config.yml (default: search standard locations)")
	station := flag.String("station", "", "station code (oneshot)")
	at := flag.String("at", "", "evaluation clock HH:MM (oneshot, default now)")
	limit := flag.Int("limit", 0, "display count override, 0 = config default, -1 = unlimited (oneshot)")
	flag.Parse()

	poskoka.InitLogging()

	cfg, err := config.LoadAppConfig(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	catalog, err := timetable.Load(cfg.TimetablePath, cfg)
	if err != nil {
		log.Fatalf("load timetable: %v", err)
	}
	log.Printf("timetable loaded: %d movements across %d stations", catalog.Len(), len(catalog.Stations()))

	switch *mode {
	case "oneshot":
		if err := runOneshot(cfg, catalog, *station, *at, *limit); err != nil {
			log.Fatalf("oneshot: %v", err)
		}
	case "serve":
		var metrics *telemetry.Metrics
		if cfg.Telemetry.Addr != "" {
			tel := telemetry.NewServer(cfg.Telemetry.Addr)
			metrics = telemetry.NewMetrics(tel.GetRegistry())
			if err := tel.Start(); err != nil {
				log.Fatalf("telemetry: %v", err)
			}
			defer func() { _ = tel.Stop() }()
			log.Printf("telemetry listening on %s", cfg.Telemetry.Addr)
		}
		srv := poskoka.NewServer(cfg, catalog, metrics)
		srv.Start()
		srv.HandleGracefulShutdown()
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}

func runOneshot(cfg config.AppConfig, catalog *timetable.Catalog, station, at string, limit int) error {
	if station == "" {
		return fmt.Errorf("-station is required in oneshot mode")
	}
	now := time.Now()
	if at != "" {
		ct, err := timetable.ParseClock(at)
		if err != nil {
			return err
		}
		now = time.Date(now.Year(), now.Month(), now.Day(), ct.Hour, ct.Minute, 0, 0, now.Location())
	}

	rules, err := cfg.RulesFor(station)
	if err != nil {
		return err
	}
	feeds := schedule.NewFeedBuilder(catalog, cfg)
	entries, err := feeds.BuildFeed(station, now)
	if err != nil {
		return err
	}
	if limit == 0 {
		limit = cfg.Board.MaxItems
	}
	view := board.BuildBoardView(rules, entries, now, cfg.Board.RefreshSeconds, limit)
	buf, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(buf))
	return nil
}
