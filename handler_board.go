package poskoka

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dhisandaichi/poskoka-board/board"
	"github.com/dhisandaichi/poskoka-board/config"
	"github.com/dhisandaichi/poskoka-board/schedule"
)

type errorResponse struct {
	Error string `json:"error"`
}

type stationInfo struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	TotalTracks int    `json:"totalTracks"`
	Movements   int    `json:"movements"`
}

func (s *Server) handleStations(w http.ResponseWriter, r *http.Request) {
	stations := make([]stationInfo, 0, len(s.cfg.Stations))
	for _, st := range s.cfg.Stations {
		stations = append(stations, stationInfo{
			Code:        st.Code,
			Name:        st.Name,
			TotalTracks: st.TotalTracks,
			Movements:   len(s.catalog.ByStation(st.Code)),
		})
	}
	s.writeJSON(w, http.StatusOK, "stations", stations)
}

func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	limit := s.cfg.Board.MaxItems
	if q := r.URL.Query().Get("limit"); q != "" {
		if n, err := strconv.Atoi(q); err == nil {
			limit = n
		}
	}

	now := time.Now()
	entries, rules, err := s.buildFeed(code, now)
	if err != nil {
		s.writeJSON(w, http.StatusNotFound, "board", errorResponse{Error: err.Error()})
		return
	}
	view := board.BuildBoardView(rules, entries, now, s.cfg.Board.RefreshSeconds, limit)
	s.writeJSON(w, http.StatusOK, "board", view)
}

func (s *Server) handleTracks(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	now := time.Now()
	entries, rules, err := s.buildFeed(code, now)
	if err != nil {
		s.writeJSON(w, http.StatusNotFound, "tracks", errorResponse{Error: err.Error()})
		return
	}
	s.writeJSON(w, http.StatusOK, "tracks", board.BuildTrackView(rules, entries, now))
}

func (s *Server) buildFeed(code string, now time.Time) ([]schedule.Entry, config.StationRules, error) {
	rules, err := s.cfg.RulesFor(code)
	if err != nil {
		return nil, rules, err
	}
	start := time.Now()
	entries, err := s.feeds.BuildFeed(code, now)
	if err != nil {
		return nil, rules, err
	}
	if s.metrics != nil {
		s.metrics.FeedBuildSeconds.WithLabelValues(rules.Code).Observe(time.Since(start).Seconds())
		s.metrics.FeedEntries.WithLabelValues(rules.Code).Set(float64(len(entries)))
	}
	return entries, rules, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, endpoint string, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
	if s.metrics != nil {
		s.metrics.HTTPRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	}
}
