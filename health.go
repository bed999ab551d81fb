package poskoka

import (
	"encoding/json"
	"net/http"
)

type healthResponse struct {
	Status    string `json:"status"`
	Stations  int    `json:"stations"`
	Movements int    `json:"movements"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	resp := healthResponse{
		Status:    "ok",
		Stations:  len(s.cfg.Stations),
		Movements: s.catalog.Len(),
	}
	_ = json.NewEncoder(w).Encode(resp)
}
