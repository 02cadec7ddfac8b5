package server

import (
	"net/http"

	"babysensory/internal/analytics"
)

// handleInsights aggregates the recorded history for the parent dashboard.
func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	records := s.Recorder.History()
	writeJSON(w, http.StatusOK, analytics.Summarize(records))
}
