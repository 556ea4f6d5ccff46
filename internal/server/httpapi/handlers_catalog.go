package httpapi

import (
	"net/http"
)

func (s *Server) handleCourses(w http.ResponseWriter, r *http.Request) {

	records, err := s.catalog.Courses(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "course listing failed", "error", err.Error())
		sendError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, map[string]any{"records": records})
}

func (s *Server) handleTrips(w http.ResponseWriter, r *http.Request) {

	records, err := s.catalog.Trips(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "trip listing failed", "error", err.Error())
		sendError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, map[string]any{"records": records})
}
