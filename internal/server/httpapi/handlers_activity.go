package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/vrajdev/sadhana-backend/internal/common"
	"github.com/vrajdev/sadhana-backend/internal/server/sadhana"
)

type recordActivityRequest struct {
	Date        string `json:"date"`
	Rounds      any    `json:"rounds"`
	ReadingTime any    `json:"reading_time"`
}

func (s *Server) handleListActivity(w http.ResponseWriter, r *http.Request) {

	claims := ClaimsFromContext(r.Context())

	entries, err := s.sadhana.List(r.Context(), claims.TableID)
	if err != nil {
		s.logger.Error(r.Context(), "stats listing failed", "error", err.Error())
		sendError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, map[string]any{"stats": entries})
}

func (s *Server) handleRecordActivity(w http.ResponseWriter, r *http.Request) {

	claims := ClaimsFromContext(r.Context())

	var req recordActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, common.ErrorValidation)
		return
	}

	rounds, err := sadhana.CoerceCount(req.Rounds)
	if err != nil {
		sendError(w, err)
		return
	}
	readingTime, err := sadhana.CoerceCount(req.ReadingTime)
	if err != nil {
		sendError(w, err)
		return
	}

	entry, err := s.sadhana.Record(r.Context(), claims.TableID, req.Date, rounds, readingTime)
	if err != nil {
		s.logger.Error(r.Context(), "stats recording failed", "error", err.Error())
		sendError(w, err)
		return
	}

	sendJSON(w, http.StatusCreated, map[string]any{
		"message": "Stats recorded successfully",
		"data":    entry,
	})
}
