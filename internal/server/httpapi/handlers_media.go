package httpapi

import (
	"net/http"

	"github.com/vrajdev/sadhana-backend/internal/common"
)

func (s *Server) handleMediaUploadURL(w http.ResponseWriter, r *http.Request) {

	key, url, err := s.media.GetPresignedPutUrl(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "presign put failed", "error", err.Error())
		sendError(w, common.ErrorInternal)
		return
	}

	sendJSON(w, http.StatusOK, map[string]string{"key": key, "url": url})
}

func (s *Server) handleMediaGetURL(w http.ResponseWriter, r *http.Request) {

	key := r.URL.Query().Get("key")
	if key == "" {
		sendError(w, common.ErrorValidation)
		return
	}

	url, err := s.media.GetPresignedGetUrl(r.Context(), key)
	if err != nil {
		s.logger.Error(r.Context(), "presign get failed", "error", err.Error())
		sendError(w, common.ErrorInternal)
		return
	}

	sendJSON(w, http.StatusOK, map[string]string{"url": url})
}
