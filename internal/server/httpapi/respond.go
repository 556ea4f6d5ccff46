package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vrajdev/sadhana-backend/internal/common"
	"github.com/vrajdev/sadhana-backend/internal/server/teable"
)

type errorBody struct {
	Error string `json:"error"`
}

func sendJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// sendError maps a service error onto an HTTP status and a structured
// error body. Upstream detail never leaks to the client: the body carries
// the sentinel message only.
//
// When the error chain carries an upstream status (activity writes), that
// status is propagated verbatim.
func sendError(w http.ResponseWriter, err error) {

	var se *teable.StatusError
	if errors.As(err, &se) {
		sendJSON(w, se.Code, errorBody{Error: common.ErrorUpstreamWrite.Error()})
		return
	}

	code := http.StatusInternalServerError
	msg := common.ErrorInternal.Error()

	for _, m := range []struct {
		sentinel error
		code     int
	}{
		{common.ErrorValidation, http.StatusBadRequest},
		{common.ErrorAccountExists, http.StatusBadRequest},
		{common.ErrorMissingPartition, http.StatusBadRequest},
		{common.ErrorInvalidCredentials, http.StatusUnauthorized},
		{common.ErrorUnauthenticated, http.StatusUnauthorized},
		{common.ErrorInvalidToken, http.StatusUnauthorized},
		{common.ErrorTokenExpired, http.StatusUnauthorized},
		{common.ErrorNotFound, http.StatusNotFound},
		{common.ErrorUpstreamUnavailable, http.StatusServiceUnavailable},
		{common.ErrorUpstreamWrite, http.StatusServiceUnavailable},
		{common.ErrorProvisioning, http.StatusServiceUnavailable},
	} {
		if errors.Is(err, m.sentinel) {
			code = m.code
			msg = m.sentinel.Error()
			break
		}
	}

	sendJSON(w, code, errorBody{Error: msg})
}
