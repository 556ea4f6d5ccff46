package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/vrajdev/sadhana-backend/internal/common"
	"github.com/vrajdev/sadhana-backend/internal/server/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// ClaimsFromContext returns the verified session claims stored by
// requireAuth, or nil on unauthenticated routes.
func ClaimsFromContext(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsKey).(*auth.Claims)
	return claims
}

// corsMiddleware mirrors the headers the site frontend expects and
// answers preflight requests directly.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.logger.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start).String(),
		)
	})
}

// requireAuth verifies the bearer token and stores its claims in the
// request context.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		header := r.Header.Get("Authorization")
		if header == "" {
			sendError(w, common.ErrorUnauthenticated)
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			sendError(w, common.ErrorUnauthenticated)
			return
		}

		claims, err := auth.ParseToken(parts[1], s.jwtSecret)
		if err != nil {
			sendError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next(w, r.WithContext(ctx))
	}
}

// requirePrivileged runs after requireAuth and rejects accounts without
// the privileged flag.
func (s *Server) requirePrivileged(next http.HandlerFunc) http.HandlerFunc {
	return s.requireAuth(func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFromContext(r.Context())
		if claims == nil || !claims.IsPrivileged {
			sendJSON(w, http.StatusForbidden, errorBody{Error: "privileged account required"})
			return
		}
		next(w, r)
	})
}
