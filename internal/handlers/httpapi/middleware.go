package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/AntonioJCosta/lolbunny/internal/logging"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

type requestIDKey struct{}

// requestID returns the ID assigned by accessLog, or "" outside of it.
func requestID(r *http.Request) string {
	id, _ := r.Context().Value(requestIDKey{}).(string)
	return id
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// accessLog tags each request with a ULID, echoed in X-Request-Id, attaches a
// request-scoped logger to the context and logs one event per request once
// the handler returns.
func accessLog(log zerolog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := ulid.Make().String()

		w.Header().Set("X-Request-Id", id)
		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		ctx = logging.WithContext(ctx, log.With().Str("request_id", id).Logger())
		r = r.WithContext(ctx)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		ip := r.Header.Get("X-Forwarded-For")
		if ip == "" {
			ip = r.RemoteAddr
		}
		log.Info().
			Str("request_id", id).
			Str("remote", ip).
			Str("method", r.Method).
			Str("uri", r.URL.RequestURI()).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Str("user_agent", r.UserAgent()).
			Msg("request")
	})
}
