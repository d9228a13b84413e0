package server

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type contextKey string

const loggerContextKey contextKey = "logger"

// RequestIDHeader carries the per-request identifier back to the client.
const RequestIDHeader = "X-Request-ID"

// withRequestID tags every request with an ID and stores a logger carrying
// it in the request context.
func withRequestID(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, requestID)

		reqLogger := logger.With(zap.String("requestID", requestID))
		ctx := context.WithValue(r.Context(), loggerContextKey, reqLogger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// withRateLimit rejects requests above the limiter's rate with 429.
func withRateLimit(limiter *rate.Limiter, next http.Handler) http.Handler {
	if limiter == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			loggerFromContext(r.Context()).Warn("rate limit exceeded",
				zap.String("op", "server.withRateLimit"),
				zap.String("path", r.URL.Path),
			)
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func newLimiter(cfg RateLimitConfig) *rate.Limiter {
	if cfg.RequestsPerSecond <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)
}

func loggerFromContext(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(loggerContextKey).(*zap.Logger); ok {
		return logger
	}
	return zap.NewNop()
}
