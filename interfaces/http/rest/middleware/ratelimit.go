package middleware

import (
	"net"
	"net/http"

	"go.uber.org/zap"

	"colorboard/pkg/common"
	pkgerrors "colorboard/pkg/errors"
	"colorboard/pkg/ratelimit"
)

// RateLimit gates requests per client IP. Limiter errors fail open: the
// quota protects the upstream API budget, it must not take the proxy down
// with it.
func RateLimit(limiter ratelimit.Limiter, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientIP(r)

			allowed, err := limiter.Allow(r.Context(), key)
			if err != nil {
				logger.Warn("rate limiter error", zap.Error(err))
			}
			if !allowed {
				common.RespondAppError(w, pkgerrors.NewRateLimitError(
					limiter.Limit(), limiter.Window().String()))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP trusts the chain RealIP middleware resolved into RemoteAddr
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
