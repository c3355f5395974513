package http

import (
	"fmt"
	"math"
	"net"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

// RateLimitMiddleware rejects a client with 429 once its bucket is empty.
// Clients are keyed by remote host, so ports of one host share a bucket.
func RateLimitMiddleware(
	limiter *RateLimiter,
	logger *zap.Logger,
	next http.Handler,
) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client := clientKey(r)

		if !limiter.Allow(client) {
			retry := int(math.Ceil(limiter.RetryAfter(client).Seconds()))
			logger.Debug("rate limit exceeded",
				zap.String("client", client),
				zap.String("path", r.URL.Path),
				zap.Int("retryAfterSeconds", retry),
			)
			w.Header().Set("Retry-After", strconv.Itoa(retry))
			writeError(w, logger, http.StatusTooManyRequests,
				fmt.Sprintf("rate limit exceeded, retry in %ds", retry))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
