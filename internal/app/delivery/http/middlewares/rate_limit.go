package middlewares

import (
	"healthrecord-service/internal/pkg/exceptions"
	"healthrecord-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// GlobalRateLimit limits every route per client IP.
func (m *Middlewares) GlobalRateLimit() func(next http.Handler) http.Handler {
	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		time.Second,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil))
		}),
	)
}

// WriteRateLimit guards the record creating routes with a stricter limiter
// that blocks offenders for a while.
func (m *Middlewares) WriteRateLimit() func(next http.Handler) http.Handler {
	limiter := NewRateLimiter(
		m.InternalConfig.App.WriteMaxRequestsPerSecond,
		time.Second,
		time.Duration(m.InternalConfig.App.WriteBlockTimeInSeconds)*time.Second,
	)
	limiter.Log = m.Log
	return limiter.Limit
}
