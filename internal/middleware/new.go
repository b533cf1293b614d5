package middleware

import (
	"memory-agent/config"
	"memory-agent/pkg/log"
)

type Middleware struct {
	l           log.Logger
	showDetails bool
	limiter     *rateLimiter
}

// New builds the shared middleware set. A nil limiter is used when rate
// limiting is disabled.
func New(l log.Logger, rl config.RateLimitConfig, showDetails bool) Middleware {
	mw := Middleware{
		l:           l,
		showDetails: showDetails,
	}
	if rl.Enabled && rl.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(rl.RequestsPerMin)
	}
	return mw
}
