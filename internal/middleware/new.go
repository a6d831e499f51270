package middleware

import (
	"daycraft/pkg/log"
)

// Config tunes the request middlewares.
type Config struct {
	RateLimitPerMin int // zero disables rate limiting
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
