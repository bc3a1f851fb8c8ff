package middleware

import (
	"net"
	"net/http"
	"salon/shared"
	"salon/shared/constant"
	"salon/transport/http/response"
	"strconv"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"
	unknownAgent      = "unknown"
)

// RateLimit counts requests per client in a fixed window kept in redis, or in a local
// token bucket when the memory store is configured. When redis cannot be reached the
// request is let through.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limiter := a.config.App.RateLimiter
			if !limiter.Enable {
				next.ServeHTTP(w, r)

				return
			}

			cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, clientHost(r), userAgent(r))

			if a.local != nil {
				a.limitLocally(w, r, next, cacheKey)

				return
			}

			count, err := a.cache.Increment(r.Context(), cacheKey, limiter.WindowSeconds)
			if err != nil {
				log.Warn().Err(err).Str("key", cacheKey).Msg("rate limiter unavailable, allowing request")

				next.ServeHTTP(w, r)

				return
			}

			if count > int64(limiter.MaxRequests) {
				log.Debug().Str("key", cacheKey).Int64("count", count).Msg("rate limit exceeded")

				response.WithRequestLimitExceeded(w)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(limiter.MaxRequests))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.FormatInt(max(0, int64(limiter.MaxRequests)-count), 10))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(limiter.WindowSeconds))

			next.ServeHTTP(w, r)
		})
	}
}

func (a *appMiddleware) limitLocally(w http.ResponseWriter, r *http.Request, next http.Handler, key string) {
	limiter := a.config.App.RateLimiter

	ok, remaining := a.local.allow(key)
	if !ok {
		log.Debug().Str("key", key).Msg("rate limit exceeded")

		response.WithRequestLimitExceeded(w)

		return
	}

	w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(limiter.MaxRequests))
	w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(remaining))
	w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(limiter.WindowSeconds))

	next.ServeHTTP(w, r)
}

// clientHost relies on chi's RealIP having already resolved forwarding headers into
// RemoteAddr.
func clientHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}

func userAgent(r *http.Request) string {
	if ua := r.Header.Get(constant.RequestHeaderUserAgent); ua != "" {
		return ua
	}

	return unknownAgent
}
