package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"

	"chefbook/shared"
	"chefbook/shared/constant"
	"chefbook/transport/http/response"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"
	unknownUserAgent  = "unknown"
)

// RateLimit allows MaxRequests per client per fixed window. The client is its address plus
// user agent. When redis is unreachable requests pass unthrottled.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	limits := a.config.App.RateLimiter

	return func(next http.Handler) http.Handler {
		if !limits.Enable {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := shared.BuildCacheKey(cacheKeyRateLimit, clientAddr(r), userAgent(r))

			count, err := a.cache.Incr(r.Context(), key, limits.WindowSeconds)
			if err != nil {
				log.Warn().Err(err).Str("key", key).Msg("rate limiter unavailable, letting request through")
				next.ServeHTTP(w, r)

				return
			}

			if count > int64(limits.MaxRequests) {
				response.WithRequestLimitExceeded(w)

				return
			}

			header := w.Header()
			header.Set(constant.RequestHeaderRateLimit, strconv.Itoa(limits.MaxRequests))
			header.Set(constant.RequestHeaderRateLimitRemaining, strconv.FormatInt(int64(limits.MaxRequests)-count, 10))
			header.Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(limits.WindowSeconds))

			next.ServeHTTP(w, r)
		})
	}
}

func userAgent(r *http.Request) string {
	if ua := r.Header.Get(constant.RequestHeaderUserAgent); ua != constant.Empty {
		return ua
	}

	return unknownUserAgent
}

// clientAddr prefers proxy headers. Only the first X-Forwarded-For hop counts.
func clientAddr(r *http.Request) string {
	if forwarded := r.Header.Get(constant.RequestHeaderForwardedFor); forwarded != constant.Empty {
		first, _, _ := strings.Cut(forwarded, ",")

		return strings.TrimSpace(first)
	}

	if realIP := r.Header.Get(constant.RequestHeaderRealIP); realIP != constant.Empty {
		return strings.TrimSpace(realIP)
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}

	return r.RemoteAddr
}
