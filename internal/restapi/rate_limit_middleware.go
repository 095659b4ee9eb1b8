package restapi

import (
	"encoding/json"
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/Briscoooe/irish-rail-rest-api/internal/models"
)

const (
	limiterIdleExpiry    = 10 * time.Minute
	limiterCleanupPeriod = 5 * time.Minute
)

// RateLimitMiddleware provides per-client rate limiting. Clients are keyed by
// API key when one is sent and by remote IP otherwise. Limiters idle for
// longer than limiterIdleExpiry are evicted.
type RateLimitMiddleware struct {
	limiters  *cache.Cache
	rateLimit rate.Limit
	burstSize int
}

// NewRateLimitMiddleware creates a new rate limiting middleware allowing
// ratePerInterval requests per interval for each client. A non-positive rate
// disables limiting.
func NewRateLimitMiddleware(ratePerInterval int, interval time.Duration) *RateLimitMiddleware {
	rateLimit := rate.Inf
	if ratePerInterval > 0 {
		rateLimit = rate.Every(interval / time.Duration(ratePerInterval))
	}

	return &RateLimitMiddleware{
		limiters:  cache.New(limiterIdleExpiry, limiterCleanupPeriod),
		rateLimit: rateLimit,
		burstSize: ratePerInterval,
	}
}

// getLimiter gets or creates the rate limiter for a client, sliding its expiry.
func (rl *RateLimitMiddleware) getLimiter(client string) *rate.Limiter {
	if v, ok := rl.limiters.Get(client); ok {
		limiter := v.(*rate.Limiter)
		rl.limiters.SetDefault(client, limiter)
		return limiter
	}

	limiter := rate.NewLimiter(rl.rateLimit, rl.burstSize)
	if err := rl.limiters.Add(client, limiter, cache.DefaultExpiration); err != nil {
		// Another request created it first.
		if v, ok := rl.limiters.Get(client); ok {
			return v.(*rate.Limiter)
		}
	}
	return limiter
}

func clientKey(r *http.Request) string {
	if key := r.URL.Query().Get("key"); key != "" {
		return "key:" + key
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}

// Handler is the HTTP middleware function
func (rl *RateLimitMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rl.rateLimit == rate.Inf {
			next.ServeHTTP(w, r)
			return
		}

		if !rl.getLimiter(clientKey(r)).Allow() {
			rl.sendRateLimitExceeded(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// sendRateLimitExceeded sends a 429 Too Many Requests response
func (rl *RateLimitMiddleware) sendRateLimitExceeded(w http.ResponseWriter) {
	retryAfter := int(math.Ceil(1 / float64(rl.rateLimit)))
	if retryAfter < 1 {
		retryAfter = 1
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.burstSize))
	w.Header().Set("X-RateLimit-Remaining", "0")
	w.WriteHeader(http.StatusTooManyRequests)

	response := models.NewErrorResponse(http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
	_ = json.NewEncoder(w).Encode(response)
}
