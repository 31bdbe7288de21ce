package middleware

import (
	"net"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

var (
	// per-client limiters expire after a quiet period so the table does not
	// grow with every address ever seen
	limiters = gocache.New(10*time.Minute, 15*time.Minute)

	whitelistedIPs = map[string]bool{
		"127.0.0.1": true, // local UI
		"::1":       true,
	}
)

func getLimiter(ip string) *rate.Limiter {
	if cached, found := limiters.Get(ip); found {
		return cached.(*rate.Limiter)
	}
	limiter := rate.NewLimiter(5, 10) // 5 requests/sec, burst up to 10
	limiters.SetDefault(ip, limiter)
	return limiter
}

func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, _ := net.SplitHostPort(r.RemoteAddr)
		if whitelistedIPs[ip] {
			next.ServeHTTP(w, r)
			return
		}

		limiter := getLimiter(ip)
		if !limiter.Allow() {
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
