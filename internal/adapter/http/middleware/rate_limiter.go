package middleware

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/egorsokolov/mortgage-miniapp-api/internal/domain/entity"
	"github.com/egorsokolov/mortgage-miniapp-api/internal/usecase/check_rate_limit"
)

// UseCase interface allows mocking the admission decision in tests
type UseCase interface {
	Execute(ctx context.Context, input check_rate_limit.Input) (*check_rate_limit.Output, error)
}

// RateLimiterMiddleware applies the per-IP sliding window before any
// request body is touched.
type RateLimiterMiddleware struct {
	useCase UseCase
	limit   int
	window  time.Duration
}

func NewRateLimiterMiddleware(useCase UseCase, limit int, window time.Duration) *RateLimiterMiddleware {
	return &RateLimiterMiddleware{
		useCase: useCase,
		limit:   limit,
		window:  window,
	}
}

func (m *RateLimiterMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		input := check_rate_limit.Input{
			Key:    entity.NewIPKey(extractIP(r)),
			Limit:  m.limit,
			Window: m.window,
		}

		output, err := m.useCase.Execute(ctx, input)
		if err != nil {
			log.Printf("Rate limiter error: %v for key %s", err, input.Key.Value)
			writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		if !output.Allowed {
			log.Printf("Rate limit exceeded for key %s (%d/%d in window)",
				input.Key.Value, output.Count, output.Limit)
			w.Header().Set("Retry-After", strconv.Itoa(int(m.window.Seconds())))
			writeJSONError(w, http.StatusTooManyRequests, output.Message)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// extractIP extracts the real client IP, accounting for proxies
func extractIP(r *http.Request) string {
	// 1. X-Forwarded-For (proxy, load balancer): first IP is the client
	if forwardedFor := r.Header.Get("X-Forwarded-For"); forwardedFor != "" {
		ips := strings.Split(forwardedFor, ",")
		return strings.TrimSpace(ips[0])
	}

	// 2. X-Real-IP (nginx, cloudflare)
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}

	// 3. RemoteAddr (direct connection), without the port
	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}

	return ip
}
