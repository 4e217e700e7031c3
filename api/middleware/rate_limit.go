package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/benjaminbelloeil/portfolio-api/api/responses"
	pkgerrors "github.com/benjaminbelloeil/portfolio-api/pkg/errors"
	"github.com/benjaminbelloeil/portfolio-api/pkg/logger"
)

// CounterStore increments a windowed counter. Implemented by the Redis
// client and the in-process memory store; both keep the same fixed-window
// semantics so the backend can swap without a behavior change.
type CounterStore interface {
	IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

// SubmissionPolicy defines the per-IP throttle for one submission surface.
type SubmissionPolicy struct {
	name   string
	window time.Duration
	limit  int
}

// NewSubmissionPolicy builds a policy with the supplied window and limit.
func NewSubmissionPolicy(name string, window time.Duration, limit int) SubmissionPolicy {
	return SubmissionPolicy{
		name:   strings.ToLower(strings.TrimSpace(name)),
		window: window,
		limit:  limit,
	}
}

func (p SubmissionPolicy) enabled() bool {
	return p.window > 0 && p.limit > 0
}

func (p SubmissionPolicy) normalizedName() string {
	if p.name == "" {
		return "submission"
	}
	return p.name
}

func (p SubmissionPolicy) ipKey(ip string) string {
	if ip == "" {
		return ""
	}
	return fmt.Sprintf("rl:ip:%s:%s", p.normalizedName(), ip)
}

// SubmissionRateLimit enforces a per-IP counter on a submission endpoint.
// Store failures fail open: a degraded counter backend must not take the
// contact form down with it.
func SubmissionRateLimit(policy SubmissionPolicy, store CounterStore, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !policy.enabled() || store == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			ip := clientIP(r)
			key := policy.ipKey(ip)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			count, err := store.IncrWithTTL(ctx, key, policy.window)
			if err != nil {
				if logg != nil {
					warnCtx := logg.WithFields(ctx, map[string]any{
						"policy": policy.normalizedName(),
						"ip":     ip,
					})
					logg.Warn(warnCtx, "rate_limit.store_unavailable")
				}
				next.ServeHTTP(w, r)
				return
			}

			if count > int64(policy.limit) {
				if logg != nil {
					blockCtx := logg.WithFields(ctx, map[string]any{
						"policy":         policy.normalizedName(),
						"ip":             ip,
						"attempts":       count,
						"limit":          policy.limit,
						"window_seconds": int(policy.window.Seconds()),
					})
					logg.Warn(blockCtx, "rate_limit.blocked")
				}
				responses.WriteError(ctx, nil, w, pkgerrors.New(pkgerrors.CodeRateLimit, "Too many requests, please try again later"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if r == nil {
		return ""
	}
	if header := r.Header.Get("X-Forwarded-For"); header != "" {
		for _, part := range strings.Split(header, ",") {
			if ip := strings.TrimSpace(part); ip != "" {
				return ip
			}
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	return r.RemoteAddr
}
