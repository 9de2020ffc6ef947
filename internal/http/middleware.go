package http

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/charcuterie-certains/storefront-api/internal/auth"
	"github.com/charcuterie-certains/storefront-api/internal/http/ban"
	rl "github.com/charcuterie-certains/storefront-api/internal/http/rate_limiter"
)

type contextKey string

const (
	userIDKey    = contextKey("user_id")
	userEmailKey = contextKey("user_email")
)

// AuthMiddleware verifies the Bearer token and stores the caller's identity
// in the request context.
func AuthMiddleware(tokens *auth.Tokens) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, "missing or invalid token", http.StatusUnauthorized)
				return
			}

			claims, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			ctx := r.Context()
			if sub, ok := claims["sub"].(float64); ok {
				ctx = context.WithValue(ctx, userIDKey, int(sub))
			}
			if email, ok := claims["email"].(string); ok {
				ctx = context.WithValue(ctx, userEmailKey, email)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID returns the authenticated user's id, or 0 outside an
// authenticated request.
func GetUserID(r *http.Request) int {
	if val, ok := r.Context().Value(userIDKey).(int); ok {
		return val
	}
	return 0
}

// GetUserEmail returns the authenticated user's email, or "".
func GetUserEmail(r *http.Request) string {
	if val, ok := r.Context().Value(userEmailKey).(string); ok {
		return val
	}
	return ""
}

// RateLimitMiddleware enforces a per-IP token bucket. Rejected requests
// accrue strikes; past the threshold the IP is banned for a while. A nil
// banlist disables the strike bookkeeping.
func RateLimitMiddleware(limiter *rl.Limiter, bans *ban.Banlist) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)

			if bans != nil && bans.IsBanned(r.Context(), ip) {
				http.Error(w, "temporarily banned", http.StatusForbidden)
				return
			}

			if !limiter.GetVisitor(ip).Allow() {
				if bans != nil {
					bans.Strike(r.Context(), ip, r.URL.Path)
				}
				http.Error(w, "too many requests", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RequestLogger logs one line per request with method, path, status and
// duration.
func RequestLogger(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Msg("request")
		})
	}
}
