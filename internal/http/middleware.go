package http

import (
	"context"
	"net"
	"net/http"

	"github.com/prisha-enterprises/backoffice/internal/auth"
	rl "github.com/prisha-enterprises/backoffice/internal/http/rate_limiter"
)

type contextKey string

const usernameKey = contextKey("username")

// RequireAdmin guards the back-office routes. The token comes from the
// settings-backed login and always carries the admin role.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := auth.TokenClaims(r.Header.Get("Authorization"))
		if err != nil {
			http.Error(w, "missing or invalid token", http.StatusUnauthorized)
			return
		}

		if role, _ := claims["role"].(string); role != "admin" {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		username, _ := claims["username"].(string)
		ctx := context.WithValue(r.Context(), usernameKey, username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUsername returns the authenticated admin username, or "" on public routes.
func GetUsername(r *http.Request) string {
	if val, ok := r.Context().Value(usernameKey).(string); ok {
		return val
	}
	return ""
}

// ThrottleInquiries rate-limits the public inquiry form per client IP.
func ThrottleInquiries(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !rl.GetVisitor(ip).Allow() {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
