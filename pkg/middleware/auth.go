package middleware

import (
	"net"
	"net/http"
	"strings"

	"conference-hall/pkg/utils"

	"go.uber.org/zap"
)

// Actor resolves who is calling. A valid bearer token sets the audit actor,
// a missing one leaves the request anonymous, an invalid one is rejected.
// The client address always becomes the audit source.
func Actor(secret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if ip := clientIP(r); ip != "" {
				ctx = utils.SetSourceContext(ctx, ip)
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			scheme, token, ok := strings.Cut(authHeader, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			claims, err := utils.ParseToken(secret, strings.TrimSpace(token))
			if err != nil {
				logger.Warn("Invalid or expired token",
					zap.Error(err),
					zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx = utils.SetActorContext(ctx, claims.EmpNo, claims.Name)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireActor rejects anonymous requests when required is true.
func RequireActor(required bool, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if required {
				if _, ok := utils.GetActorFromContext(r.Context()); !ok {
					logger.Warn("Anonymous access rejected",
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path))
					utils.ResponseUnauthorized(w, "Authentication required")
					return
				}
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
