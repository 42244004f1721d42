package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"hotel-storefront/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// Claims is the subset of the identity provider's session token this
// service cares about: the subject is the provider-assigned user ID and
// the role claim gates admin-only routes.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AuthBearer validates the identity provider's bearer token and stores the
// user ID, role, and raw token in the request context. The raw token is
// kept so the upstream API client can forward it.
func AuthBearer(secret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			tokenStr := parts[1]

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				logger.Warn("Invalid or expired session token",
					zap.String("path", r.URL.Path),
					zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			if claims.Subject == "" {
				utils.ResponseUnauthorized(w, "Token missing subject claim")
				return
			}

			ctx := utils.SetUserContext(r.Context(), claims.Subject, claims.Role)
			ctx = utils.SetTokenContext(ctx, tokenStr)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin checks the role claim set by AuthBearer.
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			role, _ := utils.GetRoleFromContext(r.Context())
			if role != "admin" {
				logger.Warn("Non-admin access attempt",
					zap.String("user_id", userID),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
