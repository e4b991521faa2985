package middleware

import (
	"errors"
	"net/http"

	"ecommerce-backend/pkg/utils"

	"go.uber.org/zap"
)

// TokenHeader carries the access token on protected requests.
const TokenHeader = "x-auth-token"

const (
	MessageNoToken      = "No Token Provided!"
	MessageInvalidToken = "An Invalid Token!"
	MessageExpiredToken = "Token is expired, please login again"
)

// TokenVerifier is satisfied by *utils.TokenManager.
type TokenVerifier interface {
	Verify(token string) (*utils.Claims, error)
}

// AuthJWT verifies the x-auth-token header and puts the caller id and email
// into the request context. It never touches storage; whether the user still
// exists is decided by the usecase.
func AuthJWT(tokens TokenVerifier, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(TokenHeader)
			if token == "" {
				logger.Debug("Missing token", zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, MessageNoToken)
				return
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				if errors.Is(err, utils.ErrExpiredToken) {
					logger.Info("Expired token", zap.String("path", r.URL.Path))
					utils.ResponseUnauthorized(w, MessageExpiredToken)
					return
				}

				logger.Warn("Invalid token",
					zap.String("path", r.URL.Path),
					zap.String("ip", r.RemoteAddr),
					zap.Error(err))
				utils.ResponseUnauthorized(w, MessageInvalidToken)
				return
			}

			ctx := utils.SetUserContext(r.Context(), claims.UserID, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
