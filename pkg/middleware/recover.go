package middleware

import (
	"net/http"

	"ecommerce-backend/pkg/utils"

	"go.uber.org/zap"
)

// Recover middleware. The 500 envelope is only written when the handler
// has not started its response yet.
func Recover(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}

					logger.Error("PANIC recovered",
						zap.Any("error", err),
						zap.String("path", r.URL.Path),
						zap.String("method", r.Method),
						zap.Bool("response_started", rw.wroteHeader),
						zap.Stack("stack"),
					)

					if rw.wroteHeader {
						return
					}
					utils.ResponseInternalError(rw)
				}
			}()
			next.ServeHTTP(rw, r)
		})
	}
}
