package middleware

import (
	"net/http"
	"strings"

	"studyshare/internal/logger"
	"studyshare/internal/reqctx"
	"studyshare/internal/utils"
	"studyshare/internal/utils/helpers"

	"go.uber.org/zap"
)

// JWTAuth проверяет Bearer access-токен и кладёт user_id/role в контекст.
func JWTAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				logger.WithCtx(r.Context()).Warn("JWTAuth: отсутствует access token")
				helpers.Error(w, http.StatusUnauthorized, "missing access token")
				return
			}

			userID, role, err := utils.ParseToken(secret, strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				logger.WithCtx(r.Context()).Warn("JWTAuth: неверный или просроченный токен", zap.Error(err))
				helpers.Error(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := reqctx.WithUser(r.Context(), userID, role)
			logger.WithCtx(ctx).Debug("JWTAuth: токен валиден", zap.String("role", role))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
