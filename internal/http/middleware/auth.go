package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"travelsuite.app/api/common/logger"
	"travelsuite.app/api/common/metrics"
	"travelsuite.app/api/internal/http/dto"
)

type contextKey string

const userIDKey contextKey = "user_id"

// TokenVerifier resolves a bearer token to the user it was issued for.
type TokenVerifier interface {
	Verify(token string) (int64, error)
}

func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFrom returns the authenticated user id stored by RequireAuth.
func UserIDFrom(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok && userID > 0
}

// RequireAuth rejects requests without a valid bearer token. A missing
// header, a foreign scheme and a failed verification all produce the same
// response.
func RequireAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			reject(c)
			return
		}

		userID, err := verifier.Verify(token)
		if err != nil {
			reject(c)
			return
		}

		ctx := WithUserID(c.Request.Context(), userID)
		ctx = logger.WithLogFields(ctx, logger.LogFields{UserID: logger.Ptr(userID)})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func reject(c *gin.Context) {
	metrics.TokenRejectionsTotal.Inc()
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Failure(http.StatusUnauthorized, "Authentication failed"))
}
