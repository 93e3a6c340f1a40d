package middleware

import (
	"context"
	"net/http"
	"strings"

	userRepo "glambook/database/repository/user"
	"glambook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": "Insufficient authorization",
		"code":  0,
	})
}

// JWTAuthMiddleware validates the bearer token, checks it against the
// Redis auth cache (falling back to the stored hash on the user record on
// a miss), and sets userID and role in the request context. With optional
// set, requests without a token pass through anonymously.
func JWTAuthMiddleware(users userRepo.UserRepository, optional bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			if optional {
				c.Next()
				return
			}
			abortUnauthorized(c)
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || userID == "" {
			abortUnauthorized(c)
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + userID
		ctx := context.Background()

		authCache := utils.GetAuthCacheClient()
		if cachedHash, err := authCache.Get(ctx, cacheKey).Result(); err == nil {
			if cachedHash != computedHash {
				abortUnauthorized(c)
				return
			}
			_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
			c.Set("userID", userID)
			c.Set("role", role)
			c.Next()
			return
		}

		// Cache miss: verify against the stored hash and re-seed.
		user, err := users.GetByID(ctx, userID)
		if err != nil || user.TokenHash == "" || user.TokenHash != computedHash {
			abortUnauthorized(c)
			return
		}
		if err := authCache.Set(ctx, cacheKey, computedHash, utils.AuthCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("failed to seed auth cache", zap.Error(err))
		}

		c.Set("userID", userID)
		c.Set("role", string(user.Role))
		c.Next()
	}
}
