package middleware

import (
	"net/http"
	"strings"

	userRepo "postpilot/database/repository/user"
	"postpilot/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// JWTAuthUserMiddleware validates the bearer token, checks its hash against
// the auth cache (falling back to the user record on a cache miss), and puts
// the user id on the context as "userID".
func JWTAuthUserMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		ctx := c.Request.Context()
		cacheKey := utils.AuthCachePrefix + userID

		storedHash, err := utils.GetAuthCacheClient().Get(ctx, cacheKey).Result()
		if err == redis.Nil {
			// Cache miss: fall back to the persisted hash and re-prime.
			u, repoErr := users.GetByID(ctx, userID)
			if repoErr != nil || u == nil || u.TokenHash == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
				return
			}
			storedHash = u.TokenHash
			utils.GetAuthCacheClient().Set(ctx, cacheKey, storedHash, 0)
		} else if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		if storedHash != computedHash {
			// Token was revoked or superseded by a newer login.
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
