package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/shlangelhu/AIDish/utils"

	"github.com/gin-gonic/gin"
)

const UserIDKey = "userID"

// AuthMiddleware guards every protected endpoint: it requires an
// `Authorization: Bearer <token>` header, verifies the token and puts
// the resolved user id into the gin context.
func AuthMiddleware(codec *utils.TokenCodec) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "请先登录"})
			return
		}

		userID, err := codec.Verify(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			msg := "无效的令牌"
			if errors.Is(err, utils.ErrExpiredToken) {
				msg = "令牌已过期，请重新登录"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msg})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}
