package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/playscout/game-recommender/domain"
	"github.com/playscout/game-recommender/internal/tokenutil"
)

func JwtAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		t := strings.Split(authHeader, " ")
		if len(t) == 2 {
			authToken := t[1]
			authorized, err := tokenutil.IsAuthorized(authToken, secret)
			if authorized {
				userID, _ := tokenutil.ExtractIDFromToken(authToken, secret)
				userEmail, _ := tokenutil.ExtractEmailFromToken(authToken, secret)
				c.Set("x-user-id", userID)
				c.Set("x-user-email", userEmail)
				c.Next()
				return
			}
			c.JSON(http.StatusUnauthorized, domain.ErrorResponse{Error: err.Error()})
			c.Abort()
			return
		}
		c.JSON(http.StatusUnauthorized, domain.ErrorResponse{Error: "not authorized"})
		c.Abort()
	}
}
