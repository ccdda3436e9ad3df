package middleware

import (
	"net/http"
	"strings"

	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

// CookieName is the cookie carrying the signed credential.
const CookieName = "token"

// Auth validates the credential cookie (or a Bearer header as a fallback for
// non-browser clients) and stores the user id in the gin context. Missing and
// invalid credentials get the same generic response.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName)
		if err != nil || token == "" {
			if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
				token = strings.TrimPrefix(h, "Bearer ")
			}
		}

		if token == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Not Authorized"})
			return
		}

		userID, err := service.ParseJWT(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Not Authorized"})
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
