package middleware

import (
	"strings"

	"bapi/store"
	"bapi/utils"

	"github.com/gin-gonic/gin"
)

// AuthRequired gates a route behind a bearer token. The token must parse,
// verify, and resolve to a live user; any failure yields the single
// Unauthorized response shared by every protected route.
func AuthRequired(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = authHeader[7:]
		}

		if token == "" {
			utils.Unauthorized(c)
			return
		}

		userID, err := utils.ValidateJWT(token)
		if err != nil {
			utils.Unauthorized(c)
			return
		}

		if _, err := users.UserByID(c.Request.Context(), userID); err != nil {
			utils.Unauthorized(c)
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
