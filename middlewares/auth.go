// file: middlewares/auth.go
package middlewares

import (
	"strings"

	"codefest/utils"

	"github.com/gin-gonic/gin"
)

func parseBearer(c *gin.Context) (*utils.Claims, int, string) {
	authHeader := c.Request.Header.Get("Authorization")
	if authHeader == "" {
		return nil, 4001, "Authorization header is missing"
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if !(len(parts) == 2 && parts[0] == "Bearer") {
		return nil, 4002, "Authorization header format is invalid"
	}
	claims, err := utils.ParseToken(parts[1])
	if err != nil {
		return nil, 4003, "Invalid token"
	}
	return claims, 0, ""
}

// AdminAuthMiddleware requires a valid admin token.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, code, msg := parseBearer(c)
		if claims == nil {
			utils.Error(c, code, msg)
			c.Abort()
			return
		}
		if claims.Role != utils.RoleAdmin {
			utils.Error(c, 4003, "Admin privileges required")
			c.Abort()
			return
		}
		c.Set("admin_id", claims.AdminID)
		c.Set("admin_username", claims.Username)
		c.Next()
	}
}

// StudentAuthMiddleware requires a valid student token and exposes the email.
func StudentAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, code, msg := parseBearer(c)
		if claims == nil {
			utils.Error(c, code, msg)
			c.Abort()
			return
		}
		if claims.Role != utils.RoleStudent {
			utils.Error(c, 4003, "Student login required")
			c.Abort()
			return
		}
		c.Set("student_email", claims.Email)
		c.Next()
	}
}
