package middleware

import (
	"net/http"

	"glambook/models"

	"github.com/gin-gonic/gin"
)

// RequireRole allows the request through only when the authenticated
// account holds one of the given roles. Must run after JWTAuthMiddleware.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Role not established"})
			return
		}
		role, _ := roleVal.(string)
		for _, r := range roles {
			if role == string(r) {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role"})
	}
}
