package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RequireRoles only lets requests through whose authenticated role is in
// allowedRoles. It assumes JWTAuth ran earlier and stored the role on the
// context. The client hides mutation controls for non-admins, but this is
// the enforcement point.
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[strings.ToUpper(strings.TrimSpace(r))] = struct{}{}
	}

	return func(c *gin.Context) {
		role := GetUserRole(c)
		if role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status": "EXCEPTION",
				"errors": gin.H{"details": "không tìm thấy role trong phiên đăng nhập"},
			})
			return
		}

		if _, ok := allowed[strings.ToUpper(strings.TrimSpace(role))]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"status": "EXCEPTION",
				"errors": gin.H{"details": "role không được phép thực hiện thao tác này"},
			})
			return
		}

		c.Next()
	}
}
