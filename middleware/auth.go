package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"worklane/utils"
)

// ServiceAuthMiddleware authenticates calls from internal services via a
// bearer JWT. The subject claim names the calling service and is stored in
// the request context for handlers and access logs.
func ServiceAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		service, err := utils.ExtractServiceFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("callerService", service)
		c.Next()
	}
}
