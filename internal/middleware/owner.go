package middleware

import (
	"net"

	"github.com/gin-gonic/gin"

	apperrors "finplanner/internal/errors"
)

// OwnerIDKey is the context key handlers read the owner scope from.
const OwnerIDKey = "ownerID"

// OwnerScope pins every request to the single configured owner. The bridge
// has no notion of users; this only carries the scope to the services.
func OwnerScope(ownerID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(OwnerIDKey, ownerID)
		c.Next()
	}
}

// LocalOnly rejects requests that do not come from a loopback address.
func LocalOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
		if err != nil {
			host = c.Request.RemoteAddr
		}
		if ip := net.ParseIP(host); ip == nil || !ip.IsLoopback() {
			c.AbortWithStatusJSON(apperrors.ErrForbidden.StatusCode, gin.H{
				"error": gin.H{"code": apperrors.ErrForbidden.Code, "message": apperrors.ErrForbidden.Message},
			})
			return
		}
		c.Next()
	}
}
