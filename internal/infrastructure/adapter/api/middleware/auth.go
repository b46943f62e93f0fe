package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/api/dto"
)

// identityKey is the gin context key the verified identity is stored under
const identityKey = "identity"

// Auth rejects requests without a valid bearer token and attaches the
// verified identity to the request context
func Auth(tokenIssuer coreport.TokenIssuer, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			abortUnauthorized(c)
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		identity, err := tokenIssuer.Verify(token)
		if err != nil {
			logger.Warn("Rejected request with invalid token", map[string]any{
				"path": c.Request.URL.Path,
				"ip":   c.ClientIP(),
			})
			abortUnauthorized(c)
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// IdentityFromContext returns the identity attached by Auth
func IdentityFromContext(c *gin.Context) (coreport.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return coreport.Identity{}, false
	}
	identity, ok := value.(coreport.Identity)
	return identity, ok
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.FailMessageResponse{
		Status:  "failed",
		Message: "Unauthorized!",
	})
}
