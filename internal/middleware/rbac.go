package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/trashtrack/trashtrack-api/internal/models"
	appErrors "github.com/trashtrack/trashtrack-api/pkg/errors"
	"github.com/trashtrack/trashtrack-api/pkg/response"
)

// RequireRoles allows the request through only when the token's role is listed.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	allowed := make(map[models.UserRole]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		claims, ok := Claims(c)
		if !ok {
			response.Abort(c, appErrors.ErrUnauthorized)
			return
		}
		if _, ok := allowed[claims.Role]; !ok {
			response.Abort(c, appErrors.ErrForbidden)
			return
		}
		c.Next()
	}
}

// Guard returns the handlers protecting a mutating route: a token check plus, when roles are
// given, a role check. With enforcement off the route stays open and nothing is returned.
func Guard(validator TokenValidator, enforce bool, roles ...models.UserRole) []gin.HandlerFunc {
	if !enforce {
		return nil
	}
	handlers := []gin.HandlerFunc{JWT(validator)}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRoles(roles...))
	}
	return handlers
}
