package auth

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/mo"

	"foodTracker/models"
)

const userContextKey = "auth.user"

// UserLookup resolves a principal's username to a stored user.
type UserLookup interface {
	GetByUsername(ctx context.Context, username string) (mo.Option[*models.User], error)
}

// Middleware authenticates every request it guards. It validates the JWT,
// requires an enduser or admin principal and resolves the principal to a stored user.
// The user is then available through CurrentUser.
func Middleware(secret, cookieName string, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := ParseFromRequest(c.Request, secret, cookieName)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "auth error: " + err.Error()})
			return
		}
		if p.Kind != "enduser" && p.Kind != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "only enduser or admin can perform this action"})
			return
		}
		ctx := WithPrincipal(c.Request.Context(), p)
		u, err := users.GetByUsername(ctx, p.Name)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "get user failed"})
			return
		}
		user, ok := u.Get()
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}
		c.Request = c.Request.WithContext(ctx)
		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the user resolved by Middleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*models.User)
	return u, ok && u != nil
}
