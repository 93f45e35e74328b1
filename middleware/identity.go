package middleware

import (
	"net/http"
	"strings"

	"tablebook/services/booking"

	"github.com/gin-gonic/gin"
)

// Identity headers set by the API gateway in front of this service.
const (
	HeaderUserEmail = "X-User-Email"
	HeaderUserRole  = "X-User-Role"

	RoleWaiter = "waiter"

	actorKey = "actor"
)

// IdentityMiddleware resolves the caller from the gateway-injected identity
// headers and stores a booking.Actor in the request context. Requests without
// an email are rejected; the role header is optional and defaults to guest.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := strings.TrimSpace(c.GetHeader(HeaderUserEmail))
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		role := strings.ToLower(strings.TrimSpace(c.GetHeader(HeaderUserRole)))
		c.Set(actorKey, booking.Actor{
			Email: email,
			Staff: role == RoleWaiter,
		})
		c.Next()
	}
}

// ActorFromContext returns the Actor stored by IdentityMiddleware. The zero
// Actor is returned when the middleware did not run.
func ActorFromContext(c *gin.Context) booking.Actor {
	if v, ok := c.Get(actorKey); ok {
		if actor, ok := v.(booking.Actor); ok {
			return actor
		}
	}
	return booking.Actor{}
}

// RequireWaiter rejects callers whose role header does not mark them as
// staff. It must run after IdentityMiddleware.
func RequireWaiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ActorFromContext(c).Staff {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Waiter role required",
				"code":  0,
			})
			return
		}
		c.Next()
	}
}
