package middleware

import (
	"net/http"
	"strings"

	"github.com/rahmedalmosd25-ux/eventhub/internal/auth"
	"github.com/rahmedalmosd25-ux/eventhub/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const actorKey = "actor"

// Auth verifies the Bearer token and stores the resulting actor on the
// request context. Requests without a valid token are rejected with 401.
func Auth(tokens *auth.Manager) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "authentication required"},
			)
			return
		}

		claims, err := tokens.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "invalid or expired token"},
			)
			return
		}

		c.Set(actorKey, domain.Actor{ID: claims.UserID, Role: claims.Role})
		c.Next()
	}
}

// RequireAdmin aborts with 403 unless the authenticated actor is an admin.
// Must run after Auth.
func RequireAdmin() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "authentication required"},
			)
			return
		}

		if !actor.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden,
				ginext.H{"error": "admin access required"},
			)
			return
		}

		c.Next()
	}
}

func ActorFrom(c *ginext.Context) (domain.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return domain.Actor{}, false
	}
	actor, ok := v.(domain.Actor)
	return actor, ok
}
