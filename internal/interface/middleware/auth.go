package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"coursehub/internal/domain/entity"
	"coursehub/pkg/helpers"
	"coursehub/pkg/response"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxUserID    = "userID"
	CtxUserEmail = "userEmail"
	CtxUserRole  = "userRole"
)

// Auth validates the bearer access token and sets the caller's identity
// (userID, userEmail, userRole) in the Gin context on success.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Fail(c, http.StatusUnauthorized, "Access token required", "MISSING_TOKEN")
			c.Abort()
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.Fail(c, http.StatusForbidden, "Invalid or expired token", "INVALID_TOKEN")
			c.Abort()
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUserEmail, claims.Email)
		c.Set(CtxUserRole, string(claims.Role))
		c.Next()
	}
}

// RequireRoles allows the request through only when the authenticated
// caller holds one of the given roles. Must run after Auth.
func RequireRoles(roles ...entity.Role) gin.HandlerFunc {
	allowed := make(map[entity.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		role := c.GetString(CtxUserRole)
		if role == "" {
			response.Fail(c, http.StatusUnauthorized, "Authentication required", "NOT_AUTHENTICATED")
			c.Abort()
			return
		}
		if _, ok := allowed[entity.Role(role)]; !ok {
			response.Fail(c, http.StatusForbidden, "Insufficient permissions", "INSUFFICIENT_PERMISSIONS")
			c.Abort()
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
