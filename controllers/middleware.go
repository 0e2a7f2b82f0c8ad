package controllers

import (
	"net/http"
	"strings"

	"ClinicRecords/role"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	ContextEmail = "email"
	ContextRole  = "role"
)

/*
* Read the bearer token from the Authorization header
* Parse and verify it
* Reject roles not in the allowed list
* Store the caller's email and role on the context
 */
func (h *Handler) RequireToken(allowed ...role.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, MessageResponse("Missing bearer token"))
			return
		}
		claims, err := h.tokens.Parse(strings.TrimSpace(raw))
		if err != nil {
			log.Debug().Err(err).Str("path", c.FullPath()).Msg("token rejected")
			c.AbortWithStatusJSON(http.StatusUnauthorized, MessageResponse("Invalid or expired token"))
			return
		}
		if !roleAllowed(claims.Role, allowed) {
			c.AbortWithStatusJSON(http.StatusForbidden, MessageResponse("Access denied for role "+claims.Role))
			return
		}
		c.Set(ContextEmail, claims.Subject)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

func roleAllowed(got string, allowed []role.Role) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, r := range allowed {
		if string(r) == got {
			return true
		}
	}
	return false
}
