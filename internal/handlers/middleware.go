package handlers

import (
	"net/http"
	"strings"

	"gallery_users/internal/models"

	"github.com/gin-gonic/gin"
)

// Context keys set by authClaimMiddleware.
const (
	ctxUserID   = "userId"
	ctxUserName = "userName"
)

// authClaimMiddleware validates the bearer token and stores the claim in the
// request context. Each request authenticates independently; nothing persists
// across requests.
func (h *Handler) authClaimMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}

	claim, err := h.services.ParseToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	// store in Gin context
	c.Set(ctxUserID, claim.UserID)
	c.Set(ctxUserName, claim.Username)
	c.Next()
}

// claimFromContext rebuilds the claim placed by the middleware.
func claimFromContext(c *gin.Context) models.AuthClaim {
	return models.AuthClaim{
		UserID:   c.GetString(ctxUserID),
		Username: c.GetString(ctxUserName),
	}
}
