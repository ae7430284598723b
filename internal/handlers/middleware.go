package handlers

import (
	"net/http"
	"strings"

	"item-api/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	msgNoToken      = "Authentication failed: No token provided"
	msgInvalidToken = "Authentication failed: Invalid token"

	identityKey = "identity"
)

// authMiddleware is the auth gate. It runs before any body or path-parameter
// validation, so a malformed unauthenticated request is always answered with
// an auth error, never a validation one.
//
// Missing header or missing token segment -> 401. Present but invalid or
// expired -> 403. The token is whatever follows the first space; the scheme
// word itself is not checked.
func (h *Handler) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")

	parts := strings.SplitN(header, " ", 2)
	if header == "" || len(parts) < 2 || parts[1] == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msgNoToken})
		return
	}

	ident, err := h.services.ParseToken(parts[1])
	if err != nil {
		if h.log != nil {
			h.log.Infow("auth_token_rejected", "err", err)
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": msgInvalidToken})
		return
	}

	c.Set(identityKey, ident)
	c.Next()
}

// identityFrom returns the identity placed in the context by authMiddleware.
func identityFrom(c *gin.Context) models.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return models.Identity{}
	}
	ident, _ := v.(models.Identity)
	return ident
}
