package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	msgLoginSuccess = "Login successful"
	msgInvalidCreds = "Invalid credentials"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// @Summary      Log in and receive a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body   loginRequest  true  "Credentials"
// @Success      200   {object}  map[string]string  "message, token"
// @Failure      401   {object}  map[string]string
// @Router       /login [post]
func (h *Handler) login(c *gin.Context) {
	var input loginRequest
	// An unusable body leaves the credentials empty, which fails the lookup
	// below exactly like wrong credentials would.
	_ = c.ShouldBindJSON(&input)

	token, err := h.services.GenerateToken(input.Username, input.Password)
	if err != nil {
		if h.log != nil {
			h.log.Infow("login_failed", "username", input.Username)
		}
		c.JSON(http.StatusUnauthorized, gin.H{"message": msgInvalidCreds})
		return
	}

	if h.log != nil {
		h.log.Infow("login_succeeded", "username", input.Username)
	}
	c.JSON(http.StatusOK, gin.H{"message": msgLoginSuccess, "token": token})
}
