package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Logout handles broker sign-out. JWTs are stateless, so this is just an
// acknowledgment; the client discards the token.
func Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Logout successful.",
	})
}
