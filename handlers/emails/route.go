package emails

import "github.com/gin-gonic/gin"

func RegisterEmailsRoutes(r *gin.RouterGroup) {
	r.POST("/leads/:id/emails", SendEmail)
	r.GET("/leads/:id/emails", GetEmails)
}
