package assistant

import "github.com/gin-gonic/gin"

func RegisterAssistantRoutes(r *gin.RouterGroup) {
	r.POST("/assistant/chat", Chat)
}
