package templates

import "github.com/gin-gonic/gin"

func RegisterTemplatesRoutes(r *gin.RouterGroup) {
	r.POST("/checklist-templates", CreateTemplate)
	r.GET("/checklist-templates", GetTemplates)
	r.PATCH("/checklist-templates/:id", UpdateTemplate)
	r.DELETE("/checklist-templates/:id", DeleteTemplate)
}
