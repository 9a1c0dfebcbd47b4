package checklists

import "github.com/gin-gonic/gin"

func RegisterChecklistsRoutes(r *gin.RouterGroup) {
	r.POST("/leads/:id/checklists", CreateChecklist)
	r.GET("/leads/:id/checklists", GetChecklists)
	r.PATCH("/checklist-items/:id", UpdateChecklistItem)
}
