package leads

import "github.com/gin-gonic/gin"

func RegisterLeadsRoutes(r *gin.RouterGroup) {
	r.POST("/leads", CreateLead)
	r.GET("/leads", GetLeads)
	r.GET("/leads/:id", GetLead)
	r.PATCH("/leads/:id", UpdateLead)
	r.DELETE("/leads/:id", DeleteLead)
}
