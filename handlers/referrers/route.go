package referrers

import "github.com/gin-gonic/gin"

func RegisterReferrersRoutes(r *gin.RouterGroup) {
	r.POST("/referrers", CreateReferrer)
	r.GET("/referrers", GetReferrers)
	r.PATCH("/referrers/:id", UpdateReferrer)
	r.DELETE("/referrers/:id", DeactivateReferrer)
	r.GET("/referrers/:id/leads", GetReferrerLeads)
}
