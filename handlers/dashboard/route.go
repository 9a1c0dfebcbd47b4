package dashboard

import "github.com/gin-gonic/gin"

func RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.GET("/dashboard/stats", GetStats)
}
