package calculator

import "github.com/gin-gonic/gin"

func RegisterCalculatorRoutes(r *gin.RouterGroup) {
	r.POST("/calculator", Calculate)
}
