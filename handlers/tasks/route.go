package tasks

import "github.com/gin-gonic/gin"

func RegisterTasksRoutes(r *gin.RouterGroup) {
	r.POST("/leads/:id/tasks", CreateTask)
	r.GET("/leads/:id/tasks", GetTasks)
	r.PATCH("/tasks/:id", UpdateTask)
}
