package notes

import "github.com/gin-gonic/gin"

func RegisterNotesRoutes(r *gin.RouterGroup) {
	r.POST("/leads/:id/notes", CreateNote)
	r.GET("/leads/:id/notes", GetNotes)
	r.PATCH("/notes/:id", UpdateNote)
	r.DELETE("/notes/:id", DeleteNote)
}
