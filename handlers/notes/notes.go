package notes

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Parmjot23/mortgageHelper/models"
	"github.com/Parmjot23/mortgageHelper/utils"
)

type createNoteInput struct {
	Body   string `json:"body"`
	Pinned bool   `json:"pinned"`
}

type updateNoteInput struct {
	Body   *string `json:"body"`
	Pinned *bool   `json:"pinned"`
}

// CreateNote attaches a note to an existing lead.
func CreateNote(c *gin.Context) {
	var lead models.Lead
	if err := utils.DB.First(&lead, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		return
	}

	var input createNoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if strings.TrimSpace(input.Body) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Note body is required"})
		return
	}

	note := models.Note{
		LeadID: lead.ID,
		Body:   input.Body,
		Pinned: input.Pinned,
	}

	if err := utils.DB.Create(&note).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create note"})
		return
	}

	c.JSON(http.StatusCreated, note)
}

// GetNotes lists a lead's notes pinned-first, then newest-first.
func GetNotes(c *gin.Context) {
	var lead models.Lead
	if err := utils.DB.First(&lead, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		return
	}

	var notes []models.Note
	err := utils.DB.Where("lead_id = ?", lead.ID).Order("pinned desc, created_at desc").Find(&notes).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notes"})
		return
	}

	c.JSON(http.StatusOK, notes)
}

// UpdateNote edits the body and/or pinned flag.
func UpdateNote(c *gin.Context) {
	var note models.Note
	if err := utils.DB.First(&note, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
		return
	}

	var input updateNoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	updates := map[string]interface{}{}
	if input.Body != nil {
		if strings.TrimSpace(*input.Body) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Note body is required"})
			return
		}
		updates["body"] = *input.Body
	}
	if input.Pinned != nil {
		updates["pinned"] = *input.Pinned
	}

	if len(updates) > 0 {
		if err := utils.DB.Model(&note).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update note"})
			return
		}
		if err := utils.DB.First(&note, note.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update note"})
			return
		}
	}

	c.JSON(http.StatusOK, note)
}

// DeleteNote removes a note.
func DeleteNote(c *gin.Context) {
	var note models.Note
	if err := utils.DB.First(&note, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
		return
	}

	if err := utils.DB.Delete(&note).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete note"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
