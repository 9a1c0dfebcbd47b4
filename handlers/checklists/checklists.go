package checklists

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Parmjot23/mortgageHelper/models"
	"github.com/Parmjot23/mortgageHelper/utils"
)

type createChecklistInput struct {
	TemplateID uint   `json:"templateId"`
	Title      string `json:"title"`
}

type updateItemInput struct {
	Status string `json:"status"`
}

// CreateChecklist materializes a template against a lead. The checklist and
// every copied item are created in one transaction; items start PENDING and
// carry no live binding back to the template.
func CreateChecklist(c *gin.Context) {
	var lead models.Lead
	if err := utils.DB.First(&lead, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		return
	}

	var input createChecklistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	var template models.ChecklistTemplate
	err := utils.DB.Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order asc") }).
		First(&template, input.TemplateID).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}

	title := input.Title
	if title == "" {
		title = template.Name
	}

	checklist := models.Checklist{
		LeadID: lead.ID,
		Title:  title,
		Status: models.ChecklistStatusOpen,
	}
	for _, item := range template.Items {
		checklist.Items = append(checklist.Items, models.ChecklistItem{
			Label:     item.Label,
			Required:  item.Required,
			SortOrder: item.SortOrder,
			Status:    models.ChecklistItemPending,
		})
	}

	err = utils.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&checklist).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checklist"})
		return
	}

	c.JSON(http.StatusCreated, checklist)
}

// GetChecklists returns all checklists for a lead, newest first, items in
// sort order.
func GetChecklists(c *gin.Context) {
	var lead models.Lead
	if err := utils.DB.First(&lead, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		return
	}

	var checklists []models.Checklist
	err := utils.DB.Where("lead_id = ?", lead.ID).Order("created_at desc").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order asc") }).
		Find(&checklists).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch checklists"})
		return
	}

	c.JSON(http.StatusOK, checklists)
}

// UpdateChecklistItem sets an item's status. Any status is reachable from any
// other so users can correct mistakes; repeating a status is a no-op success.
func UpdateChecklistItem(c *gin.Context) {
	var item models.ChecklistItem
	if err := utils.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Checklist item not found"})
		return
	}

	var input updateItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if !models.ValidChecklistItemStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid checklist item status"})
		return
	}

	if item.Status != input.Status {
		if err := utils.DB.Model(&item).Update("status", input.Status).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update checklist item"})
			return
		}
		item.Status = input.Status
	}

	c.JSON(http.StatusOK, item)
}
