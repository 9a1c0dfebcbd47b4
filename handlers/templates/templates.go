package templates

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Parmjot23/mortgageHelper/models"
	"github.com/Parmjot23/mortgageHelper/utils"
)

type templateItemInput struct {
	Label     string `json:"label"`
	Required  *bool  `json:"required"`
	SortOrder *int   `json:"sortOrder"`
}

type createTemplateInput struct {
	Name     string              `json:"name"`
	LeadType string              `json:"leadType"`
	Items    []templateItemInput `json:"items"`
}

type updateTemplateInput struct {
	Name     *string              `json:"name"`
	LeadType *string              `json:"leadType"`
	Items    *[]templateItemInput `json:"items"`
}

// buildItemTemplates validates and converts an incoming item set. SortOrder
// defaults to the item's position in the array.
func buildItemTemplates(templateID uint, inputs []templateItemInput) ([]models.ChecklistItemTemplate, string) {
	if len(inputs) == 0 {
		return nil, "At least one checklist item is required"
	}

	items := make([]models.ChecklistItemTemplate, 0, len(inputs))
	for i, in := range inputs {
		if strings.TrimSpace(in.Label) == "" {
			return nil, "Item label is required"
		}
		item := models.ChecklistItemTemplate{
			TemplateID: templateID,
			Label:      strings.TrimSpace(in.Label),
			Required:   true,
			SortOrder:  i,
		}
		if in.Required != nil {
			item.Required = *in.Required
		}
		if in.SortOrder != nil {
			item.SortOrder = *in.SortOrder
		}
		items = append(items, item)
	}
	return items, ""
}

// CreateTemplate authors a new document checklist template with its item set.
func CreateTemplate(c *gin.Context) {
	var input createTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if strings.TrimSpace(input.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Template name is required"})
		return
	}
	if !models.ValidLeadType(input.LeadType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lead type"})
		return
	}

	items, msg := buildItemTemplates(0, input.Items)
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	template := models.ChecklistTemplate{
		Name:     strings.TrimSpace(input.Name),
		LeadType: input.LeadType,
		Items:    items,
	}

	if err := utils.DB.Create(&template).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checklist template"})
		return
	}

	template.ItemCount = len(template.Items)
	c.JSON(http.StatusCreated, template)
}

// GetTemplates lists all templates, name ascending, with their items and
// item counts.
func GetTemplates(c *gin.Context) {
	var templates []models.ChecklistTemplate
	err := utils.DB.Order("name asc").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order asc") }).
		Find(&templates).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch checklist templates"})
		return
	}

	for i := range templates {
		templates[i].ItemCount = len(templates[i].Items)
	}

	c.JSON(http.StatusOK, templates)
}

// UpdateTemplate updates scalar fields and, when items are supplied, replaces
// the whole item set in a single transaction. Validation happens before any
// write so a bad set never leaves the template half-replaced.
func UpdateTemplate(c *gin.Context) {
	var template models.ChecklistTemplate
	if err := utils.DB.First(&template, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Checklist template not found"})
		return
	}

	var input updateTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Template name is required"})
			return
		}
		updates["name"] = strings.TrimSpace(*input.Name)
	}
	if input.LeadType != nil {
		if !models.ValidLeadType(*input.LeadType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lead type"})
			return
		}
		updates["lead_type"] = *input.LeadType
	}

	var newItems []models.ChecklistItemTemplate
	if input.Items != nil {
		var msg string
		newItems, msg = buildItemTemplates(template.ID, *input.Items)
		if msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
	}

	err := utils.DB.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&template).Updates(updates).Error; err != nil {
				return err
			}
		}
		if input.Items != nil {
			if err := tx.Where("template_id = ?", template.ID).Delete(&models.ChecklistItemTemplate{}).Error; err != nil {
				return err
			}
			if err := tx.Create(&newItems).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update checklist template"})
		return
	}

	var updated models.ChecklistTemplate
	err = utils.DB.Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order asc") }).
		First(&updated, template.ID).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update checklist template"})
		return
	}

	updated.ItemCount = len(updated.Items)
	c.JSON(http.StatusOK, updated)
}

// DeleteTemplate removes a template and its item templates. Checklists
// already instantiated from it are untouched.
func DeleteTemplate(c *gin.Context) {
	var template models.ChecklistTemplate
	if err := utils.DB.First(&template, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Checklist template not found"})
		return
	}

	err := utils.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("template_id = ?", template.ID).Delete(&models.ChecklistItemTemplate{}).Error; err != nil {
			return err
		}
		return tx.Delete(&template).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete checklist template"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Checklist template deleted successfully"})
}
