package referrers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Parmjot23/mortgageHelper/models"
	"github.com/Parmjot23/mortgageHelper/utils"
)

type createReferrerInput struct {
	Name string `json:"name"`
}

type updateReferrerInput struct {
	Name     *string `json:"name"`
	IsActive *bool   `json:"isActive"`
}

// CreateReferrer registers a bank referral source. Re-registering a name that
// belongs to a deactivated referrer reactivates it instead of duplicating.
func CreateReferrer(c *gin.Context) {
	var input createReferrerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Referrer name is required"})
		return
	}
	if len(name) > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Referrer name must be 100 characters or fewer"})
		return
	}

	var existing models.Referrer
	err := utils.DB.Where("name = ?", name).First(&existing).Error
	if err == nil {
		if existing.IsActive {
			c.JSON(http.StatusConflict, gin.H{"error": "Referrer with this name already exists"})
			return
		}
		existing.IsActive = true
		if err := utils.DB.Save(&existing).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reactivate referrer"})
			return
		}
		c.JSON(http.StatusOK, existing)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create referrer"})
		return
	}

	referrer := models.Referrer{Name: name, IsActive: true}
	if err := utils.DB.Create(&referrer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create referrer"})
		return
	}

	c.JSON(http.StatusCreated, referrer)
}

// GetReferrers lists referrers ordered by name. Inactive ones are hidden
// unless ?all=true is passed.
func GetReferrers(c *gin.Context) {
	query := utils.DB.Order("name asc")
	if c.Query("all") != "true" {
		query = query.Where("is_active = ?", true)
	}

	var referrers []models.Referrer
	if err := query.Find(&referrers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch referrers"})
		return
	}

	c.JSON(http.StatusOK, referrers)
}

// UpdateReferrer applies a partial update to name and/or active flag.
func UpdateReferrer(c *gin.Context) {
	var referrer models.Referrer
	if err := utils.DB.First(&referrer, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Referrer not found"})
		return
	}

	var input updateReferrerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Referrer name is required"})
			return
		}
		if len(name) > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Referrer name must be 100 characters or fewer"})
			return
		}
		var other models.Referrer
		err := utils.DB.Where("name = ? AND id <> ?", name, referrer.ID).First(&other).Error
		if err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Referrer with this name already exists"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update referrer"})
			return
		}
		updates["name"] = name
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}

	if len(updates) > 0 {
		if err := utils.DB.Model(&referrer).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update referrer"})
			return
		}
		if err := utils.DB.First(&referrer, referrer.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update referrer"})
			return
		}
	}

	c.JSON(http.StatusOK, referrer)
}

// DeactivateReferrer soft-deletes a referrer. The row stays so historical
// leads keep their attribution.
func DeactivateReferrer(c *gin.Context) {
	var referrer models.Referrer
	if err := utils.DB.First(&referrer, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Referrer not found"})
		return
	}

	if err := utils.DB.Model(&referrer).Update("is_active", false).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate referrer"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Referrer deactivated successfully"})
}

// GetReferrerLeads returns a referrer's leads filtered by application status,
// creation date range, and a free-text search over name, email and phone.
func GetReferrerLeads(c *gin.Context) {
	var referrer models.Referrer
	if err := utils.DB.First(&referrer, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Referrer not found"})
		return
	}

	query := utils.DB.Where("referrer_id = ?", referrer.ID)

	if status := c.Query("status"); status != "" && status != "all" {
		query = query.Where("application_status = ?", status)
	}

	if startDate := c.Query("startDate"); startDate != "" {
		if t, err := time.Parse(time.RFC3339, startDate); err == nil {
			query = query.Where("created_at >= ?", t)
		}
	}
	if endDate := c.Query("endDate"); endDate != "" {
		if t, err := time.Parse(time.RFC3339, endDate); err == nil {
			query = query.Where("created_at <= ?", t)
		}
	}

	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ? OR phone LIKE ?",
			pattern, pattern, pattern, "%"+search+"%",
		)
	}

	var leads []models.Lead
	if err := query.Preload("Referrer").Order("created_at desc").Find(&leads).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch referrer leads"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"referrer":   referrer,
		"leads":      leads,
		"totalCount": len(leads),
	})
}
