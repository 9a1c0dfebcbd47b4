package emails

import (
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Parmjot23/mortgageHelper/models"
	"github.com/Parmjot23/mortgageHelper/utils"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// sendEmail is swapped out by tests.
var sendEmail = utils.SendLeadEmail

type sendEmailInput struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// SendEmail records an outbound email attempt for a lead and delivers it.
// The QUEUED record is written first; delivery success or failure is then
// stamped onto it, so every attempt is kept regardless of outcome.
func SendEmail(c *gin.Context) {
	var lead models.Lead
	if err := utils.DB.First(&lead, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		return
	}

	var input sendEmailInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if !emailPattern.MatchString(input.To) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipient address"})
		return
	}
	if strings.TrimSpace(input.Subject) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Subject is required"})
		return
	}
	if strings.TrimSpace(input.Body) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Body is required"})
		return
	}

	message := models.EmailMessage{
		LeadID:  lead.ID,
		To:      input.To,
		Subject: input.Subject,
		Body:    input.Body,
		Status:  models.EmailStatusQueued,
	}
	if err := utils.DB.Create(&message).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record email"})
		return
	}

	if err := sendEmail(input.To, input.Subject, input.Body); err != nil {
		if dbErr := utils.DB.Model(&message).Update("status", models.EmailStatusFailed).Error; dbErr != nil {
			log.Printf("Failed to mark email %d as failed: %v", message.ID, dbErr)
		}
		message.Status = models.EmailStatusFailed
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send email", "email": message})
		return
	}

	now := time.Now()
	if err := utils.DB.Model(&message).Updates(map[string]interface{}{
		"status":  models.EmailStatusSent,
		"sent_at": now,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record email"})
		return
	}
	message.Status = models.EmailStatusSent
	message.SentAt = &now

	c.JSON(http.StatusCreated, message)
}

// GetEmails lists a lead's email history, newest first.
func GetEmails(c *gin.Context) {
	var lead models.Lead
	if err := utils.DB.First(&lead, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		return
	}

	var messages []models.EmailMessage
	err := utils.DB.Where("lead_id = ?", lead.ID).Order("created_at desc").Find(&messages).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch emails"})
		return
	}

	c.JSON(http.StatusOK, messages)
}
