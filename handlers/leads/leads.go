package leads

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Parmjot23/mortgageHelper/models"
	"github.com/Parmjot23/mortgageHelper/utils"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// taskDisplayOrder puts open tasks first, then nearest due date, then newest.
const taskDisplayOrder = "CASE WHEN status = 'OPEN' THEN 0 ELSE 1 END, due_at IS NULL, due_at asc, created_at desc"

const noteDisplayOrder = "pinned desc, created_at desc"

type createLeadInput struct {
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	SourceType *string `json:"sourceType"`
	ReferrerID *uint   `json:"referrerId"`
	LeadType   *string `json:"leadType"`
}

type updateLeadInput struct {
	FirstName         *string  `json:"firstName"`
	LastName          *string  `json:"lastName"`
	Email             *string  `json:"email"`
	Phone             *string  `json:"phone"`
	SourceType        *string  `json:"sourceType"`
	ReferrerID        *uint    `json:"referrerId"`
	LeadType          *string  `json:"leadType"`
	Stage             *string  `json:"stage"`
	ApplicationStatus *string  `json:"applicationStatus"`
	PropertyValue     *float64 `json:"propertyValue"`
	DownPayment       *float64 `json:"downPayment"`
	LoanAmount        *float64 `json:"loanAmount"`
	InterestRate      *float64 `json:"interestRate"`
	TermYears         *int     `json:"termYears"`
	MonthlyIncome     *float64 `json:"monthlyIncome"`
	MonthlyDebts      *float64 `json:"monthlyDebts"`
	CreditScore       *int     `json:"creditScore"`
	GdsRatio          *float64 `json:"gdsRatio"`
	TdsRatio          *float64 `json:"tdsRatio"`
}

// includeOptions is the recognized set of related collections a caller may ask
// the list endpoint to summarize.
type includeOptions struct {
	Tasks      bool
	Notes      bool
	Checklists bool
}

func parseIncludes(raw string) includeOptions {
	var opts includeOptions
	for _, part := range strings.Split(raw, ",") {
		switch strings.TrimSpace(part) {
		case "tasks":
			opts.Tasks = true
		case "notes":
			opts.Notes = true
		case "checklists":
			opts.Checklists = true
		}
	}
	return opts
}

// CreateLead runs the intake form. Stage and application status always start
// at their defaults; callers cannot set them here.
func CreateLead(c *gin.Context) {
	var input createLeadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if strings.TrimSpace(input.FirstName) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "First name is required"})
		return
	}
	if strings.TrimSpace(input.LastName) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Last name is required"})
		return
	}

	lead := models.Lead{
		FirstName:         strings.TrimSpace(input.FirstName),
		LastName:          strings.TrimSpace(input.LastName),
		Phone:             input.Phone,
		SourceType:        models.SourceTypeOther,
		LeadType:          models.LeadTypePurchase,
		Stage:             models.StageNew,
		ApplicationStatus: models.AppStatusNotStarted,
	}

	if input.Email != nil && *input.Email != "" {
		if !emailPattern.MatchString(*input.Email) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email address"})
			return
		}
		lead.Email = input.Email
	}

	if input.SourceType != nil {
		if !models.ValidSourceType(*input.SourceType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid source type"})
			return
		}
		lead.SourceType = *input.SourceType
	}

	if input.LeadType != nil {
		if !models.ValidLeadType(*input.LeadType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lead type"})
			return
		}
		lead.LeadType = *input.LeadType
	}

	if input.ReferrerID != nil {
		var referrer models.Referrer
		if err := utils.DB.First(&referrer, *input.ReferrerID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Referrer not found"})
			return
		}
		lead.ReferrerID = input.ReferrerID
	}

	if err := utils.DB.Create(&lead).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create lead"})
		return
	}

	c.JSON(http.StatusCreated, lead)
}

// GetLeads returns the list view: at most 50 leads, most recently updated
// first, filtered by application status and optionally carrying summarized
// related data so list payloads stay small.
func GetLeads(c *gin.Context) {
	query := utils.DB.Model(&models.Lead{}).Order("updated_at desc").Limit(50)

	if status := c.Query("applicationStatus"); status != "" {
		query = query.Where("application_status = ?", status)
	}

	var leads []models.Lead
	if err := query.Preload("Referrer").Find(&leads).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leads"})
		return
	}

	opts := parseIncludes(c.Query("include"))
	if len(leads) > 0 {
		if err := attachSummaries(utils.DB, leads, opts); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leads"})
			return
		}
	}

	c.JSON(http.StatusOK, leads)
}

// attachSummaries fills in abbreviated related collections: the 3 nearest open
// tasks and the 2 newest notes per lead, plus full checklists.
func attachSummaries(db *gorm.DB, leads []models.Lead, opts includeOptions) error {
	ids := make([]uint, len(leads))
	index := make(map[uint]*models.Lead, len(leads))
	for i := range leads {
		ids[i] = leads[i].ID
		index[leads[i].ID] = &leads[i]
	}

	if opts.Tasks {
		var tasks []models.Task
		err := db.Where("lead_id IN ? AND status = ?", ids, models.TaskStatusOpen).
			Order("due_at IS NULL, due_at asc").Find(&tasks).Error
		if err != nil {
			return err
		}
		for _, task := range tasks {
			lead := index[task.LeadID]
			if len(lead.Tasks) < 3 {
				lead.Tasks = append(lead.Tasks, task)
			}
		}
	}

	if opts.Notes {
		var notes []models.Note
		err := db.Where("lead_id IN ?", ids).Order("created_at desc").Find(&notes).Error
		if err != nil {
			return err
		}
		for _, note := range notes {
			lead := index[note.LeadID]
			if len(lead.Notes) < 2 {
				lead.Notes = append(lead.Notes, note)
			}
		}
	}

	if opts.Checklists {
		var checklists []models.Checklist
		err := db.Where("lead_id IN ?", ids).Order("created_at desc").
			Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order asc") }).
			Find(&checklists).Error
		if err != nil {
			return err
		}
		for _, checklist := range checklists {
			lead := index[checklist.LeadID]
			lead.Checklists = append(lead.Checklists, checklist)
		}
	}

	return nil
}

// GetLead returns the full detail view with every related collection loaded
// in its display order.
func GetLead(c *gin.Context) {
	var lead models.Lead
	err := utils.DB.
		Preload("Referrer").
		Preload("Tasks", func(db *gorm.DB) *gorm.DB { return db.Order(taskDisplayOrder) }).
		Preload("Notes", func(db *gorm.DB) *gorm.DB { return db.Order(noteDisplayOrder) }).
		Preload("Emails", func(db *gorm.DB) *gorm.DB { return db.Order("created_at desc") }).
		Preload("Checklists", func(db *gorm.DB) *gorm.DB { return db.Order("created_at desc") }).
		Preload("Checklists.Items", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order asc") }).
		First(&lead, c.Param("id")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		return
	}

	c.JSON(http.StatusOK, lead)
}

// UpdateLead applies any subset of mutable fields in a single write.
func UpdateLead(c *gin.Context) {
	var lead models.Lead
	if err := utils.DB.First(&lead, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		return
	}

	var input updateLeadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	updates := map[string]interface{}{}

	if input.FirstName != nil {
		if strings.TrimSpace(*input.FirstName) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "First name is required"})
			return
		}
		updates["first_name"] = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		if strings.TrimSpace(*input.LastName) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Last name is required"})
			return
		}
		updates["last_name"] = strings.TrimSpace(*input.LastName)
	}
	if input.Email != nil {
		if *input.Email == "" {
			updates["email"] = nil
		} else if !emailPattern.MatchString(*input.Email) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email address"})
			return
		} else {
			updates["email"] = *input.Email
		}
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.SourceType != nil {
		if !models.ValidSourceType(*input.SourceType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid source type"})
			return
		}
		updates["source_type"] = *input.SourceType
	}
	if input.ReferrerID != nil {
		var referrer models.Referrer
		if err := utils.DB.First(&referrer, *input.ReferrerID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Referrer not found"})
			return
		}
		updates["referrer_id"] = *input.ReferrerID
	}
	if input.LeadType != nil {
		if !models.ValidLeadType(*input.LeadType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lead type"})
			return
		}
		updates["lead_type"] = *input.LeadType
	}
	if input.Stage != nil {
		if !models.ValidStage(*input.Stage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stage"})
			return
		}
		updates["stage"] = *input.Stage
	}
	if input.ApplicationStatus != nil {
		if !models.ValidApplicationStatus(*input.ApplicationStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application status"})
			return
		}
		updates["application_status"] = *input.ApplicationStatus
	}

	if input.PropertyValue != nil {
		updates["property_value"] = *input.PropertyValue
	}
	if input.DownPayment != nil {
		updates["down_payment"] = *input.DownPayment
	}
	if input.LoanAmount != nil {
		updates["loan_amount"] = *input.LoanAmount
	}
	if input.InterestRate != nil {
		updates["interest_rate"] = *input.InterestRate
	}
	if input.TermYears != nil {
		updates["term_years"] = *input.TermYears
	}
	if input.MonthlyIncome != nil {
		updates["monthly_income"] = *input.MonthlyIncome
	}
	if input.MonthlyDebts != nil {
		updates["monthly_debts"] = *input.MonthlyDebts
	}
	if input.CreditScore != nil {
		updates["credit_score"] = *input.CreditScore
	}
	if input.GdsRatio != nil {
		updates["gds_ratio"] = *input.GdsRatio
	}
	if input.TdsRatio != nil {
		updates["tds_ratio"] = *input.TdsRatio
	}

	if len(updates) > 0 {
		if err := utils.DB.Model(&lead).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update lead"})
			return
		}
		if err := utils.DB.First(&lead, lead.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update lead"})
			return
		}
	}

	c.JSON(http.StatusOK, lead)
}

// DeleteLead removes a lead and everything it owns in one transaction. A
// failure partway leaves the lead and all sub-records intact.
func DeleteLead(c *gin.Context) {
	var lead models.Lead
	if err := utils.DB.First(&lead, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		return
	}

	err := utils.DB.Transaction(func(tx *gorm.DB) error {
		var checklistIDs []uint
		if err := tx.Model(&models.Checklist{}).Where("lead_id = ?", lead.ID).Pluck("id", &checklistIDs).Error; err != nil {
			return err
		}
		if len(checklistIDs) > 0 {
			if err := tx.Where("checklist_id IN ?", checklistIDs).Delete(&models.ChecklistItem{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("lead_id = ?", lead.ID).Delete(&models.Checklist{}).Error; err != nil {
			return err
		}
		if err := tx.Where("lead_id = ?", lead.ID).Delete(&models.Note{}).Error; err != nil {
			return err
		}
		if err := tx.Where("lead_id = ?", lead.ID).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where("lead_id = ?", lead.ID).Delete(&models.EmailMessage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&lead).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete lead"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Lead deleted successfully"})
}
