package seed

import (
	"errors"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Parmjot23/mortgageHelper/models"
	"github.com/Parmjot23/mortgageHelper/utils"
)

// SeedAdminUser creates the broker account from ADMIN_EMAIL/ADMIN_PASSWORD if
// it does not exist yet.
func SeedAdminUser() error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL or ADMIN_PASSWORD not set. Skipping admin user seeding.")
		return nil
	}

	var existing models.User
	err := utils.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{
		Name:     "Broker",
		Email:    email,
		Password: string(hash),
	}
	if err := utils.DB.Create(&user).Error; err != nil {
		return err
	}

	log.Println("Admin user seeded successfully.")
	return nil
}

// SeedChecklistTemplates inserts the standard document templates once. If any
// template already exists, seeding is skipped so edits survive restarts.
func SeedChecklistTemplates() error {
	var count int64
	if err := utils.DB.Model(&models.ChecklistTemplate{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Checklist templates already exist. Skipping seeding.")
		return nil
	}

	templates := []models.ChecklistTemplate{
		{
			Name:     "Purchase Application Documents",
			LeadType: models.LeadTypePurchase,
			Items: buildItems([]seedItem{
				{"Notice of Assessment (NOA) - Last 2 years", true},
				{"Pay stubs - Last 30 days", true},
				{"Employment letter - Current position", true},
				{"Bank statements - Last 3 months", true},
				{"Credit report consent", true},
				{"Identification (Driver's License/Passport)", true},
				{"Proof of address (Utility bill)", true},
				{"Property purchase agreement", true},
				{"Property appraisal report", true},
				{"Down payment proof/bank draft", true},
				{"Mortgage pre-approval letter", true},
				{"Divorce decree (if applicable)", false},
			}),
		},
		{
			Name:     "Refinance Application Documents",
			LeadType: models.LeadTypeRefinance,
			Items: buildItems([]seedItem{
				{"Notice of Assessment (NOA) - Last 2 years", true},
				{"Pay stubs - Last 30 days", true},
				{"Employment letter - Current position", true},
				{"Bank statements - Last 3 months", true},
				{"Credit report consent", true},
				{"Identification (Driver's License/Passport)", true},
				{"Proof of address (Utility bill)", true},
				{"Current mortgage statement", true},
				{"Property tax assessment", true},
				{"Property appraisal report (if required)", false},
				{"Home insurance policy", true},
				{"Property title/deed", true},
				{"Divorce decree (if applicable)", false},
			}),
		},
		{
			Name:     "Renewal Application Documents",
			LeadType: models.LeadTypeRenewal,
			Items: buildItems([]seedItem{
				{"Notice of Assessment (NOA) - Last 2 years", true},
				{"Pay stubs - Last 30 days", true},
				{"Employment letter - Current position", true},
				{"Bank statements - Last 3 months", true},
				{"Credit report consent", true},
				{"Identification (Driver's License/Passport)", true},
				{"Proof of address (Utility bill)", true},
				{"Current mortgage statement", true},
				{"Property tax assessment", true},
				{"Home insurance policy", true},
				{"Property title/deed", false},
				{"Divorce decree (if applicable)", false},
			}),
		},
		{
			Name:     "Equity Line Application Documents",
			LeadType: models.LeadTypeEquityLine,
			Items: buildItems([]seedItem{
				{"Notice of Assessment (NOA) - Last 2 years", true},
				{"Pay stubs - Last 30 days", true},
				{"Employment letter - Current position", true},
				{"Bank statements - Last 3 months", true},
				{"Credit report consent", true},
				{"Identification (Driver's License/Passport)", true},
				{"Proof of address (Utility bill)", true},
				{"Current mortgage statement", true},
				{"Property tax assessment", true},
				{"Property appraisal report", true},
				{"Home insurance policy", true},
				{"Property title/deed", true},
				{"Equity line purpose statement", true},
				{"Divorce decree (if applicable)", false},
			}),
		},
		{
			Name:     "General Application Documents",
			LeadType: models.LeadTypeOther,
			Items: buildItems([]seedItem{
				{"Notice of Assessment (NOA) - Last 2 years", true},
				{"Pay stubs - Last 30 days", true},
				{"Employment letter - Current position", true},
				{"Bank statements - Last 3 months", true},
				{"Credit report consent", true},
				{"Identification (Driver's License/Passport)", true},
				{"Proof of address (Utility bill)", true},
				{"Additional documents as required", false},
				{"Divorce decree (if applicable)", false},
			}),
		},
	}

	for i := range templates {
		if err := utils.DB.Create(&templates[i]).Error; err != nil {
			return err
		}
	}

	log.Println("Checklist templates seeded successfully.")
	return nil
}

type seedItem struct {
	label    string
	required bool
}

func buildItems(items []seedItem) []models.ChecklistItemTemplate {
	out := make([]models.ChecklistItemTemplate, 0, len(items))
	for i, item := range items {
		out = append(out, models.ChecklistItemTemplate{
			Label:     item.label,
			Required:  item.required,
			SortOrder: i + 1,
		})
	}
	return out
}
