package migrations

import (
	"github.com/Parmjot23/mortgageHelper/models"
	"github.com/Parmjot23/mortgageHelper/utils"
)

// MigrateAll creates or updates every table the CRM owns.
func MigrateAll() error {
	return utils.DB.AutoMigrate(
		&models.User{},
		&models.Referrer{},
		&models.Lead{},
		&models.Note{},
		&models.Task{},
		&models.EmailMessage{},
		&models.ChecklistTemplate{},
		&models.ChecklistItemTemplate{},
		&models.Checklist{},
		&models.ChecklistItem{},
	)
}
