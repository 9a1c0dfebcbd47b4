package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Parmjot23/mortgageHelper/models"
	"github.com/Parmjot23/mortgageHelper/utils"
)

// SetupDB points utils.DB at a fresh in-memory SQLite database with the full
// schema migrated. Each call gives the test its own isolated database.
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to access test database: %v", err)
	}
	// A pooled second connection would see an empty :memory: database.
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
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
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	utils.DB = db
	return db
}
