package main

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Parmjot23/mortgageHelper/handlers/assistant"
	"github.com/Parmjot23/mortgageHelper/handlers/auth"
	"github.com/Parmjot23/mortgageHelper/handlers/calculator"
	"github.com/Parmjot23/mortgageHelper/handlers/checklists"
	"github.com/Parmjot23/mortgageHelper/handlers/dashboard"
	"github.com/Parmjot23/mortgageHelper/handlers/emails"
	"github.com/Parmjot23/mortgageHelper/handlers/leads"
	"github.com/Parmjot23/mortgageHelper/handlers/notes"
	"github.com/Parmjot23/mortgageHelper/handlers/referrers"
	"github.com/Parmjot23/mortgageHelper/handlers/tasks"
	"github.com/Parmjot23/mortgageHelper/handlers/templates"
	"github.com/Parmjot23/mortgageHelper/middleware"
	"github.com/Parmjot23/mortgageHelper/migrations"
	"github.com/Parmjot23/mortgageHelper/seed"
	"github.com/Parmjot23/mortgageHelper/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env file:", err)
	}
}

func main() {
	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		allowedOrigins = strings.Split(origins, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RequestID())

	utils.ConnectDatabase()

	if err := migrations.MigrateAll(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Seed Initial Data
	if err := seed.SeedAdminUser(); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}
	if err := seed.SeedChecklistTemplates(); err != nil {
		log.Fatalf("Failed to seed checklist templates: %v", err)
	}

	r.POST("/login", auth.Login)
	r.POST("/logout", auth.AuthMiddleware(), auth.Logout)

	protected := r.Group("/")
	protected.Use(auth.AuthMiddleware())
	{
		leads.RegisterLeadsRoutes(protected)
		referrers.RegisterReferrersRoutes(protected)
		templates.RegisterTemplatesRoutes(protected)
		checklists.RegisterChecklistsRoutes(protected)
		tasks.RegisterTasksRoutes(protected)
		notes.RegisterNotesRoutes(protected)
		emails.RegisterEmailsRoutes(protected)
		dashboard.RegisterDashboardRoutes(protected)
		calculator.RegisterCalculatorRoutes(protected)
		assistant.RegisterAssistantRoutes(protected)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
