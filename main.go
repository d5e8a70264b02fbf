package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/preorder-hq/backoffice-api/config"
	"github.com/preorder-hq/backoffice-api/controllers"
	"github.com/preorder-hq/backoffice-api/middleware"
	"github.com/preorder-hq/backoffice-api/models"
	"github.com/preorder-hq/backoffice-api/services"
)

func main() {
	// Basic logging
	log.Println("Starting Pre-Order Back-Office API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	db := config.GetDB()
	if err := db.AutoMigrate(
		&models.UserProfile{},
		&models.Customer{},
		&models.Flight{},
		&models.PreOrder{},
		&models.Payment{},
		&models.Transaction{},
		&models.Reminder{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	// Initialize receipt storage; the API still works without it, receipt
	// endpoints report STORAGE_UNAVAILABLE
	if cfg.AWSS3Bucket != "" {
		if _, err := services.InitS3Service(); err != nil {
			log.Printf("Failed to initialize S3 service: %v", err)
		}
	} else {
		log.Println("AWS_S3_BUCKET not set, receipt storage disabled")
	}

	router := setupRouter(cfg)

	// Start server
	port := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter builds the Gin engine with all routes and middleware attached
func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	// The dashboard frontend runs on a separate origin
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.CORSOrigin}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Health check endpoint
		v1.GET("/health", healthCheck)

		// Database status endpoint
		v1.GET("/database/status", databaseStatus)

		// Bootstrap admin designation; guarded by the shared setup secret,
		// not by the role gate
		v1.POST("/admin/setup", controllers.AdminSetup)
	}

	// Everything else requires a valid session
	authed := v1.Group("")
	authed.Use(middleware.EnsureValidToken(cfg))
	{
		authed.GET("/pre-orders", controllers.ListPreOrders)
		authed.POST("/pre-orders", controllers.CreatePreOrder)
		authed.GET("/pre-orders/:id", controllers.GetPreOrder)
		authed.PUT("/pre-orders/:id", controllers.UpdatePreOrder)
		authed.DELETE("/pre-orders/:id", controllers.DeletePreOrder)

		authed.GET("/customers", controllers.ListCustomers)
		authed.POST("/customers", controllers.CreateCustomer)
		authed.GET("/customers/:id", controllers.GetCustomer)
		authed.PUT("/customers/:id", controllers.UpdateCustomer)
		authed.DELETE("/customers/:id", controllers.DeleteCustomer)

		authed.GET("/flights", controllers.ListFlights)
		authed.POST("/flights", controllers.CreateFlight)
		authed.GET("/flights/:id", controllers.GetFlight)
		authed.PUT("/flights/:id", controllers.UpdateFlight)
		authed.DELETE("/flights/:id", controllers.DeleteFlight)

		authed.GET("/transactions", controllers.ListTransactions)
		authed.POST("/transactions", controllers.CreateTransaction)
		authed.GET("/transactions/:id", controllers.GetTransaction)
		authed.PUT("/transactions/:id", controllers.UpdateTransaction)
		authed.DELETE("/transactions/:id", controllers.DeleteTransaction)

		authed.GET("/payments", controllers.ListPayments)
		authed.POST("/payments", controllers.CreatePayment)
		authed.PUT("/payments/:id", controllers.UpdatePayment)
		authed.DELETE("/payments/:id", controllers.DeletePayment)
		authed.PATCH("/payments/:id/tally", controllers.TallyPayment)
		authed.POST("/payments/:id/receipt", controllers.UploadReceipt)

		authed.GET("/reminders", controllers.ListReminders)
		authed.POST("/reminders", controllers.CreateReminder)
		authed.PUT("/reminders/:id", controllers.UpdateReminder)
		authed.PATCH("/reminders/:id/status", controllers.MoveReminder)
		authed.DELETE("/reminders/:id", controllers.DeleteReminder)

		authed.GET("/users/me", controllers.GetMyProfile)
		authed.PUT("/users/me", controllers.UpdateMyProfile)
		authed.GET("/users", middleware.RequireAdmin(), controllers.ListUsers)
		authed.PUT("/users/:id/role", controllers.UpdateUserRole)
	}

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Pre-Order Back-Office API is running",
	})
}

// databaseStatus checks database connectivity and returns table information
func databaseStatus(c *gin.Context) {
	db := config.GetDB()

	// Get the underlying SQL database to check connection
	sqlDB, err := db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to get database instance",
			},
		})
		return
	}

	// Ping the database to verify connection
	if err := sqlDB.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_CONNECTION_ERROR",
				"message": "Database connection failed",
			},
		})
		return
	}

	// Get list of tables
	var tables []string
	if err := db.Raw("SELECT tablename FROM pg_tables WHERE schemaname = 'public'").Scan(&tables).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_QUERY_ERROR",
				"message": "Failed to query tables",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connected",
		"tables":  tables,
	})
}
