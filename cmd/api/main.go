package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/nmwangi/assetflow-api/internal/application/service"
	"github.com/nmwangi/assetflow-api/internal/config"
	"github.com/nmwangi/assetflow-api/internal/infrastructure/database"
	"github.com/nmwangi/assetflow-api/internal/infrastructure/repository"
	"github.com/nmwangi/assetflow-api/internal/presentation/http/handler"
	"github.com/nmwangi/assetflow-api/internal/presentation/http/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	vendorRepo := repository.NewVendorRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	categoryRepo := repository.NewAssetCategoryRepository(db)
	subcategoryRepo := repository.NewAssetSubcategoryRepository(db)
	manufacturerRepo := repository.NewManufacturerRepository(db)
	grnRepo := repository.NewGRNRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	vendorService := service.NewVendorService(vendorRepo)
	branchService := service.NewBranchService(branchRepo)
	categoryService := service.NewCategoryService(categoryRepo, subcategoryRepo)
	manufacturerService := service.NewManufacturerService(manufacturerRepo)
	grnService := service.NewGRNService(grnRepo, vendorRepo, branchRepo, subcategoryRepo)
	exchangeService := service.NewExchangeService(grnRepo, vendorRepo, branchRepo, subcategoryRepo)
	reportService := service.NewReportService(grnRepo)
	dashboardService := service.NewDashboardService(grnRepo, vendorRepo, branchRepo, categoryRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Vendor:       handler.NewVendorHandler(vendorService),
		Branch:       handler.NewBranchHandler(branchService),
		Category:     handler.NewCategoryHandler(categoryService),
		Manufacturer: handler.NewManufacturerHandler(manufacturerService),
		GRN:          handler.NewGRNHandler(grnService, exchangeService, cfg.Import.MaxFileSize),
		Report:       handler.NewReportHandler(reportService),
		Dashboard:    handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
