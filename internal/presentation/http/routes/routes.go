package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nmwangi/assetflow-api/internal/config"
	domainRepo "github.com/nmwangi/assetflow-api/internal/domain/repository"
	"github.com/nmwangi/assetflow-api/internal/presentation/http/handler"
	"github.com/nmwangi/assetflow-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Vendor       *handler.VendorHandler
	Branch       *handler.BranchHandler
	Category     *handler.CategoryHandler
	Manufacturer *handler.ManufacturerHandler
	GRN          *handler.GRNHandler
	Report       *handler.ReportHandler
	Dashboard    *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Per-client rate limiter
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		// Dashboard
		v1.GET("/dashboard", h.Dashboard.Stats)

		registerMasterDataRoutes(v1, h)
		registerGRNRoutes(v1, h, deps)
		registerReportRoutes(v1, h)
	}

	return router
}

func registerMasterDataRoutes(v1 *gin.RouterGroup, h *Handlers) {
	vendors := v1.Group("/vendors")
	{
		vendors.GET("", h.Vendor.List)
		vendors.POST("", h.Vendor.Create)
		vendors.GET("/:id", h.Vendor.Get)
		vendors.PUT("/:id", h.Vendor.Update)
		vendors.DELETE("/:id", h.Vendor.Delete)
	}

	branches := v1.Group("/branches")
	{
		branches.GET("", h.Branch.List)
		branches.POST("", h.Branch.Create)
		branches.GET("/:id", h.Branch.Get)
		branches.PUT("/:id", h.Branch.Update)
		branches.DELETE("/:id", h.Branch.Delete)
	}

	categories := v1.Group("/asset-categories")
	{
		categories.GET("", h.Category.List)
		categories.POST("", h.Category.Create)
		categories.GET("/:id", h.Category.Get)
		categories.PUT("/:id", h.Category.Update)
		categories.DELETE("/:id", h.Category.Delete)
	}

	subcategories := v1.Group("/asset-subcategories")
	{
		subcategories.GET("", h.Category.ListSubcategories)
		subcategories.POST("", h.Category.CreateSubcategory)
		subcategories.GET("/:id", h.Category.GetSubcategory)
		subcategories.PUT("/:id", h.Category.UpdateSubcategory)
		subcategories.DELETE("/:id", h.Category.DeleteSubcategory)
	}

	manufacturers := v1.Group("/manufacturers")
	{
		manufacturers.GET("", h.Manufacturer.List)
		manufacturers.POST("", h.Manufacturer.Create)
		manufacturers.GET("/:id", h.Manufacturer.Get)
		manufacturers.PUT("/:id", h.Manufacturer.Update)
		manufacturers.DELETE("/:id", h.Manufacturer.Delete)
	}
}

func registerGRNRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	grns := v1.Group("/grns")
	{
		grns.GET("", h.GRN.List)
		// GRN creation uses idempotency middleware to prevent duplicates
		grns.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.GRN.Create)
		grns.POST("/import", h.GRN.Import)
		grns.GET("/template", h.GRN.Template)
		grns.GET("/:id", h.GRN.Get)
		grns.PUT("/:id", h.GRN.Update)
		grns.DELETE("/:id", h.GRN.Delete)
		grns.GET("/:id/export", h.GRN.Export)
	}
}

func registerReportRoutes(v1 *gin.RouterGroup, h *Handlers) {
	reports := v1.Group("/reports")
	{
		reports.GET("/grns", h.Report.GRNRegister)
		reports.GET("/grns/export", h.Report.ExportGRNRegister)
	}
}
