package main

import (
	"net/http"

	"github.com/CodeEntraHQ/codeentra-landing-page/internal/handler"
	mid "github.com/CodeEntraHQ/codeentra-landing-page/internal/middleware"
	"github.com/CodeEntraHQ/codeentra-landing-page/internal/seed"
	"github.com/CodeEntraHQ/codeentra-landing-page/internal/upload"
	"github.com/CodeEntraHQ/codeentra-landing-page/pkg/config"
	"github.com/CodeEntraHQ/codeentra-landing-page/pkg/database"
	"github.com/CodeEntraHQ/codeentra-landing-page/pkg/jwtutil"
	"github.com/CodeEntraHQ/codeentra-landing-page/pkg/logger"
	"github.com/CodeEntraHQ/codeentra-landing-page/prometheus"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		// Missing .env is fine; environment variables or the built-in
		// defaults take over.
	}

	// Load configuration
	appConfig, err := config.Load("codeentra-backend")
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	if err := logger.InitLogger(appConfig); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting codeentra-backend",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	// Initialize JWT utility
	jwtutil.Initialize(&appConfig.JWT)
	log.Info("JWT utility initialized")

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database
	err = database.InitDB(appConfig)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	// Seed initial data. A failed seeder is logged and skipped so the
	// server still comes up.
	seed.Run(database.GetDB(), appConfig)

	// Profile photo storage
	store, err := upload.NewStore(appConfig.Upload.Dir, appConfig.Upload.PathPrefix)
	if err != nil {
		log.Fatal("Failed to initialize upload storage", zap.Error(err))
	}
	handler.InitUploadStore(store)

	// Initialize Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handler.HTTPErrorHandler

	// Middleware
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{appConfig.Server.CORSOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
	}))
	e.Use(middleware.BodyLimit("2M"))
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(prometheus.GetPrometheusHandler()))

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Uploaded profile photos are served statically
	e.Static(appConfig.Upload.PathPrefix, appConfig.Upload.Dir)

	registerRoutes(e)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}

func registerRoutes(e *echo.Echo) {
	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", handler.AdminLogin)

	api.POST("/contact", handler.SubmitContact)
	api.POST("/internships", handler.SubmitInternship)

	api.GET("/products", handler.ListProducts)
	api.GET("/services", handler.ListServices)
	api.GET("/testimonials", handler.ListTestimonials)
	api.GET("/updates", handler.ListUpdates)
	api.GET("/pricings", handler.ListPricings)

	api.GET("/faqs", handler.ListFAQs)
	api.GET("/faqs/:id", handler.GetFAQByID)

	api.GET("/contact-info", handler.ListContactInfo)
	api.GET("/footer", handler.ListFooterItems)
	api.GET("/navbar", handler.ListNavbarItems)

	api.GET("/conversations/initial", handler.GetInitialQuestion)
	api.GET("/conversations", handler.GetAllQuestions)
	api.GET("/conversations/:id", handler.GetQuestionByID)

	// Admin routes
	admin := api.Group("/admin", mid.AuthMiddleware)

	admin.GET("/profile", handler.GetAdminProfile)
	admin.PUT("/change-password", handler.ChangePassword)
	admin.PUT("/update-email", handler.UpdateAdminEmail)
	admin.POST("/profile-photo", handler.UploadProfilePhoto)
	admin.DELETE("/profile-photo", handler.DeleteProfilePhoto)

	admin.GET("/contacts", handler.ListContacts)
	admin.DELETE("/contacts/:id", handler.DeleteContact)

	admin.GET("/internships", handler.ListInternships)
	admin.DELETE("/internships/:id", handler.DeleteInternship)

	admin.GET("/notifications", handler.ListNotifications)
	admin.PUT("/notifications/:id/read", handler.MarkNotificationAsRead)
	admin.DELETE("/notifications/:id", handler.DeleteNotification)
	admin.DELETE("/notifications", handler.ClearAllNotifications)

	admin.GET("/products", handler.ListProductsAdmin)
	admin.POST("/products", handler.CreateProduct)
	admin.PUT("/products/:id", handler.UpdateProduct)
	admin.DELETE("/products/:id", handler.DeleteProduct)

	admin.GET("/services", handler.ListServicesAdmin)
	admin.POST("/services", handler.CreateService)
	admin.PUT("/services/:id", handler.UpdateService)
	admin.DELETE("/services/:id", handler.DeleteService)

	admin.GET("/testimonials", handler.ListTestimonialsAdmin)
	admin.POST("/testimonials", handler.CreateTestimonial)
	admin.PUT("/testimonials/:id", handler.UpdateTestimonial)
	admin.DELETE("/testimonials/:id", handler.DeleteTestimonial)

	admin.GET("/updates", handler.ListUpdatesAdmin)
	admin.POST("/updates", handler.CreateUpdate)
	admin.PUT("/updates/:id", handler.UpdateUpdate)
	admin.DELETE("/updates/:id", handler.DeleteUpdate)

	admin.GET("/faqs", handler.ListFAQsAdmin)
	admin.POST("/faqs", handler.CreateFAQ)
	admin.PUT("/faqs/:id", handler.UpdateFAQ)
	admin.DELETE("/faqs/:id", handler.DeleteFAQ)

	admin.GET("/pricings", handler.ListPricingsAdmin)
	admin.PUT("/pricings", handler.UpdatePricing)
	admin.PUT("/pricings/batch", handler.UpdateMultiplePricings)
	admin.DELETE("/pricings/:id", handler.DeletePricing)

	admin.GET("/contact-info", handler.ListContactInfoAdmin)
	admin.POST("/contact-info", handler.CreateContactInfo)
	admin.PUT("/contact-info/:id", handler.UpdateContactInfo)
	admin.DELETE("/contact-info/:id", handler.DeleteContactInfo)

	admin.GET("/footer", handler.ListFooterItemsAdmin)
	admin.POST("/footer", handler.CreateFooterItem)
	admin.PUT("/footer/:id", handler.UpdateFooterItem)
	admin.DELETE("/footer/:id", handler.DeleteFooterItem)

	admin.GET("/navbar", handler.ListNavbarItemsAdmin)
	admin.POST("/navbar", handler.CreateNavbarItem)
	admin.PUT("/navbar/:id", handler.UpdateNavbarItem)
	admin.DELETE("/navbar/:id", handler.DeleteNavbarItem)

	admin.GET("/conversations", handler.GetAllQuestionsAdmin)
	admin.POST("/conversations", handler.CreateQuestion)
	admin.PUT("/conversations/:id", handler.UpdateQuestion)
	admin.DELETE("/conversations/:id", handler.DeleteQuestion)
}
