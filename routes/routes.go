package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/invicta-fest/festival-backend/config"
	"github.com/invicta-fest/festival-backend/database"
	"github.com/invicta-fest/festival-backend/internal/alumni"
	"github.com/invicta-fest/festival-backend/internal/auditlog"
	"github.com/invicta-fest/festival-backend/internal/auth"
	"github.com/invicta-fest/festival-backend/internal/event"
	"github.com/invicta-fest/festival-backend/internal/gallery"
	"github.com/invicta-fest/festival-backend/internal/merch"
	"github.com/invicta-fest/festival-backend/internal/notification"
	"github.com/invicta-fest/festival-backend/internal/registration"
	"github.com/invicta-fest/festival-backend/internal/reports"
	"github.com/invicta-fest/festival-backend/internal/stall"
	"github.com/invicta-fest/festival-backend/internal/update"
	"github.com/invicta-fest/festival-backend/middleware"

	_ "github.com/invicta-fest/festival-backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Setup wires every module onto the router. The notification service and
// registration publisher are built in main because their transport (Kafka or
// in-process) depends on deployment configuration.
func Setup(r *gin.Engine, cfg *config.Config, redisClient *redis.Client, notifSvc *notification.Service, publisher registration.Publisher) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimiter(redisClient))
	api.Use(middleware.AuditMiddleware())

	// ========== Audit Log ==========
	auditRepo := auditlog.NewRepository(database.DB)
	auditSvc := auditlog.NewService(auditRepo)
	auditHandler := auditlog.NewHandler(auditSvc)

	// ========== Auth ==========
	authRepo := auth.NewRepository(database.DB)
	authSvc := auth.NewService(authRepo, cfg)
	authHandler := auth.NewHandler(authSvc, auditSvc)

	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg))
	protected.Use(middleware.RequireRole(auth.RoleAdmin, auth.RoleSuperAdmin))

	superOnly := api.Group("/")
	superOnly.Use(middleware.AuthMiddleware(cfg))
	superOnly.Use(middleware.RequireRole(auth.RoleSuperAdmin))

	protected.GET("/auth/me", authHandler.Me)

	// Admin management, superadmin only
	superOnly.POST("/admins", authHandler.CreateAdmin)
	superOnly.GET("/admins", authHandler.ListAdmins)
	superOnly.DELETE("/admins/:id", authHandler.DeleteAdmin)

	// ========== Audit Logs (superadmin only) ==========
	superOnly.GET("/auditlogs", auditHandler.GetAuditLogs)
	superOnly.GET("/auditlogs/:id", auditHandler.GetAuditLogByID)

	// ========== Events ==========
	eventRepo := event.NewRepository(database.DB)
	eventSvc := event.NewService(eventRepo, auditSvc)
	eventHandler := event.NewHandler(eventSvc)

	api.GET("/events", eventHandler.ListEvents)
	api.GET("/events/:id", eventHandler.GetEventByID)
	api.PATCH("/events/:id/like", eventHandler.ToggleLike)

	protected.POST("/events", eventHandler.CreateEvent)
	protected.PUT("/events/:id", eventHandler.UpdateEvent)
	protected.PATCH("/events/:id/registration-status", eventHandler.UpdateRegistrationStatus)
	protected.DELETE("/events/:id", eventHandler.DeleteEvent)

	// ========== Registrations ==========
	regRepo := registration.NewRepository(database.DB)
	regSvc := registration.NewService(regRepo, eventRepo, auditSvc, publisher)
	regHandler := registration.NewHandler(regSvc)

	api.POST("/registrations", regHandler.Submit)

	protected.GET("/registrations", regHandler.ListAll)
	protected.PATCH("/registrations/:id/payment-status", regHandler.UpdatePaymentStatus)
	protected.DELETE("/registrations/:id", regHandler.Delete)

	// ========== Gallery ==========
	galleryRepo := gallery.NewRepository(database.DB)
	gallerySvc := gallery.NewService(galleryRepo, auditSvc)
	galleryHandler := gallery.NewHandler(gallerySvc)

	api.GET("/gallery", galleryHandler.List)

	protected.POST("/gallery", galleryHandler.Create)
	protected.DELETE("/gallery/:id", galleryHandler.Delete)

	// ========== Updates ticker ==========
	updateRepo := update.NewRepository(database.DB)
	updateSvc := update.NewService(updateRepo, auditSvc)
	updateHandler := update.NewHandler(updateSvc)

	api.GET("/updates", updateHandler.ListActive)

	protected.GET("/updates/all", updateHandler.ListAll)
	protected.POST("/updates", updateHandler.Create)
	protected.PUT("/updates/:id", updateHandler.Edit)
	protected.DELETE("/updates/:id", updateHandler.Delete)

	// ========== Stall auction ==========
	stallRepo := stall.NewRepository(database.DB)
	stallSvc := stall.NewService(stallRepo, auditSvc, notifSvc)
	stallHandler := stall.NewHandler(stallSvc)

	api.POST("/stalls", stallHandler.Apply)

	protected.GET("/stalls", stallHandler.List)
	protected.PATCH("/stalls/:id/status", stallHandler.UpdateStatus)
	protected.DELETE("/stalls/:id", stallHandler.Delete)

	// ========== Merch orders ==========
	merchRepo := merch.NewRepository(database.DB)
	merchSvc := merch.NewService(merchRepo, auditSvc, notifSvc)
	merchHandler := merch.NewHandler(merchSvc)

	api.POST("/merch", merchHandler.PlaceOrder)

	protected.GET("/merch", merchHandler.List)
	protected.PATCH("/merch/:id/payment-status", merchHandler.UpdatePaymentStatus)
	protected.DELETE("/merch/:id", merchHandler.Delete)

	// ========== Alumni ==========
	alumniRepo := alumni.NewRepository(database.DB)
	alumniSvc := alumni.NewService(alumniRepo, auditSvc)
	alumniHandler := alumni.NewHandler(alumniSvc)

	api.POST("/alumni", alumniHandler.Register)

	protected.GET("/alumni", alumniHandler.List)
	protected.DELETE("/alumni/:id", alumniHandler.Delete)

	// ========== Notifications ==========
	notifHandler := notification.NewHandler(notifSvc)

	protected.GET("/notifications", notifHandler.List)
	protected.PATCH("/notifications/:id/read", notifHandler.MarkRead)

	// ========== Reports (superadmin only) ==========
	reportsRepo := reports.NewRepository(database.DB)
	reportsSvc := reports.NewService(reportsRepo, reports.NewExporter(), auditSvc)
	reportsHandler := reports.NewHandler(reportsSvc)

	superOnly.GET("/reports/:type", reportsHandler.Export)
}
