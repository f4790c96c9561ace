package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

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
	"github.com/invicta-fest/festival-backend/internal/stall"
	"github.com/invicta-fest/festival-backend/internal/update"
	"github.com/invicta-fest/festival-backend/routes"
	"github.com/invicta-fest/festival-backend/utils"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg)

	redisClient := utils.InitRedis(cfg)

	log.Println("Running database migrations...")
	if err := db.AutoMigrate(
		&auditlog.AuditLog{},
		&auth.Admin{},
		&event.Event{},
		&registration.Registration{},
		&gallery.MediaItem{},
		&update.Update{},
		&stall.Application{},
		&merch.Order{},
		&alumni.Registration{},
		&notification.Notification{},
	); err != nil {
		panic(fmt.Sprintf("DB AutoMigrate failed: %v", err))
	}
	log.Println("Database migrations completed")

	if err := auth.SeedSuperAdmin(db, cfg); err != nil {
		panic(fmt.Sprintf("Failed to seed superadmin: %v", err))
	}

	// Notification pipeline: Kafka when brokers are configured, in-process
	// dispatch otherwise.
	notifRepo := notification.NewRepository(db)
	notifSvc := notification.NewService(notifRepo, cfg)

	ctx := context.Background()
	var publisher registration.Publisher
	if kafkaPub := notification.NewKafkaPublisher(cfg); kafkaPub != nil {
		publisher = kafkaPub
		notification.StartKafkaConsumer(ctx, cfg, notifSvc)
		log.Println("Kafka registration pipeline enabled:", cfg.KafkaTopic)
	} else {
		publisher = &notification.DirectPublisher{Svc: notifSvc}
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Content-Length", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Setup(router, cfg, redisClient, notifSvc, publisher)

	log.Println("Server starting on port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
