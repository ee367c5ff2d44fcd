package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"orderdesk/internal/config"
	"orderdesk/internal/database"
	"orderdesk/internal/middleware"
	"orderdesk/internal/modules/admin"
	"orderdesk/internal/modules/auth"
	"orderdesk/internal/modules/file"
	"orderdesk/internal/modules/order"
	"orderdesk/internal/pkg/extauth"
	jwtsvc "orderdesk/internal/pkg/jwt"
	"orderdesk/internal/pkg/policy"
	"orderdesk/internal/pkg/sms"
	"orderdesk/internal/pkg/verification"
	"orderdesk/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	fileRepo := repository.NewFileRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.TokenTTL)

	// redis-backed code store when configured, in-process map otherwise
	var codes verification.Store
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatal("redis unreachable: ", err)
		}
		codes = verification.NewRedisStore(client, cfg.VerifyCodeTTL)
	} else {
		codes = verification.NewMemoryStore(cfg.VerifyCodeTTL)
	}

	var sender sms.Sender = sms.LogSender{}
	if cfg.TwilioAccountSID != "" {
		sender = sms.NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber)
	}

	authService := auth.NewService(userRepo, codes, sender, j)
	authHandler := auth.NewHandler(authService)

	orderService := order.NewService(orderRepo, userRepo, fileRepo)
	orderHandler := order.NewHandler(orderService)

	adminService := admin.NewService(userRepo, extauth.LocalProvider{})
	adminHandler := admin.NewHandler(adminService)

	fileService := file.NewService(fileRepo, orderRepo)
	fileHandler := file.NewHandler(fileService)

	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterPublicRoutes(api)

		protected := api.Group("/")
		protected.Use(middleware.Auth(j, userRepo))
		{
			perm := middleware.RequirePermission

			adminGroup := protected.Group("/admin")
			orderHandler.RegisterAdminRoutes(adminGroup, perm)
			adminHandler.RegisterRoutes(adminGroup, perm)

			clientGroup := protected.Group("/clients")
			orderHandler.RegisterClientRoutes(clientGroup, perm)
			clientGroup.PUT("/users/me", perm(policy.OpProfileEdit), authHandler.UpdateProfile)

			fileGroup := protected.Group("/files")
			fileHandler.RegisterRoutes(fileGroup, perm)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
