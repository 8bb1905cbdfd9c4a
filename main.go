package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"GotYourBack-backend/internal/docs"
	"GotYourBack-backend/internal/exchange/events"
	"GotYourBack-backend/internal/exchange/items"
	"GotYourBack-backend/internal/exchange/messages"
	"GotYourBack-backend/internal/exchange/profiles"
	"GotYourBack-backend/internal/exchange/requests"
	"GotYourBack-backend/internal/platform/apierr"
	"GotYourBack-backend/internal/platform/auth"
	"GotYourBack-backend/internal/platform/config"
	"GotYourBack-backend/internal/platform/db"
	"GotYourBack-backend/internal/platform/idempotency"
)

func main() {
	// 設定読み込み（EXCHANGE_CONFIG で上書き可）
	cfg, err := config.Load(config.Path())
	if err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
	mode := cfg.Mode
	log.Printf("[INFO] mode:%s\n", mode)

	conn, err := db.Connect(cfg.DB)
	if err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
	defer conn.Close()
	log.Printf("[INFO] connected to DB: %s", cfg.DB.DBName)

	// イベント（NATS 未設定なら捨てる）
	var pub events.Publisher = events.Nop{}
	if cfg.NATS.URL != "" {
		np, nc, err := events.Connect(cfg.NATS.URL, cfg.NATS.SubjectPrefix)
		if err != nil {
			log.Printf("[WARN] %v; lifecycle events are disabled", err)
		} else {
			defer nc.Drain()
			pub = np
			log.Printf("[INFO] publishing events to %s", cfg.NATS.URL)
		}
	}

	// Idempotency-Key 用（未設定なら素通し）
	var rdb redis.Cmdable
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[WARN] redis %s: %v; idempotency keys are ignored", cfg.Redis.Addr, err)
			client.Close()
		} else {
			defer client.Close()
			rdb = client
		}
		cancel()
	}

	if mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	_ = r.SetTrustedProxies(nil)

	if mode == "dev" {
		// CORS（開発中のみ必要）
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowOrigins,
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", idempotency.HeaderKey},
			ExposeHeaders:    []string{"Content-Length", "Location", idempotency.HeaderReplay},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowCredentials: true,
		}))

		docs.SwaggerInfo.Version = cfg.Version
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// ヘルス
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	secret := []byte(cfg.Auth.JWTSecret)
	users := auth.NewStore(conn)
	authSvc := auth.NewService(users, secret, cfg.Auth.TokenTTL)
	profileSvc := profiles.NewService(conn, users)
	itemSvc := items.NewService(conn)
	requestSvc := requests.NewService(conn, itemSvc, pub)
	messageSvc := messages.NewService(conn, requestSvc, pub)

	// /api/v1
	api := r.Group("/api/v1")
	auth.RegisterRoutes(api, authSvc)

	authed := api.Group("", auth.RequireAuth(secret), idempotency.Middleware(rdb, cfg.Redis.IdempotencyTTL))
	auth.RegisterUserRoutes(authed, authSvc)
	profiles.RegisterRoutes(authed, profileSvc)
	items.RegisterRoutes(authed, itemSvc)
	requests.RegisterRoutes(authed, requestSvc)
	messages.RegisterRoutes(authed, messageSvc)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, apierr.Body(apierr.CodeNotFound, "no such route"))
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		var err error
		if cfg.TLSEnabled() {
			log.Printf("[INFO] listening on https://%s", cfg.Server.Addr)
			err = srv.ListenAndServeTLS(cfg.Server.TLS.Cert, cfg.Server.TLS.Key)
		} else {
			log.Printf("[INFO] listening on http://%s", cfg.Server.Addr)
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("[INFO] shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
