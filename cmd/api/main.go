package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/fekuna/storefront-service/config"
	"github.com/fekuna/storefront-service/internal/auth"
	"github.com/fekuna/storefront-service/internal/httputil"
	"github.com/fekuna/storefront-service/pkg/broker"
	"github.com/fekuna/storefront-service/pkg/cache"
	"github.com/fekuna/storefront-service/pkg/db"
	"github.com/fekuna/storefront-service/pkg/logger"
	"github.com/fekuna/storefront-service/pkg/search"

	admH "github.com/fekuna/storefront-service/internal/admin/handler"
	admRepoPkg "github.com/fekuna/storefront-service/internal/admin/repository"
	admUCPkg "github.com/fekuna/storefront-service/internal/admin/usecase"

	addrH "github.com/fekuna/storefront-service/internal/address/handler"
	addrRepoPkg "github.com/fekuna/storefront-service/internal/address/repository"
	addrUCPkg "github.com/fekuna/storefront-service/internal/address/usecase"

	catH "github.com/fekuna/storefront-service/internal/category/handler"
	catRepoPkg "github.com/fekuna/storefront-service/internal/category/repository"
	catUCPkg "github.com/fekuna/storefront-service/internal/category/usecase"

	custH "github.com/fekuna/storefront-service/internal/customer/handler"
	custRepoPkg "github.com/fekuna/storefront-service/internal/customer/repository"
	custUCPkg "github.com/fekuna/storefront-service/internal/customer/usecase"

	ordH "github.com/fekuna/storefront-service/internal/order/handler"
	ordRepoPkg "github.com/fekuna/storefront-service/internal/order/repository"
	ordUCPkg "github.com/fekuna/storefront-service/internal/order/usecase"

	payH "github.com/fekuna/storefront-service/internal/payment/handler"
	payRepoPkg "github.com/fekuna/storefront-service/internal/payment/repository"
	payUCPkg "github.com/fekuna/storefront-service/internal/payment/usecase"

	prodH "github.com/fekuna/storefront-service/internal/product/handler"
	prodRepoPkg "github.com/fekuna/storefront-service/internal/product/repository"
	prodUCPkg "github.com/fekuna/storefront-service/internal/product/usecase"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	appLogger := logger.NewZapLogger(&logger.ZapLoggerConfig{
		IsDevelopment:     cfg.Server.AppEnv != "production",
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	})
	defer appLogger.Sync()

	// 3. Connect to Database
	database, err := db.NewPostgres(&db.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer database.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	// 4. Initialize Redis
	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))

	// 5. Initialize Kafka Producer
	producer := broker.NewProducer(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
	})
	defer producer.Close()
	appLogger.Info("Connected to Kafka Producer", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))

	// 6. Initialize Elasticsearch
	esClient, err := search.NewClient(&search.Config{
		Addresses: cfg.Elastic.Addresses,
		Username:  cfg.Elastic.Username,
		Password:  cfg.Elastic.Password,
	})
	if err != nil {
		appLogger.Warn("Could not connect to Elasticsearch (Search features might be limited)", zap.Error(err))
		esClient = nil
	} else {
		appLogger.Info("Connected to Elasticsearch", zap.Strings("addresses", cfg.Elastic.Addresses))
	}

	// 7. Initialize Repositories
	custRepo := custRepoPkg.NewPGRepository(database)
	catRepo := catRepoPkg.NewPGRepository(database)
	prodRepo := prodRepoPkg.NewPGRepository(database)
	addrRepo := addrRepoPkg.NewPGRepository(database)
	ordRepo := ordRepoPkg.NewPGRepository(database)
	payRepo := payRepoPkg.NewPGRepository(database)
	admRepo := admRepoPkg.NewPGRepository(database)

	// 8. Initialize Auth
	tokens := auth.NewTokenManager(cfg.JWT.SecretKey, time.Duration(cfg.JWT.ExpiresIn)*time.Second)

	// 9. Initialize UseCases
	custUC := custUCPkg.NewCustomerUseCase(custRepo, tokens, appLogger)
	catUC := catUCPkg.NewCategoryUseCase(catRepo, appLogger)
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, redisClient, esClient, appLogger)
	addrUC := addrUCPkg.NewAddressUseCase(addrRepo, appLogger)
	ordUC := ordUCPkg.NewOrderUseCase(ordRepo, prodRepo, producer, appLogger)
	payUC := payUCPkg.NewPaymentUseCase(payRepo, ordRepo, redisClient, producer, appLogger)
	admUC := admUCPkg.NewAdminUseCase(admRepo, prodRepo, ordRepo, appLogger)

	// 10. Initialize Handlers
	custHandler := custH.NewCustomerHandler(custUC, appLogger)
	catHandler := catH.NewCategoryHandler(catUC, appLogger)
	prodHandler := prodH.NewProductHandler(prodUC, appLogger)
	addrHandler := addrH.NewAddressHandler(addrUC, appLogger)
	ordHandler := ordH.NewOrderHandler(ordUC, appLogger)
	payHandler := payH.NewPaymentHandler(payUC, appLogger)
	admHandler := admH.NewAdminHandler(admUC, prodUC, custUC, ordUC, appLogger)

	// 11. Build Router
	if cfg.Server.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(httputil.Recovery(appLogger, cfg.Server.AppEnv))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "message": "Server is running"})
	})

	authed := auth.Authenticate(tokens)
	adminOnly := auth.RequireAdmin()

	api := router.Group("/api")
	{
		api.POST("/auth/register", custHandler.Register)
		api.POST("/auth/login", custHandler.Login)
		api.GET("/auth/profile", authed, custHandler.Profile)

		customers := api.Group("/customers", authed)
		{
			customers.GET("/:id", custHandler.GetCustomer)
			customers.PUT("/:id", custHandler.UpdateCustomer)
		}

		addresses := api.Group("/addresses", authed)
		{
			addresses.GET("", addrHandler.List)
			addresses.POST("", addrHandler.Create)
			addresses.PUT("/:id", addrHandler.Update)
			addresses.DELETE("/:id", addrHandler.Delete)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", catHandler.List)
			categories.GET("/:id", catHandler.Get)
			categories.POST("", authed, adminOnly, catHandler.Create)
			categories.PUT("/:id", authed, adminOnly, catHandler.Update)
			categories.DELETE("/:id", authed, adminOnly, catHandler.Delete)
		}

		products := api.Group("/products")
		{
			products.GET("", prodHandler.List)
			products.GET("/:id", prodHandler.Get)
			products.POST("", authed, adminOnly, prodHandler.Create)
			products.PUT("/:id", authed, adminOnly, prodHandler.Update)
			products.DELETE("/:id", authed, adminOnly, prodHandler.Delete)
		}

		orders := api.Group("/orders", authed)
		{
			orders.GET("", ordHandler.List)
			orders.GET("/:id", ordHandler.Get)
			orders.POST("", ordHandler.Create)
		}

		payments := api.Group("/payments", authed)
		{
			payments.POST("", payHandler.Create)
			payments.GET("/:orderId", payHandler.Get)
		}

		adminGroup := api.Group("/admin", authed, adminOnly)
		{
			adminGroup.GET("/dashboard", admHandler.Dashboard)
			adminGroup.GET("/reports", admHandler.CategoryReport)
			adminGroup.POST("/stock", admHandler.UpdateStock)
			adminGroup.POST("/face/register", admHandler.RegisterFace)
			adminGroup.GET("/face/:userId", admHandler.FaceStatus)
			adminGroup.POST("/face/reset", admHandler.ResetFace)
			adminGroup.POST("/orders/:orderId/status", admHandler.UpdateOrderStatus)
		}
	}

	// 12. Start HTTP Server
	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:    port,
		Handler: router,
	}

	appLogger.Info("Starting HTTP server", zap.String("port", port))

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("forced shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
