package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	_ "biblioteca-service/ddd/adapter/http"
	"biblioteca-service/ddd/application/job"
	"biblioteca-service/ddd/infrastructure/database/po"
	"biblioteca-service/internal/resource"
	"biblioteca-service/pkg/config"
	"biblioteca-service/pkg/logger"
	"biblioteca-service/pkg/middleware"
	"biblioteca-service/pkg/redisclient"
	"biblioteca-service/pkg/repository"
	"biblioteca-service/pkg/sse"
)

// Run is the entrypoint of biblioteca-service.
func Run() {
	fmt.Println("[STARTUP] Starting biblioteca service...")

	cfgPath := resolveConfigPath()
	fmt.Println("[STARTUP] Loading config file...")

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Printf("[ERROR] Failed to load config (%s): %v\n", cfgPath, err)
		os.Exit(1)
	}
	config.SetGlobalConfig(cfg)
	fmt.Printf("[STARTUP] Config file loaded: %s\n", cfgPath)

	fmt.Println("[STARTUP] Initializing logger...")
	logService := logger.NewLogger(cfg)
	logger.SetGlobalLogger(logService)
	logger.Infof("Biblioteca service starting")

	// Initialize database connection and expose it via internal resource package.
	logger.Infof("Initializing database connection...")
	db, err := repository.NewDatabase(&cfg.Database)
	if err != nil {
		logger.Fatal(fmt.Sprintf("Failed to initialize database error=%v", err))
	}
	defer db.Close()
	resource.SetMainDB(db.Self)
	logger.Infof("Database connected")

	if err := db.Self.AutoMigrate(&po.Person{}, &po.Resource{}, &po.Loan{}); err != nil {
		logger.Fatal(fmt.Sprintf("Failed to migrate schema error=%v", err))
	}
	logger.Infof("Schema migrated")

	// Initialize Redis client (optional). If initialization fails we log it
	// and continue: notifications are derived on demand and SSE stays
	// process-local.
	logger.Infof("Initializing Redis client...")
	redisCli, err := redisclient.New(cfg.Redis)
	if err != nil {
		logger.Errorf("Failed to initialize redis; notification cache disabled, SSE local-only error=%v", err)
	} else {
		defer func() {
			logger.Infof("Closing Redis client...")
			_ = redisCli.Close()
		}()
		resource.SetMainRedis(redisCli.Raw())
		// Bridge in-memory SSE hub to Redis Pub/Sub for cross-instance fanout.
		sse.InitRedisPubSub(redisCli.Raw(), "")
	}

	// Create Gin engine and common middlewares.
	logger.Infof("Creating HTTP routes...")
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestContextMiddleware(),
		middleware.RequestLogMiddleware(),
	)

	// Health check endpoint.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"service":   "biblioteca-service",
			"timestamp": time.Now().Unix(),
		})
	})

	// Register all controllers via the shared manager package; the
	// adapter package wires its plugins through init() side effects.
	logger.Infof("Registering routes...")
	registerAllRoutes(router)
	logger.Infof("Routes registered")

	// Start the loan reminder sweep.
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	job.NewSweeper().Start(sweepCtx)
	logger.Infof("Reminder sweep started interval=%s", cfg.Notification.SweepInterval)

	// Start HTTP server with graceful shutdown.
	port := fmt.Sprintf(":%d", cfg.Server.Port)
	server := &http.Server{
		Addr:         port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Infof("HTTP server starting port=%s service=%s", port, "biblioteca-service")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal(fmt.Sprintf("Failed to start HTTP server error=%v", err))
		}
	}()

	logger.Infof("HTTP server started port=%s health_url=%s", port, fmt.Sprintf("http://localhost%s/health", port))

	// Wait for termination signal.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Infof("Received shutdown signal, shutting down server...")
	stopSweep()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal(fmt.Sprintf("Server forced to close error=%v", err))
	}

	logger.Infof("Server exited safely")

	if logService != nil {
		logger.Infof("Closing logger...")
		logService.Close()
	}
}

// resolveConfigPath determines which config file to use.
func resolveConfigPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	if env := os.Getenv("CONFIG_ENV"); env != "" {
		return fmt.Sprintf("configs/config.%s.yaml", env)
	}
	return "configs/config.dev.yaml"
}
