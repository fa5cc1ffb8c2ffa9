// @title Asinsights API
// @version 1.0
// @description E-commerce analytics dashboard with an assistant, custom reports and saved reports
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/mattwilkerson1121/Asinsights/cache"
	"github.com/mattwilkerson1121/Asinsights/config"
	_ "github.com/mattwilkerson1121/Asinsights/docs"
	"github.com/mattwilkerson1121/Asinsights/middleware"
	"github.com/mattwilkerson1121/Asinsights/routes/dashboard_routes"
	"github.com/mattwilkerson1121/Asinsights/services"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	settings := config.Load()
	if settings.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Saved reports: database when configured, in-process otherwise
	db, err := config.InitDB(settings)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	defer config.CloseDB(db)

	var reports services.ReportStore = services.NewMemoryReportStore()
	if db != nil {
		store, err := services.NewGormReportStore(db)
		if err != nil {
			log.Fatalf("❌ Failed to prepare saved reports table: %v", err)
		}
		reports = store
	}

	// Redis connection (rate limiting)
	ctx, cancel := config.WithTimeout()
	rdb, err := config.ConnectRedis(ctx, settings.RedisURL)
	cancel()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	if rdb != nil {
		defer rdb.Close()
	}

	// Report events
	var events services.EventPublisher = services.LogPublisher{}
	conn, err := config.ConnectRabbitMQ(settings.RabbitMQURL)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	if conn != nil {
		defer conn.Close()
		publisher, err := services.NewAMQPPublisher(conn, settings.ReportEventsQueue)
		if err != nil {
			log.Fatalf("❌ %v", err)
		}
		defer publisher.Close()
		events = publisher
		log.Printf("✅ Publishing report events to queue %s", settings.ReportEventsQueue)
	}

	provider := services.NewCachedProvider(
		services.NewMockProvider(settings.FetchLatency),
		cache.NewSnapshotCache(settings.SnapshotCacheTTL),
	)

	dashboard := services.NewDashboard(services.DashboardDeps{
		Config: services.DashboardConfig{
			ThinkDelay:   settings.ChatThinkDelay,
			RefreshDelay: settings.DashboardRefresh,
		},
		Provider:   provider,
		Aggregator: services.NewAggregator(rand.New(rand.NewSource(time.Now().UnixNano()))),
		Reports:    reports,
		Events:     events,
	})
	dashboard.Start()
	log.Println("✅ Dashboard initialized")

	corsCfg := cors.Config{
		AllowOrigins:     settings.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"}, // Expose these headers for downloads
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")
	api.Use(middleware.RateLimiter(rdb, settings.RateLimitMax, settings.RateLimitWindow))
	dashboard_routes.SetupRoutes(api, dashboard)
	log.Println("✅ Dashboard routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    ":" + settings.Port,
		Handler: router,
	}

	go func() {
		log.Printf("🚀 Server is running on http://localhost:%s", settings.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("❌ Server forced to shutdown: %v", err)
	}
}
