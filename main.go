package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/pidey-coffee/config"
	"github.com/yeremiapane/pidey-coffee/database"
	"github.com/yeremiapane/pidey-coffee/repository"
	"github.com/yeremiapane/pidey-coffee/router"
	"github.com/yeremiapane/pidey-coffee/services"
	"github.com/yeremiapane/pidey-coffee/utils"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to load config: %v", err)
	}
	utils.InitLogger(cfg.LogLevel)

	// Set gin mode
	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize DB
	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}

	// katalog kosong langsung diisi menu default
	items, err := repository.NewCatalogRepository(db).LoadStock(context.Background())
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to load catalog: %v", err)
	}
	utils.InfoLogger.Printf("Catalog ready with %d menu items", len(items))

	relay := setupRelay(cfg)
	defer relay.Close()

	appCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	r, err := router.SetupRouter(appCtx, db, cfg, relay)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to setup router: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.ErrorLogger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.InfoLogger.Println("Shutting down server...")
	stopWorkers()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.ErrorLogger.Errorf("Server forced to shutdown: %v", err)
	}
}

// setupRelay connects to Kafka when enabled. A broker that is down does not stop the shop.
func setupRelay(cfg *config.Config) services.IRelayService {
	if !cfg.Kafka.Enabled {
		return services.NoopRelayService{}
	}
	relay, err := services.NewKafkaRelayService(cfg.Kafka.Brokers)
	if err != nil {
		utils.ErrorLogger.Errorf("Kafka relay disabled: %v", err)
		return services.NoopRelayService{}
	}
	utils.InfoLogger.Printf("Relaying orders to Kafka topic %s", cfg.Kafka.Topic)
	return relay
}
