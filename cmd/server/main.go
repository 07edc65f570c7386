package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tostOS27/indoor-system/internal/config"
	"github.com/tostOS27/indoor-system/internal/database"
	"github.com/tostOS27/indoor-system/internal/logger"
	"github.com/tostOS27/indoor-system/internal/routes"
	"github.com/tostOS27/indoor-system/internal/ws"
)

func main() {
	// Load .env (non-fatal if missing in production)
	_ = godotenv.Load()

	cfg := config.Load()

	zlog, err := logger.New(cfg.LogLevel, cfg.LogFormat, "indoor-system")
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer zlog.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		zlog.Fatal("database connection failed", zap.Error(err))
	}

	if err := database.Migrate(db); err != nil {
		zlog.Fatal("database migration failed", zap.Error(err))
	}

	if cfg.SeedDemoRooms {
		if err := database.SeedDemoRooms(db); err != nil {
			zlog.Fatal("demo room seed failed", zap.Error(err))
		}
	}

	hub := ws.NewPositionHub(zlog)
	go hub.Run()

	r := gin.Default()
	routes.Register(r, db, hub)

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	zlog.Info("listening", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		zlog.Error("server exited with error", zap.Error(err))
		os.Exit(1)
	}
}
