package main

import (
	"celiguard/internal/config"
	"celiguard/internal/handler"
	"celiguard/internal/logging"
	"celiguard/internal/middleware"
	"celiguard/internal/ml"
	"celiguard/internal/storage"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatal("failed to build logger: ", err)
	}
	defer logger.Sync()

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Fatal("failed to open prediction audit log", zap.String("path", cfg.DBPath), zap.Error(err))
	}
	defer store.Close()

	// A missing model is not fatal: the service starts degraded, /health
	// reports model_loaded=false and /predict answers 503.
	var clf ml.Classifier
	var meta *ml.Metadata
	if model, metadata, err := ml.LoadArtifacts(cfg.ModelPath, cfg.MetadataPath); err != nil {
		logger.Warn("model not loaded, /predict will be unavailable",
			zap.String("model_path", cfg.ModelPath),
			zap.Error(err),
		)
	} else {
		clf = model
		meta = metadata
		logger.Info("model loaded",
			zap.String("model_type", metadata.ModelType),
			zap.Float64("accuracy", metadata.Accuracy),
		)
	}

	h := handler.New(clf, meta, store, logger)

	router := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	router.Use(cors.New(corsConfig))

	router.GET("/", h.Root)
	router.GET("/health", h.Health)
	router.GET("/model-info", h.ModelInfo)
	router.GET("/predictions", h.RecentPredictions)
	router.POST("/predict", middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst), h.Predict)

	logger.Info("starting server", zap.String("port", cfg.Port))
	log.Fatal(router.Run(":" + cfg.Port))
}
