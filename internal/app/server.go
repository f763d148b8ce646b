// internal/app/server.go
package app

import (
	"context"
	"fmt"
	"log"

	"workshop-service/internal/ai"
	"workshop-service/internal/config"
	"workshop-service/internal/db"
	inventoryHandler "workshop-service/internal/handlers/inventory"
	jobHandler "workshop-service/internal/handlers/job"
	reportHandler "workshop-service/internal/handlers/report"
	wsHandler "workshop-service/internal/handlers/websocket"
	"workshop-service/internal/middleware"
	"workshop-service/internal/pkg/cache"
	"workshop-service/internal/repository/postgres"
	inventoryUsecase "workshop-service/internal/service/inventory"
	jobUsecase "workshop-service/internal/service/job"
	quoteUsecase "workshop-service/internal/service/quote"
	reportUsecase "workshop-service/internal/service/report"
	"workshop-service/internal/websocket"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	ctx := context.Background()

	// ----- Logger -----
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	s.logger = logger

	// ----- PostgreSQL -----
	pool, err := db.ConnectDB(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}
	if err := db.EnsureSchema(ctx, pool); err != nil {
		return fmt.Errorf("failed to prepare schema: %w", err)
	}

	// ----- Redis (optional) -----
	var redisClient *redis.Client
	if s.cfg.RedisAddr != "" {
		redisClient, err = db.NewRedisClient(db.RedisConfig{
			Addr:     s.cfg.RedisAddr,
			Password: s.cfg.RedisPass,
			DB:       0,
			PoolSize: 10,
		})
		if err != nil {
			logger.Warn("Redis unavailable, running without cache", zap.Error(err))
			redisClient = nil
		} else {
			log.Println("[REDIS] ✅ Connected successfully")
		}
	}
	collections := cache.NewCollections(redisClient, s.cfg.CacheTTL, logger)

	// ----- AI Collaborator -----
	var collaborator ai.Collaborator
	if s.cfg.AIBaseURL != "" {
		collaborator = ai.NewClient(s.cfg.AIBaseURL, logger)
	} else {
		logger.Info("AI_BASE_URL not set, using simulated collaborator")
		collaborator = ai.NewSimulated()
	}

	// ----- Repositories -----
	dbWrapper := postgres.NewDB(pool)
	recordRepo := postgres.NewVehicleRecordRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(dbWrapper)

	// ----- WebSocket Hub -----
	hub := websocket.NewHub()
	go hub.Run(context.Background())

	// ----- Services (Usecases) -----
	jobService := jobUsecase.NewJobService(recordRepo, collaborator, collections, hub, logger)
	quoteService := quoteUsecase.NewQuoteService(recordRepo, collaborator, collections, hub, logger)
	inventoryService := inventoryUsecase.NewInventoryService(inventoryRepo, collections, hub, logger)
	reportService := reportUsecase.NewReportService(recordRepo)

	// ----- Handlers -----
	jobHandlerInst := jobHandler.NewJobHandler(jobService)
	quoteHandlerInst := jobHandler.NewQuoteHandler(quoteService)
	inventoryHandlerInst := inventoryHandler.NewInventoryHandler(inventoryService)
	reportHandlerInst := reportHandler.NewReportHandler(reportService)
	wsHandlerInst := wsHandler.NewWebSocketHandler(hub, logger)

	// ----- Middlewares -----
	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(),
	)

	// ----- Router -----
	handlers := &Handlers{
		JobHandler:       jobHandlerInst,
		QuoteHandler:     quoteHandlerInst,
		InventoryHandler: inventoryHandlerInst,
		ReportHandler:    reportHandlerInst,
		WSHandler:        wsHandlerInst,
	}
	SetupRouter(s.engine, logger, handlers)

	// ----- Start HTTP -----
	log.Printf("🚀 Server running on %s", s.cfg.HTTPAddr)
	return s.engine.Run(s.cfg.HTTPAddr)
}
