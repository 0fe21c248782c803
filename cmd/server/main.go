package main

import (
	"context"
	"log"
	"os"
	"strconv"

	"ideanest/config"
	"ideanest/controllers"
	"ideanest/db"
	"ideanest/logger"
	"ideanest/metrics"
	"ideanest/middlewares"
	"ideanest/services"
	"ideanest/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "./config/config.yml"
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog := logger.New(cfg.Log.Level, cfg.Log.Format)
	defer zlog.Sync()

	provider, err := buildProvider(cfg)
	if err != nil {
		zlog.Fatal("failed to initialize model provider", zap.String("provider", cfg.Provider), zap.Error(err))
	}
	evaluationService := services.NewEvaluationService(provider, zlog)

	// Profile storage is optional. Signup still works against Cognito when
	// Mongo is down; only the display profile is lost.
	if cfg.Database.URI != "" {
		if err := db.ConnectMongoDB(cfg.Database.URI); err != nil {
			zlog.Warn("mongodb unavailable, user profiles will not be stored", zap.Error(err))
		} else {
			zlog.Info("connected to MongoDB")
		}
	}

	ideas := db.NewIdeaStore(cfg)
	if err := ideas.Ping(context.Background()); err != nil {
		zlog.Warn("redis unavailable, ideas will not be persisted", zap.Error(err))
	}
	defer ideas.Close()

	feed := websocket.NewActivityFeed(zlog)

	router := setupRouter(cfg, evaluationService, ideas, feed, zlog)
	port := strconv.Itoa(cfg.Server.Port)
	zlog.Info("server starting", zap.String("port", port))

	if err := router.Run(":" + port); err != nil {
		zlog.Fatal("server exited", zap.Error(err))
	}
}

func buildProvider(cfg *config.Config) (services.TextGenerator, error) {
	if cfg.Provider == "gemini" {
		return services.NewGeminiClient(context.Background(), cfg.Gemini.ApiKey, cfg.Gemini.Model)
	}
	return services.NewOpenRouterClient(cfg), nil
}

func setupRouter(cfg *config.Config, evaluationService *services.EvaluationService, ideas *db.IdeaStore, feed *websocket.ActivityFeed, zlog *zap.Logger) *gin.Engine {
	router := gin.Default()

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	// The API is called straight from browsers on arbitrary origins, so CORS
	// stays wide open. The anon key, not the origin, gates access.
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:   []string{"Content-Length"},
	}))
	router.OPTIONS("/*path", func(c *gin.Context) { c.Status(204) })

	evaluateController := &controllers.EvaluateController{
		Service: evaluationService,
		Ideas:   ideas,
		Feed:    feed,
		Logger:  zlog,
	}
	analysisController := &controllers.AnalysisController{
		Service: evaluationService,
		Logger:  zlog,
	}
	authController := &controllers.AuthController{
		Config: cfg,
		Logger: zlog,
	}

	router.GET("/health", controllers.Health)
	router.GET("/metrics", metrics.Handler())
	router.POST("/signup", authController.SignUp)
	router.POST("/login", authController.Login)

	auth := router.Group("/")
	auth.Use(middlewares.AuthMiddleware(cfg.Server.AnonKey))
	{
		auth.POST("/evaluate", evaluateController.Evaluate)
		auth.POST("/refine", analysisController.Refine)
		auth.POST("/competitors", analysisController.Competitors)
		auth.POST("/market-strategy", analysisController.MarketStrategy)
		auth.GET("/ideas/:id", evaluateController.GetIdea)
		auth.GET("/ws", feed.Handler)
	}

	return router
}
