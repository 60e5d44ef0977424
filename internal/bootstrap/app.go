package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	httpHandler "github.com/ttguo7/kid-activity-platform/internal/handler/http"
	"github.com/ttguo7/kid-activity-platform/internal/infra/persistence/mongodb"
	"github.com/ttguo7/kid-activity-platform/internal/middleware"
	"github.com/ttguo7/kid-activity-platform/internal/observability"
	"github.com/ttguo7/kid-activity-platform/internal/service"
)

// Config 结构体用于存储从环境变量或 .env 文件加载的配置
type Config struct {
	MongoURI        string
	MongoDatabase   string
	StoreTimeout    time.Duration
	RedisAddr       string // 可选：为空时不启用速率限制
	RedisPassword   string
	RedisDB         int
	ServerPort      string
	LogLevel        string
	AppEnv          string // development / production
	RateLimitMax    int
	RateLimitWindow time.Duration
	CORSOrigin      string
}

// LoadConfig 从环境变量加载配置
func LoadConfig() (*Config, error) {
	// 优先加载 .env 文件（如果存在），允许只使用环境变量
	_ = godotenv.Load()

	cfg := &Config{
		MongoURI:      os.Getenv("MONGODB_URI"),
		MongoDatabase: os.Getenv("MONGODB_DATABASE"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		ServerPort:    os.Getenv("SERVER_PORT"),
		LogLevel:      os.Getenv("LOG_LEVEL"),
		AppEnv:        os.Getenv("APP_ENV"),
		CORSOrigin:    os.Getenv("CORS_ALLOWED_ORIGIN"),
		// --- 默认值 ---
		StoreTimeout:    10 * time.Second,
		RateLimitMax:    100,
		RateLimitWindow: 1 * time.Second,
	}

	cfg.RedisDB, _ = strconv.Atoi(os.Getenv("REDIS_DB")) // 忽略错误，默认为 0

	if timeout := os.Getenv("STORE_TIMEOUT"); timeout != "" {
		if parsed, err := time.ParseDuration(timeout); err == nil {
			cfg.StoreTimeout = parsed
		}
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.AppEnv == "" {
		cfg.AppEnv = "development"
	}
	if cfg.MongoDatabase == "" {
		cfg.MongoDatabase = "kid-activity-platform"
	}
	if cfg.CORSOrigin == "" {
		cfg.CORSOrigin = "http://localhost:3000"
	}
	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("environment variable MONGODB_URI must be set")
	}

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		logrus.Warnf("Invalid LOG_LEVEL '%s', using default 'info'", cfg.LogLevel)
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

// App 结构体包含应用的所有组件和配置
type App struct {
	Config      *Config
	Log         *logrus.Logger
	RedisClient *redis.Client
	HttpServer  *http.Server
}

// NewApp 创建并初始化应用的所有组件
func NewApp() (*App, error) {
	// 1. 加载配置
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return nil, err
	}

	// 2. 初始化 Logger
	log := logrus.StandardLogger()
	if cfg.AppEnv == "production" {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, ForceColors: true})
	}
	logLevel, _ := logrus.ParseLevel(cfg.LogLevel) // cfg.LogLevel 已被 LoadConfig 验证
	log.SetLevel(logLevel)
	log.SetOutput(os.Stdout)
	log.Info("Configuration loaded successfully")

	// 3. 初始化可选的 Redis 客户端（仅用于速率限制）
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		log.Info("Redis client initialized (rate limiting enabled)")
	} else {
		log.Info("REDIS_ADDR not set, rate limiting disabled")
	}

	// 4. 初始化 Repository（MongoDB，每次操作独立连接，所以这里只保存配置）
	activityRepo := mongodb.NewMongoActivityRepository(cfg.MongoURI, cfg.MongoDatabase, cfg.StoreTimeout)
	log.Info("Activity repository initialized")

	// 5. 初始化 Service 和 Handler
	activityService := service.NewActivityService(activityRepo)
	activityHandler := httpHandler.NewActivityHandler(activityService)
	log.Info("Services and handlers initialized")

	// 6. 初始化 Gin Engine 和路由
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(LoggerMiddleware(log))
	router.Use(observability.RequestMetrics())
	router.Use(corsMiddleware(cfg.CORSOrigin))
	if redisClient != nil {
		router.Use(middleware.RateLimit(redisClient, cfg.RateLimitMax, cfg.RateLimitWindow))
	}

	api := router.Group("/api")
	activityHandler.RegisterRoutes(api)
	router.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"message": "pong"}) })
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	log.Info("Router setup complete")

	// 7. 初始化 HTTP Server
	httpServer := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &App{
		Config:      cfg,
		Log:         log,
		RedisClient: redisClient,
		HttpServer:  httpServer,
	}, nil
}

// Start 启动 HTTP 服务器
func (a *App) Start() {
	go func() {
		a.Log.Infof("HTTP server starting to listen on %s", a.HttpServer.Addr)
		if err := a.HttpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Log.Fatalf("Failed to start HTTP server: %v", err)
		}
		a.Log.Info("HTTP server stopped listening.")
	}()
}

// Shutdown 优雅地关闭应用
func (a *App) Shutdown() {
	a.Log.Info("Shutting down application...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.HttpServer.Shutdown(ctx); err != nil {
		a.Log.Errorf("Error shutting down HTTP server: %v", err)
	} else {
		a.Log.Info("HTTP server shut down gracefully.")
	}

	if a.RedisClient != nil {
		if err := a.RedisClient.Close(); err != nil {
			a.Log.Errorf("Error closing Redis connection: %v", err)
		} else {
			a.Log.Info("Redis connection closed.")
		}
	}

	a.Log.Info("Application shutdown complete.")
}

// corsMiddleware 允许独立托管的管理前端跨域调用 API
func corsMiddleware(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// LoggerMiddleware 创建一个 Gin 中间件用于记录请求日志
func LoggerMiddleware(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		c.Next()
		latency := time.Since(startTime)

		path := c.Request.URL.Path
		if c.Request.URL.RawQuery != "" {
			path = path + "?" + c.Request.URL.RawQuery
		}

		entry := log.WithFields(logrus.Fields{
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       path,
			"client_ip":  c.ClientIP(),
			"latency_ms": latency.Milliseconds(),
			"request_id": c.GetString("request_id"),
		})

		if errorMessage := c.Errors.ByType(gin.ErrorTypePrivate).String(); errorMessage != "" {
			entry.Error(errorMessage)
		} else if c.Writer.Status() >= http.StatusInternalServerError {
			entry.Error("Request completed with server error")
		} else {
			entry.Info("Request completed")
		}
	}
}
