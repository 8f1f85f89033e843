package main

import (
	"fmt"
	"os"
	"time"

	"edusphere"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

// Server holds the orchestrator and the adapters the HTTP handlers need.
type Server struct {
	cfg     edusphere.Config
	orch    *edusphere.Orchestrator
	backend *edusphere.GenerationService
	forms   *edusphere.FormsService
	store   *sessions.CookieStore
	log     *zap.SugaredLogger
}

func main() {
	cfg := edusphere.LoadConfig()

	log, err := edusphere.NewLogger(cfg.LogMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	backend := edusphere.NewGenerationService(cfg, log)
	formsService := edusphere.NewFormsService(cfg, log)

	server := &Server{
		cfg:     cfg,
		orch:    edusphere.NewOrchestrator(backend, formsService, log),
		backend: backend,
		forms:   formsService,
		store:   sessions.NewCookieStore([]byte(cfg.SessionSecret)),
		log:     log,
	}

	if cfg.LogMode == "production" || cfg.LogMode == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(log))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	router.GET("/", server.handleRoot)
	router.POST("/orchestrate", server.handleOrchestrate)
	router.POST("/orchestrate/stream", server.handleOrchestrateStream)

	router.GET("/auth/google", server.handleAuthStart)
	router.GET("/auth/google/callback", server.handleAuthCallback)
	router.GET("/auth/status", server.handleAuthStatus)

	router.GET("/classroom/status", server.handleClassroomStatus)
	router.GET("/classroom/courses", server.handleClassroomCourses)
	router.POST("/classroom/notify", server.handleClassroomNotify)

	log.Infow("starting server", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalw("server failed", "error", err)
	}
}

// requestLogger tags every request with an id and logs method, path, status
// and latency.
func requestLogger(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set("request_id", requestID)

		start := time.Now()
		c.Next()

		log.Infow("request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
		)
	}
}
