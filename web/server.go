package web

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"kcet-predictor/catalog"
	"kcet-predictor/config"
	"kcet-predictor/engine"
	"kcet-predictor/metrics"
	"kcet-predictor/web/handlers"
	"kcet-predictor/web/middleware"
)

type Server struct {
	router  *gin.Engine
	engine  *engine.Engine
	catalog *catalog.Catalog
	metrics *metrics.Metrics
	logger  *zap.Logger
	config  *config.Config
}

func NewServer(eng *engine.Engine, cat *catalog.Catalog, m *metrics.Metrics, logger *zap.Logger, config *config.Config) *Server {
	// Set Gin mode based on environment
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID(logger))
	router.Use(middleware.Metrics(m))

	router.LoadHTMLGlob("web/templates/*.html")

	server := &Server{
		router:  router,
		engine:  eng,
		catalog: cat,
		metrics: m,
		logger:  logger,
		config:  config,
	}

	server.setupRoutes()
	return server
}

func (s *Server) setupRoutes() {
	predictHandler := handlers.NewPredictHandler(s.engine, s.metrics, s.logger)
	catalogHandler := handlers.NewCatalogHandler(s.catalog, s.logger)

	limiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerMinute: s.config.RateLimitRequestsPerMin,
		BurstSize:         s.config.RateLimitBurstSize,
	}, s.logger)

	s.router.GET("/", catalogHandler.Index)
	s.router.POST("/predict", middleware.RateLimit(limiter), predictHandler.Predict)
	s.router.GET("/get_courses", catalogHandler.Courses)
	s.router.GET("/course_info", catalogHandler.CourseInfo)
	s.router.GET("/healthz", catalogHandler.Health)
	s.router.GET("/metrics", gin.WrapH(metrics.Handler()))
}

func (s *Server) Start(ctx context.Context, addr string) error {
	s.logger.Info("Starting web server", zap.String("address", addr))

	srv := &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("Web server failed to start", zap.Error(err))
		}
	}()

	// Wait for context cancellation
	<-ctx.Done()

	s.logger.Info("Shutting down web server")
	return srv.Shutdown(context.Background())
}
