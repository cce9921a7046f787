package server

import (
	"context"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"CandleScope/internal/analyzer"
	"CandleScope/internal/recorder"
)

// Config holds the HTTP server settings.
type Config struct {
	Host          string
	Port          int
	DefaultSymbol string
	LookbackDays  int
}

// Server is the interactive HTTP surface: form, result page, JSON API,
// chart and CSV export.
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	analyzer   *analyzer.Analyzer
	recorder   recorder.Recorder
	config     Config
}

// NewServer creates the server and registers all routes.
func NewServer(cfg Config, a *analyzer.Analyzer, rec recorder.Recorder) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.SetHTMLTemplate(template.Must(template.New("web").Parse(pagesTemplate)))

	s := &Server{
		router:   router,
		analyzer: a,
		recorder: rec,
		config:   cfg,
	}
	s.registerRoutes()

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	return s
}

func (s *Server) registerRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/analyze", s.handleAnalyze)
	s.router.GET("/chart", s.handleChart)
	s.router.GET("/export", s.handleExport)
	s.router.GET("/healthz", s.handleHealth)

	api := s.router.Group("/api")
	{
		api.GET("/analyze", s.handleAPIAnalyze)
	}
}

// Start begins serving. It blocks until the listener stops.
func (s *Server) Start() error {
	log.Printf("[INFO] http server listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("listen: %w", err)
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("[INFO] http server shutting down")
	return s.httpServer.Shutdown(ctx)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine { return s.router }
