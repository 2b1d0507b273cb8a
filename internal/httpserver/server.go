package httpserver

import (
	"context"
	"log"
	"net/http"
	"time"

	"interviewdock/internal/config"
	"interviewdock/internal/domain"
	"interviewdock/internal/pagination"
	questionrepo "interviewdock/internal/repository/question"
	questionsvc "interviewdock/internal/service/question"
	technologysvc "interviewdock/internal/service/technology"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CategoryService is the slice of the category service the handlers use.
type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id string) (*domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
}

type TechnologyService interface {
	List(ctx context.Context, categoryID string) ([]domain.Technology, error)
	Get(ctx context.Context, id string) (*domain.Technology, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Technology, error)
	Create(ctx context.Context, in technologysvc.CreateInput) (*domain.Technology, error)
}

type QuestionService interface {
	List(ctx context.Context, f questionrepo.Filter, p pagination.Params) (*questionsvc.Result, error)
	Get(ctx context.Context, id string) (*domain.Question, error)
	ListByTechnology(ctx context.Context, technologyID string) ([]domain.Question, error)
	Create(ctx context.Context, in questionsvc.CreateInput) (*domain.Question, error)
}

// Deps carries the services the router depends on.
type Deps struct {
	CategorySvc   CategoryService
	TechnologySvc TechnologyService
	QuestionSvc   QuestionService
}

// Server wraps the HTTP server setup.
type Server struct {
	httpServer *http.Server
	logger     *log.Logger
	db         *pgxpool.Pool
}

// New builds a Server with all API routes wired.
func New(cfg config.Config, logger *log.Logger, db *pgxpool.Pool, deps Deps) (*Server, error) {
	router := buildRouter(cfg, logger, db, deps)

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		httpServer: httpSrv,
		logger:     logger,
		db:         db,
	}, nil
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "interviewdock api is running"})
}

func readyHandler(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "db not configured"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "db not reachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
