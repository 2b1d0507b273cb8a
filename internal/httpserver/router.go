package httpserver

import (
	"log"
	"net/http"

	"interviewdock/internal/config"
	"interviewdock/internal/pagination"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// buildRouter wires routes for the API.
func buildRouter(cfg config.Config, logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if cfg.CORSOrigin == "" || cfg.CORSOrigin == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{cfg.CORSOrigin}
	}
	router.Use(cors.New(corsCfg))

	router.GET("/health", healthHandler)
	router.GET("/readyz", readyHandler(db))

	state := &routerState{logger: logger, development: cfg.IsDevelopment()}
	pageDefaults := pagination.Defaults{PageSize: cfg.DefaultPageSize, MaxPageSize: cfg.MaxPageSize}

	api := router.Group("/api")
	{
		api.GET("/categories", listCategoriesHandler(state, deps.CategorySvc))
		api.GET("/categories/slug/:slug", getCategoryBySlugHandler(state, deps.CategorySvc))
		api.GET("/categories/:id", getCategoryHandler(state, deps.CategorySvc))

		api.GET("/technologies", listTechnologiesHandler(state, deps.TechnologySvc))
		api.GET("/technologies/slug/:slug", getTechnologyBySlugHandler(state, deps.TechnologySvc))
		api.GET("/technologies/:id", getTechnologyHandler(state, deps.TechnologySvc))
		api.GET("/technologies/:id/questions", listQuestionsByTechnologyHandler(state, deps.QuestionSvc))
		api.POST("/technologies", createTechnologyHandler(state, deps.TechnologySvc))

		api.GET("/questions", listQuestionsHandler(state, deps.QuestionSvc, pageDefaults))
		api.GET("/questions/:id", getQuestionHandler(state, deps.QuestionSvc))
		api.POST("/questions", createQuestionHandler(state, deps.QuestionSvc))
	}

	router.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, "Route not found")
	})

	return router
}
