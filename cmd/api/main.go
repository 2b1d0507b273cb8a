package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"interviewdock/internal/config"
	"interviewdock/internal/db"
	"interviewdock/internal/httpserver"
	categoryrepo "interviewdock/internal/repository/category"
	questionrepo "interviewdock/internal/repository/question"
	tagrepo "interviewdock/internal/repository/tag"
	technologyrepo "interviewdock/internal/repository/technology"
	categorysvc "interviewdock/internal/service/category"
	questionsvc "interviewdock/internal/service/question"
	technologysvc "interviewdock/internal/service/technology"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	categoryRepo := categoryrepo.NewPostgres(dbpool)
	technologyRepo := technologyrepo.NewPostgres(dbpool, logger)
	questionRepo := questionrepo.NewPostgres(dbpool, logger)
	tagRepo := tagrepo.NewPostgres(dbpool)

	categoryService := categorysvc.New(categoryRepo)
	technologyService := technologysvc.New(technologyRepo)
	questionService := questionsvc.New(questionRepo, tagRepo, technologyRepo)

	srv, err := httpserver.New(cfg, logger, dbpool, httpserver.Deps{
		CategorySvc:   categoryService,
		TechnologySvc: technologyService,
		QuestionSvc:   questionService,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
