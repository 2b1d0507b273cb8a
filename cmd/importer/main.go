package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"interviewdock/internal/config"
	"interviewdock/internal/db"
	"interviewdock/internal/importer"
	questionrepo "interviewdock/internal/repository/question"
	tagrepo "interviewdock/internal/repository/tag"
	technologyrepo "interviewdock/internal/repository/technology"
	questionsvc "interviewdock/internal/service/question"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to question CSV export")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		log.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	f, err := os.Open(filePath)
	if err != nil {
		log.Fatalf("open file: %v", err)
	}
	defer f.Close()

	technologyRepo := technologyrepo.NewPostgres(pool, nil)
	questionService := questionsvc.New(
		questionrepo.NewPostgres(pool, nil),
		tagrepo.NewPostgres(pool),
		technologyRepo,
	)

	imp := importer.NewCSVImporter(f, questionService, technologyRepo)

	start := time.Now()
	count, err := imp.Run(ctx)
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}

	fmt.Printf("Imported %d questions in %s\n", count, time.Since(start).Truncate(time.Millisecond))
}
