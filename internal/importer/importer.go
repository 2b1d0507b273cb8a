package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"interviewdock/internal/domain"
	questionsvc "interviewdock/internal/service/question"
)

// QuestionWriter is the slice of the question service the importer uses.
// Going through the service keeps tag resolution identical to the API path.
type QuestionWriter interface {
	Create(ctx context.Context, in questionsvc.CreateInput) (*domain.Question, error)
}

// TechnologyResolver looks up a technology by its slug.
type TechnologyResolver interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Technology, error)
}

// CSVImporter reads question rows from a CSV export and creates them
// through the question service. Expected headers: title, answer,
// code_snippet, code_language, difficulty, technology, tags (pipe-separated).
type CSVImporter struct {
	reader       *csv.Reader
	questions    QuestionWriter
	technologies TechnologyResolver
}

func NewCSVImporter(r io.Reader, questions QuestionWriter, technologies TechnologyResolver) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:       csvr,
		questions:    questions,
		technologies: technologies,
	}
}

// Run parses CSV rows and creates one question per row. Technology ids
// are resolved by slug and cached across rows.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	technologyIDs := map[string]string{}
	imported := 0

	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		row, err := parseRow(record, index)
		if err != nil {
			return imported, err
		}
		if row == nil {
			continue
		}

		technologyID, ok := technologyIDs[row.TechnologySlug]
		if !ok {
			tech, err := i.technologies.GetBySlug(ctx, row.TechnologySlug)
			if err != nil {
				return imported, fmt.Errorf("resolve technology %q: %w", row.TechnologySlug, err)
			}
			technologyID = tech.ID
			technologyIDs[row.TechnologySlug] = technologyID
		}

		if _, err := i.questions.Create(ctx, questionsvc.CreateInput{
			Title:        row.Title,
			Answer:       row.Answer,
			CodeSnippet:  row.CodeSnippet,
			CodeLanguage: row.CodeLanguage,
			Difficulty:   row.Difficulty,
			TechnologyID: technologyID,
			TagNames:     row.Tags,
		}); err != nil {
			return imported, fmt.Errorf("create question %q: %w", row.Title, err)
		}
		imported++
	}

	return imported, nil
}

type csvRow struct {
	Title          string
	Answer         string
	CodeSnippet    string
	CodeLanguage   string
	Difficulty     domain.Difficulty
	TechnologySlug string
	Tags           []string
}

func parseRow(record []string, index map[string]int) (*csvRow, error) {
	title := pick(record, index, "title")
	answer := pick(record, index, "answer")
	technology := pick(record, index, "technology")
	difficultyStr := pick(record, index, "difficulty")

	// Blank lines and trailing separators show up as empty rows.
	if title == "" && answer == "" && technology == "" {
		return nil, nil
	}
	if title == "" || answer == "" || technology == "" || difficultyStr == "" {
		return nil, fmt.Errorf("invalid question row (missing required fields) for title %q", title)
	}

	difficulty, ok := domain.ParseDifficulty(difficultyStr)
	if !ok {
		return nil, fmt.Errorf("invalid difficulty %q for title %q", difficultyStr, title)
	}

	var tags []string
	if raw := pick(record, index, "tags"); raw != "" {
		for _, t := range strings.Split(raw, "|") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
	}

	return &csvRow{
		Title:          title,
		Answer:         answer,
		CodeSnippet:    pick(record, index, "code_snippet"),
		CodeLanguage:   pick(record, index, "code_language"),
		Difficulty:     difficulty,
		TechnologySlug: technology,
		Tags:           tags,
	}, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
