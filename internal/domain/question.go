package domain

import "time"

// Difficulty is the question difficulty level as stored and served.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// ParseDifficulty reports whether s is one of the known difficulty levels.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s), true
	}
	return "", false
}

type Question struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Answer       string      `json:"answer"`
	CodeSnippet  string      `json:"codeSnippet,omitempty"`
	CodeLanguage string      `json:"codeLanguage,omitempty"`
	Difficulty   Difficulty  `json:"difficulty"`
	TechnologyID string      `json:"technologyId"`
	Technology   *Technology `json:"technology,omitempty"`
	Tags         []Tag       `json:"tags"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}
