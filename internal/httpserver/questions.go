package httpserver

import (
	"net/http"

	"interviewdock/internal/domain"
	"interviewdock/internal/pagination"
	questionrepo "interviewdock/internal/repository/question"
	questionsvc "interviewdock/internal/service/question"
	"github.com/gin-gonic/gin"
)

func listQuestionsHandler(s *routerState, svc QuestionService, defaults pagination.Defaults) gin.HandlerFunc {
	return func(c *gin.Context) {
		f := questionrepo.Filter{
			TechnologyID: c.Query("technologyId"),
			Tag:          c.Query("tag"),
			Search:       c.Query("search"),
		}
		// An unknown difficulty value is ignored rather than rejected.
		if d, ok := domain.ParseDifficulty(c.Query("difficulty")); ok {
			f.Difficulty = d
		}

		params := pagination.FromQuery(c.Query("page"), c.Query("limit"), defaults)

		result, err := svc.List(c.Request.Context(), f, params)
		if err != nil {
			s.respondStorageError(c, err)
			return
		}
		respondList(c, result.Data, result.Pagination)
	}
}

func getQuestionHandler(s *routerState, svc QuestionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		question, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			s.respondLookupError(c, err, "Question not found")
			return
		}
		respondData(c, http.StatusOK, question)
	}
}

func listQuestionsByTechnologyHandler(s *routerState, svc QuestionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		questions, err := svc.ListByTechnology(c.Request.Context(), c.Param("id"))
		if err != nil {
			s.respondStorageError(c, err)
			return
		}
		respondData(c, http.StatusOK, questions)
	}
}

type createQuestionRequest struct {
	Title        string   `json:"title"`
	Answer       string   `json:"answer"`
	CodeSnippet  string   `json:"codeSnippet"`
	CodeLanguage string   `json:"codeLanguage"`
	Difficulty   string   `json:"difficulty"`
	TechnologyID string   `json:"technologyId"`
	Tags         []string `json:"tags"`
}

func createQuestionHandler(s *routerState, svc QuestionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createQuestionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Title == "" || req.Answer == "" || req.Difficulty == "" || req.TechnologyID == "" {
			respondError(c, http.StatusBadRequest, "Missing required fields")
			return
		}
		difficulty, ok := domain.ParseDifficulty(req.Difficulty)
		if !ok {
			respondError(c, http.StatusBadRequest, "Invalid difficulty level")
			return
		}

		question, err := svc.Create(c.Request.Context(), questionsvc.CreateInput{
			Title:        req.Title,
			Answer:       req.Answer,
			CodeSnippet:  req.CodeSnippet,
			CodeLanguage: req.CodeLanguage,
			Difficulty:   difficulty,
			TechnologyID: req.TechnologyID,
			TagNames:     req.Tags,
		})
		if err != nil {
			s.respondLookupError(c, err, "Technology not found")
			return
		}
		respondData(c, http.StatusCreated, question)
	}
}
