package httpserver

import (
	"net/http"

	technologysvc "interviewdock/internal/service/technology"
	"github.com/gin-gonic/gin"
)

func listTechnologiesHandler(s *routerState, svc TechnologyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		technologies, err := svc.List(c.Request.Context(), c.Query("categoryId"))
		if err != nil {
			s.respondStorageError(c, err)
			return
		}
		respondData(c, http.StatusOK, technologies)
	}
}

func getTechnologyHandler(s *routerState, svc TechnologyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		technology, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			s.respondLookupError(c, err, "Technology not found")
			return
		}
		respondData(c, http.StatusOK, technology)
	}
}

func getTechnologyBySlugHandler(s *routerState, svc TechnologyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		technology, err := svc.GetBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			s.respondLookupError(c, err, "Technology not found")
			return
		}
		respondData(c, http.StatusOK, technology)
	}
}

type createTechnologyRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	CategoryID  string `json:"categoryId"`
	Order       int    `json:"order"`
}

func createTechnologyHandler(s *routerState, svc TechnologyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createTechnologyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Name == "" || req.Slug == "" || req.Description == "" || req.Icon == "" || req.CategoryID == "" {
			respondError(c, http.StatusBadRequest, "Missing required fields")
			return
		}

		technology, err := svc.Create(c.Request.Context(), technologysvc.CreateInput{
			Name:        req.Name,
			Slug:        req.Slug,
			Description: req.Description,
			Icon:        req.Icon,
			CategoryID:  req.CategoryID,
			Order:       req.Order,
		})
		if err != nil {
			s.respondStorageError(c, err)
			return
		}
		respondData(c, http.StatusCreated, technology)
	}
}
