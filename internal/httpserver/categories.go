package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func listCategoriesHandler(s *routerState, svc CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := svc.List(c.Request.Context())
		if err != nil {
			s.respondStorageError(c, err)
			return
		}
		respondData(c, http.StatusOK, categories)
	}
}

func getCategoryHandler(s *routerState, svc CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		category, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			s.respondLookupError(c, err, "Category not found")
			return
		}
		respondData(c, http.StatusOK, category)
	}
}

func getCategoryBySlugHandler(s *routerState, svc CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		category, err := svc.GetBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			s.respondLookupError(c, err, "Category not found")
			return
		}
		respondData(c, http.StatusOK, category)
	}
}
