package httpserver

import (
	"errors"
	"log"
	"net/http"

	"interviewdock/internal/domain"
	"interviewdock/internal/pagination"
	"github.com/gin-gonic/gin"
)

type successResponse struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

type listResponse struct {
	Status     string          `json:"status"`
	Data       any             `json:"data"`
	Pagination pagination.Meta `json:"pagination"`
}

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func respondData(c *gin.Context, code int, data any) {
	c.JSON(code, successResponse{Status: "success", Data: data})
}

func respondList(c *gin.Context, data any, meta pagination.Meta) {
	c.JSON(http.StatusOK, listResponse{Status: "success", Data: data, Pagination: meta})
}

func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, errorResponse{Status: "error", Message: message})
}

// respondStorageError logs the underlying failure with request context
// and returns a generic 500. The error string is only exposed in
// development mode.
func (s *routerState) respondStorageError(c *gin.Context, err error) {
	s.logger.Printf("unexpected error: method=%s path=%s query=%s error=%v",
		c.Request.Method, c.Request.URL.Path, c.Request.URL.RawQuery, err)

	resp := errorResponse{Status: "error", Message: "Internal server error"}
	if s.development {
		resp.Error = err.Error()
	}
	c.JSON(http.StatusInternalServerError, resp)
}

// respondLookupError maps absence to a 404 with the given message and
// everything else to a storage failure.
func (s *routerState) respondLookupError(c *gin.Context, err error, notFoundMessage string) {
	if errors.Is(err, domain.ErrNotFound) {
		respondError(c, http.StatusNotFound, notFoundMessage)
		return
	}
	s.respondStorageError(c, err)
}

type routerState struct {
	logger      *log.Logger
	development bool
}
