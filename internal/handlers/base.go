package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/LouisLau-art/indie-board/internal/services"

	"github.com/gin-gonic/gin"
)

// JSONError API 统一的错误响应体。
func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// renderServiceError 把工作流的类型化拒绝映射到 HTTP 状态码。
// 未识别的错误一律按 500 处理，细节只进日志不出网。
func renderServiceError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	var conflictErr *services.ConflictError
	var notFoundErr *services.NotFoundError
	var rateLimitErr *services.RateLimitError

	switch {
	case errors.As(err, &validationErr):
		JSONError(c, http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &conflictErr):
		JSONError(c, http.StatusConflict, conflictErr.Error())
	case errors.As(err, &notFoundErr):
		JSONError(c, http.StatusNotFound, notFoundErr.Error())
	case errors.As(err, &rateLimitErr):
		JSONError(c, http.StatusTooManyRequests, rateLimitErr.Error())
	default:
		log.Printf("Internal error: %v", err)
		JSONError(c, http.StatusInternalServerError, "Internal server error")
	}
}
