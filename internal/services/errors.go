package services

import (
	"fmt"

	"github.com/LouisLau-art/indie-board/internal/models"
)

// 提交/投票流程的四类终态拒绝。拒绝发生时不会留下任何半途状态，
// 客户端无需自动重试。

// ValidationError 字段缺失或格式非法 (HTTP 400)。
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConflictError 与已有产品的标题或根标识冲突 (HTTP 409)。
type ConflictError struct {
	Existing models.Product
	message  string
}

func (e *ConflictError) Error() string {
	return e.message
}

func newTitleConflict(existing models.Product) *ConflictError {
	return &ConflictError{
		Existing: existing,
		message:  fmt.Sprintf("产品 \"%s\" 已存在", existing.Title),
	}
}

func newURLConflict(existing models.Product) *ConflictError {
	return &ConflictError{
		Existing: existing,
		message:  fmt.Sprintf("该网站已存在：%s (%s)", existing.Title, existing.URL),
	}
}

// NotFoundError 产品不存在 (HTTP 404)。
type NotFoundError struct {
	ProductID uint
}

func (e *NotFoundError) Error() string {
	return "Product not found"
}

// RateLimitError 同一身份 24 小时内重复投票 (HTTP 429)。
type RateLimitError struct {
	ProductID uint
}

func (e *RateLimitError) Error() string {
	return "You already voted for this product today. Try again tomorrow!"
}
