package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/LouisLau-art/indie-board/internal/services"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	service *services.ProductService
}

func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// SubmitRequest POST /api/products 的请求体。
type SubmitRequest struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// List GET /api/products 按票数降序返回全部产品
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.service.ListProducts()
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// Create POST /api/products 提交新产品
func (h *ProductHandler) Create(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "Invalid JSON")
		return
	}

	product, err := h.service.Submit(req.Title, req.URL)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// Vote POST /api/products/:id/vote 给产品投一票
func (h *ProductHandler) Vote(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		JSONError(c, http.StatusBadRequest, "Invalid product ID")
		return
	}
	if id < 1 {
		JSONError(c, http.StatusNotFound, "Product not found")
		return
	}

	product, err := h.service.CastVote(uint(id), voterIdentity(c), time.Now())
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// voterIdentity 解析投票者身份：取 X-Forwarded-For 的第一跳，
// 没有就落到共享的 "unknown" 桶。
// 已知缺陷：所有无转发头的客户端共用一个限流桶，待产品侧拍板再改。
func voterIdentity(c *gin.Context) string {
	forwarded := c.GetHeader("X-Forwarded-For")
	if forwarded == "" {
		return "unknown"
	}
	if i := strings.Index(forwarded, ","); i >= 0 {
		forwarded = forwarded[:i]
	}
	return strings.TrimSpace(forwarded)
}
