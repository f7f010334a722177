package router

import (
	"github.com/LouisLau-art/indie-board/internal/config"
	"github.com/LouisLau-art/indie-board/internal/handlers"
	"github.com/LouisLau-art/indie-board/internal/middleware"
	"github.com/LouisLau-art/indie-board/internal/services"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes 注册 API 路由。依赖全部显式注入，路由层不碰全局状态。
func RegisterRoutes(r *gin.Engine, service *services.ProductService, cfg *config.Config) {
	productHandler := handlers.NewProductHandler(service)

	api := r.Group("/api")

	api.GET("/products", productHandler.List) // 产品列表（按票数降序）

	// 写接口挂请求限速
	write := api.Group("")
	write.Use(middleware.Throttle(cfg.ThrottleRPS, cfg.ThrottleBurst))
	{
		write.POST("/products", productHandler.Create)       // 提交新产品
		write.POST("/products/:id/vote", productHandler.Vote) // 投票
	}
}
