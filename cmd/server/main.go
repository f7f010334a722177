package main

import (
	"log"

	"github.com/LouisLau-art/indie-board/internal/config"
	"github.com/LouisLau-art/indie-board/internal/db"
	"github.com/LouisLau-art/indie-board/internal/router"
	"github.com/LouisLau-art/indie-board/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	// 数据库初始化是显式的启动步骤：连接 -> 建表 -> 灌演示数据
	gdb, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	if err := db.Seed(gdb); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	service := services.NewProductService(gdb, cfg.DedupDisabled)

	r := gin.Default()
	router.RegisterRoutes(r, service, cfg)

	log.Printf("indie-board server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
