package db

import (
	"log"
	"strings"

	"github.com/LouisLau-art/indie-board/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// defaultSQLitePath 未配置 DATABASE_URL 时落到本地 SQLite 文件。
const defaultSQLitePath = "./indie_board.db"

// Open 按 DSN 选择驱动并建立连接。postgres DSN（URL 或 keyword 形式）
// 走 postgres，其余一律当作 SQLite 文件路径。
// 返回句柄交给调用方注入，不设包级单例。
func Open(databaseURL string) (*gorm.DB, error) {
	if databaseURL == "" {
		databaseURL = defaultSQLitePath
	}

	var dialector gorm.Dialector
	if isPostgresDSN(databaseURL) {
		dialector = postgres.Open(databaseURL)
	} else {
		// 投票表对产品表有 ON DELETE CASCADE，SQLite 需要显式打开外键
		if !strings.Contains(databaseURL, "?") {
			databaseURL += "?_foreign_keys=on"
		}
		dialector = sqlite.Open(databaseURL)
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	log.Println("Database connection established")
	return gdb, nil
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}

// Migrate 建表（幂等）。
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.Product{},
		&models.Vote{},
	)
}

// Seed 首次启动时灌入演示产品，表里已有数据则跳过。
func Seed(gdb *gorm.DB) error {
	var count int64
	if err := gdb.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Products already seeded, skipping")
		return nil
	}

	products := []models.Product{
		{Title: "Vue.js", URL: "https://vuejs.org", Votes: 42},
		{Title: "Nuxt", URL: "https://nuxt.com", Votes: 38},
		{Title: "Vite", URL: "https://vitejs.dev", Votes: 35},
	}
	for _, product := range products {
		if err := gdb.Create(&product).Error; err != nil {
			log.Printf("Failed to seed product %s: %v", product.Title, err)
			return err
		}
	}
	log.Println("Initial products created successfully")
	return nil
}
