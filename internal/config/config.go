package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config 进程级配置，启动时一次性读取后显式下发，
// 不在业务代码里散落 os.Getenv。
type Config struct {
	Port        string
	DatabaseURL string
	// DedupDisabled 跳过提交时的归一化与查重，URL 原样入库
	DedupDisabled bool
	// 写接口的每客户端请求限速（与 24 小时投票窗口无关）
	ThrottleRPS   float64
	ThrottleBurst int
}

// Load 读取 .env 与环境变量，缺省值面向本地开发。
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	return &Config{
		Port:          getenv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		DedupDisabled: os.Getenv("DEDUP_DISABLED") == "true",
		ThrottleRPS:   getenvFloat("THROTTLE_RPS", 5),
		ThrottleBurst: getenvInt("THROTTLE_BURST", 10),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getenvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
