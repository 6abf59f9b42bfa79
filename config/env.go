package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv 启动时先读 .env，没有这个文件就全走环境变量和默认值
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("ℹ️ 未找到 .env 文件，使用环境变量/默认值")
	}
}

// Get 读配置项，空则用默认值
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
