package config

import (
	"context"
	"log"

	"github.com/go-redis/redis/v8"
)

var RDB *redis.Client
var Ctx = context.Background()

func InitRedis() {
	RDB = redis.NewClient(&redis.Options{
		Addr:     Get("REDIS_ADDR", "127.0.0.1:6379"),
		Password: Get("REDIS_PASSWORD", ""),
		DB:       0,
	})

	_, err := RDB.Ping(Ctx).Result()
	if err != nil {
		log.Fatal("❌ Redis 连接失败: ", err)
	}
	log.Println("✅ Redis 连接成功")
}
