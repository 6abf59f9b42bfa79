package main

import (
	"context"
	"fmt"
	"log"

	"github.com/MaTrix986/inspiration-collector/config"

	"github.com/minio/minio-go/v7"
)

func main() {
	// 1. 初始化所有连接
	config.LoadEnv()
	config.InitDB()
	config.InitMinIO()
	config.InitRedis()
	config.InitRabbitMQ()

	ctx := context.Background()
	fmt.Println("🚀 开始清理所有数据...")

	// 2. 清空 MySQL 表
	tables := []string{"inspirations", "tags", "categories", "users"}
	for _, table := range tables {
		if err := config.DB.Exec("TRUNCATE TABLE " + table).Error; err != nil {
			log.Printf("⚠️ 清理表 %s 失败: %v", table, err)
		} else {
			fmt.Printf("✅ 表 %s 已清空\n", table)
		}
	}

	// 3. 清空 MinIO 图片
	objectsCh := make(chan minio.ObjectInfo)
	go func() {
		defer close(objectsCh)
		for object := range config.MinioClient.ListObjects(ctx, config.MinioBucket, minio.ListObjectsOptions{Recursive: true}) {
			objectsCh <- object
		}
	}()

	opts := minio.RemoveObjectsOptions{GovernanceBypass: true}
	for err := range config.MinioClient.RemoveObjects(ctx, config.MinioBucket, objectsCh, opts) {
		log.Println("⚠️ 删除文件出错:", err)
	}
	fmt.Println("✅ MinIO 存储桶已清空")

	// 4. 清空 Redis 缓存（热度榜）
	config.RDB.FlushDB(ctx)
	fmt.Println("✅ Redis 缓存已清空")

	// 5. 清空 RabbitMQ 队列
	config.MQChannel.QueuePurge(config.ViewQueue, false)
	fmt.Println("✅ 消息队列已清空")

	fmt.Println("\n🎉 清理完成！")
}
