package config

import (
	"log"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioClient 全局 MinIO 客户端
var MinioClient *minio.Client

var (
	// MinioEndpoint 后端直连对象存储用的内网地址
	MinioEndpoint string
	// MinioPublicEndpoint 拼进图片 URL 返回给浏览器的对外地址
	MinioPublicEndpoint string
	MinioBucket         string
)

// InitMinIO 初始化 MinIO 连接
func InitMinIO() {
	MinioEndpoint = Get("MINIO_ENDPOINT", "127.0.0.1:9000")
	MinioPublicEndpoint = Get("MINIO_PUBLIC_ENDPOINT", MinioEndpoint)
	MinioBucket = Get("MINIO_BUCKET", "inspirations")

	var err error
	MinioClient, err = minio.New(MinioEndpoint, &minio.Options{
		Creds: credentials.NewStaticV4(
			Get("MINIO_ACCESS_KEY", "admin"),
			Get("MINIO_SECRET_KEY", "password123"),
			"",
		),
		Secure: false,
	})
	if err != nil {
		log.Fatal("❌ MinIO 连接失败: ", err)
	}

	log.Printf("✅ MinIO 连接成功 (存储节点: %s)", MinioEndpoint)
}
