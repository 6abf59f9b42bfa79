package handlers

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/MaTrix986/inspiration-collector/config"

	"github.com/gin-gonic/gin"
	"github.com/minio/minio-go/v7"
)

// UploadImage 上传灵感配图到 MinIO，返回的 URL 由前端填进 image_url 字段
// 路由: POST /image/upload
func UploadImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status_code": 1, "status_msg": "图片获取失败"})
		return
	}

	userID := c.GetString("user_id")
	ext := filepath.Ext(header.Filename)
	objectName := fmt.Sprintf("inspirations/%s_%d%s", userID, time.Now().UnixNano(), ext)

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	_, err = config.MinioClient.PutObject(context.Background(), config.MinioBucket, objectName, file, header.Size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status_code": 1, "status_msg": "图片存储失败"})
		return
	}

	// 返回给浏览器的地址用对外 endpoint 拼
	url := fmt.Sprintf("http://%s/%s/%s", config.MinioPublicEndpoint, config.MinioBucket, objectName)
	c.JSON(http.StatusOK, gin.H{
		"status_code": 0,
		"status_msg":  "上传成功",
		"image_url":   url,
	})
}
