package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/MaTrix986/inspiration-collector/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var insService *service.InspirationService

// Setup 注入数据库，main 里在 InitDB 之后调用一次
func Setup(db *gorm.DB) {
	insService = service.NewInspirationService(db)
}

// respondError 把核心层的错误种类翻译成状态码。
// 存储故障只进日志，不把底层细节带给前端
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"status_code": 1, "status_msg": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"status_code": 1, "status_msg": "灵感不存在"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"status_code": 1, "status_msg": "无权限访问"})
	default:
		log.Println("⚠️ 存储故障: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status_code": 1, "status_msg": "服务器开小差了"})
	}
}
