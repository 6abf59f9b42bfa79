package handlers

import (
	"net/http"
	"strings"

	"github.com/MaTrix986/inspiration-collector/service"

	"github.com/gin-gonic/gin"
)

// JWTAuth 鉴权中间件。支持 Authorization: Bearer xxx，也兼容老前端直接发 token 头。
// 解析出来的用户标识先归一化再放进上下文，后面所有归属比较都用这一个值
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("token")
		if token == "" {
			token = strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status_code": 1, "status_msg": "未认证"})
			return
		}

		claims, err := service.ParseToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status_code": 1, "status_msg": "登录已过期"})
			return
		}

		c.Set("user_id", service.NormalizeID(claims.UserID))
		c.Next()
	}
}
