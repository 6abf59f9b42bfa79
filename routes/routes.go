package routes

import (
	"github.com/MaTrix986/inspiration-collector/handlers"

	"github.com/gin-gonic/gin"
)

func InitRouter() *gin.Engine {
	r := gin.Default()

	// 🌟 跨域中间件（必须放在所有路由之前！）
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, token")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		// 处理浏览器的预检请求 (OPTIONS)
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// 设置上传限制
	r.MaxMultipartMemory = 20 << 20

	// --- 路由注册 ---
	// 登录注册不要 token
	r.POST("/user/register", handlers.Register)
	r.POST("/user/login", handlers.Login)

	// 其余接口都要登录
	auth := r.Group("/", handlers.JWTAuth())

	auth.GET("/user/info", handlers.GetUserInfo)

	// 灵感模块
	auth.POST("/inspirations", handlers.CreateInspiration)
	auth.GET("/inspirations", handlers.ListInspirations)
	auth.GET("/inspirations/hot", handlers.HotInspirations)
	auth.GET("/inspirations/:id", handlers.GetInspiration)
	auth.PUT("/inspirations/:id", handlers.UpdateInspiration)
	auth.DELETE("/inspirations/:id", handlers.DeleteInspiration)

	// 标签 / 分类
	auth.GET("/tags", handlers.TagList)
	auth.POST("/tags", handlers.CreateTag)
	auth.GET("/categories", handlers.CategoryList)
	auth.POST("/categories", handlers.CreateCategory)

	// 图片上传
	auth.POST("/image/upload", handlers.UploadImage)

	return r
}
