package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// TagList 全部标签
// 路由: GET /tags
func TagList(c *gin.Context) {
	tags, err := insService.Meta().AllTags()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status_code": 0, "tags": tags})
}

// CreateTag 手动建标签。已存在也返回成功，建标签本来就是幂等的
// 路由: POST /tags
func CreateTag(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status_code": 1, "status_msg": "标签名称是必填项"})
		return
	}

	if err := insService.Meta().EnsureTag(req.Name); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status_code": 0, "status_msg": "创建成功"})
}

// CategoryList 全部分类
// 路由: GET /categories
func CategoryList(c *gin.Context) {
	categories, err := insService.Meta().AllCategories()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status_code": 0, "categories": categories})
}

// CreateCategory 手动建分类，同样幂等
// 路由: POST /categories
func CreateCategory(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status_code": 1, "status_msg": "分类名称是必填项"})
		return
	}

	if err := insService.Meta().EnsureCategory(req.Name); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status_code": 0, "status_msg": "创建成功"})
}
