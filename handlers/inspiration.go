package handlers

import (
	"net/http"
	"strconv"

	"github.com/MaTrix986/inspiration-collector/service"

	"github.com/gin-gonic/gin"
)

// CreateInspiration 新建灵感
// 路由: POST /inspirations
func CreateInspiration(c *gin.Context) {
	var req struct {
		Title    string   `json:"title"`
		Content  string   `json:"content"`
		ImageURL string   `json:"image_url"`
		IsPublic bool     `json:"is_public"`
		Tags     []string `json:"tags"`
		Category string   `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status_code": 1, "status_msg": "请求体不合法"})
		return
	}

	ins, err := insService.Create(c.GetString("user_id"), service.CreateInput{
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
		IsPublic: req.IsPublic,
		Tags:     req.Tags,
		Category: req.Category,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status_code": 0,
		"status_msg":  "创建成功",
		"inspiration": ins,
	})
}

// ListInspirations 分页查询自己的灵感，顺带把全部标签/分类给前端做筛选框
// 路由: GET /inspirations
func ListInspirations(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status_code": 1, "status_msg": "分页参数非法"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status_code": 1, "status_msg": "分页参数非法"})
		return
	}

	filters := service.Filters{
		Search:    c.Query("search"),
		Tag:       c.Query("tag"),
		Category:  c.Query("category"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}

	result, err := insService.List(c.GetString("user_id"), page, limit, filters)
	if err != nil {
		respondError(c, err)
		return
	}

	tags, err := insService.Meta().AllTags()
	if err != nil {
		respondError(c, err)
		return
	}
	categories, err := insService.Meta().AllCategories()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status_code":  0,
		"inspirations": result.Items,
		"tags":         tags,
		"categories":   categories,
		"pagination": gin.H{
			"page":        result.Page,
			"limit":       result.PageSize,
			"total":       result.Total,
			"total_pages": result.TotalPages,
		},
	})
}

// GetInspiration 查看单条灵感。别人看公开灵感会计一次浏览，并发一条热度事件
// 路由: GET /inspirations/:id
func GetInspiration(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status_code": 1, "status_msg": "id 非法"})
		return
	}

	caller := c.GetString("user_id")
	ins, counted, err := insService.View(id, caller)
	if err != nil {
		respondError(c, err)
		return
	}

	if counted {
		service.PublishViewEvent(ins.ID, caller)
	}

	c.JSON(http.StatusOK, gin.H{
		"status_code": 0,
		"inspiration": ins,
	})
}

// UpdateInspiration 更新自己的灵感，只改这次传了的字段
// 路由: PUT /inspirations/:id
func UpdateInspiration(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status_code": 1, "status_msg": "id 非法"})
		return
	}

	var req struct {
		Title    *string   `json:"title"`
		Content  *string   `json:"content"`
		ImageURL *string   `json:"image_url"`
		IsPublic *bool     `json:"is_public"`
		Tags     *[]string `json:"tags"`
		Category *string   `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status_code": 1, "status_msg": "请求体不合法"})
		return
	}

	ins, err := insService.Update(id, c.GetString("user_id"), service.UpdateInput{
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
		IsPublic: req.IsPublic,
		Tags:     req.Tags,
		Category: req.Category,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status_code": 0,
		"status_msg":  "更新成功",
		"inspiration": ins,
	})
}

// DeleteInspiration 删除自己的灵感
// 路由: DELETE /inspirations/:id
func DeleteInspiration(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status_code": 1, "status_msg": "id 非法"})
		return
	}

	removed, err := insService.Delete(id, c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"status_code": 1, "status_msg": "灵感不存在"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status_code": 0, "status_msg": "删除成功"})
}

// HotInspirations 热度榜：Redis 里浏览最多的公开灵感
// 路由: GET /inspirations/hot
func HotInspirations(c *gin.Context) {
	ids := service.HotInspirationIDs(10)
	items, err := insService.GetByIDs(ids)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status_code":  0,
		"inspirations": items,
	})
}
