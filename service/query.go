package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Filters 列表接口的可选过滤与排序参数
type Filters struct {
	Search    string // 标题或内容的子串匹配，不区分大小写
	Tag       string // 标签精确匹配
	Category  string // 分类精确匹配
	SortBy    string // createdAt / title / viewCount
	SortOrder string // asc / desc
}

// 允许排序的列，白名单之外一律回落到 created_at
var sortColumns = map[string]string{
	"createdAt":  "created_at",
	"created_at": "created_at",
	"title":      "title",
	"viewCount":  "view_count",
	"view_count": "view_count",
}

// applyFilters 把过滤参数组装成查询条件。
// owner 条件永远是独立的顶层 AND；搜索的 OR 组关在自己的括号里，
// 后面的条件不可能把归属限制顶掉（顶掉了就是越权，不是功能）。
func applyFilters(base *gorm.DB, owner string, f Filters) *gorm.DB {
	q := base.Where("owner_id = ?", owner)

	if f.Search != "" {
		kw := "%" + strings.ToLower(f.Search) + "%"
		group := base.Session(&gorm.Session{NewDB: true}).
			Where("LOWER(title) LIKE ?", kw).
			Or("LOWER(content) LIKE ?", kw)
		q = q.Where(group)
	}

	if f.Tag != "" {
		// tags 列存的是 JSON 数组字符串，按带引号的元素匹配，避免子串误命中
		quoted, _ := json.Marshal(f.Tag)
		q = q.Where("tags LIKE ?", "%"+string(quoted)+"%")
	}

	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}

	return q
}

// orderClause 排序表达式。平局先按创建时间倒序再按 id 倒序，分页才稳定
func orderClause(f Filters) string {
	col, ok := sortColumns[f.SortBy]
	if !ok {
		col = "created_at"
	}
	dir := "DESC"
	if strings.EqualFold(f.SortOrder, "asc") {
		dir = "ASC"
	}
	if col == "created_at" {
		return fmt.Sprintf("created_at %s, id DESC", dir)
	}
	return fmt.Sprintf("%s %s, created_at DESC, id DESC", col, dir)
}
