package models

import (
	"encoding/json"
	"time"
)

// Inspiration 对应数据库的 inspirations 表
// Tags 以 JSON 数组字符串的形式直接存在行上（不建关联表）
type Inspiration struct {
	ID        int64     `json:"id"`
	OwnerID   string    `json:"owner_id" gorm:"size:64;index"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"image_url"`
	IsPublic  bool      `json:"is_public"`
	ViewCount int64     `json:"view_count"`
	Tags      string    `json:"-" gorm:"type:text"` // JSON array of tag names
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Inspiration) TableName() string {
	return "inspirations"
}

// TagList 把 JSON 字符串解析成切片，脏数据按空列表处理
func (i *Inspiration) TagList() []string {
	var tags []string
	if i.Tags != "" {
		json.Unmarshal([]byte(i.Tags), &tags)
	}
	if tags == nil {
		tags = []string{}
	}
	return tags
}

// SetTagList 序列化标签列表写回行上
func (i *Inspiration) SetTagList(tags []string) {
	if tags == nil {
		tags = []string{}
	}
	data, _ := json.Marshal(tags)
	i.Tags = string(data)
}

// MarshalJSON 返回给前端时把 tags 展开成数组
func (i Inspiration) MarshalJSON() ([]byte, error) {
	type alias Inspiration
	return json.Marshal(struct {
		alias
		Tags []string `json:"tags"`
	}{
		alias: alias(i),
		Tags:  i.TagList(),
	})
}
