package models

// Category 全局分类表，name 全局唯一（区分大小写）
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name" gorm:"uniqueIndex;size:191;not null"`
}

func (Category) TableName() string { return "categories" }
