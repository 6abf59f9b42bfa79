package models

// Tag 全局标签表，name 全局唯一（区分大小写）
type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name" gorm:"uniqueIndex;size:191;not null"`
}

func (Tag) TableName() string { return "tags" }
