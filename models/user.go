package models

import "time"

// User ID 是 UUID 字符串（历史数据里存在过别的写法，读写前都要过 service.NormalizeID）
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;size:64"`
	Name      string    `json:"name"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:191"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
