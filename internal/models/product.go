package models

import (
	"time"
)

// Product 产品条目。标题与 URL 的唯一性由提交流程保证，
// 数据库层面不加唯一约束。
type Product struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	URL       string    `gorm:"not null" json:"url"`
	Votes     int       `gorm:"not null;default:0" json:"votes"`
	CreatedAt time.Time `json:"createdAt"`
}
