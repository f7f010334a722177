package models

import (
	"time"
)

// Vote 投票记录，用于 24 小时限流判断。
// VotedAt 由投票流程显式写入，不依赖 GORM 自动填充。
type Vote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"not null;index" json:"productId"`
	Product   Product   `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	IP        string    `gorm:"not null" json:"ip"`
	VotedAt   time.Time `json:"votedAt"`
}
