package model

import (
	"time"
)

// PostLoyaltyPoints 已完成打分并发放积分的帖子记录，post_id 全局唯一
type PostLoyaltyPoints struct {
	ID             uint64  `gorm:"primaryKey"`
	PostID         string  `gorm:"type:varchar(128);not null;uniqueIndex:idx_post_id" json:"post_id"`
	FacebookUserID string  `gorm:"type:varchar(64);not null;index:idx_fb_user_id" json:"facebook_user_id"`
	Email          string  `gorm:"type:varchar(255);not null" json:"email"`
	Score          float64 `gorm:"type:decimal(6,4);not null;default:0" json:"score"`
	Points         int     `gorm:"not null;default:0" json:"points"`
	CreatedAt      time.Time
}

func (PostLoyaltyPoints) TableName() string {
	return "posts_loyalty_points"
}
