package model

import (
	"time"
)

// Reward 可兑换的奖励项
type Reward struct {
	ID          uint64 `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Description string `gorm:"type:varchar(1000)" json:"description"`
	PointsCost  int    `gorm:"not null" json:"points_cost"`
	Category    string `gorm:"type:varchar(64);index:idx_category" json:"category"`
	ImageURL    string `gorm:"type:varchar(512)" json:"image_url"`
	InStock     bool   `gorm:"type:tinyint(1);not null;default:1" json:"in_stock"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Reward) TableName() string {
	return "rewards"
}

// RewardRedemption 奖励兑换流水
type RewardRedemption struct {
	ID           uint64 `gorm:"primaryKey"`
	RedemptionID string `gorm:"type:varchar(64);not null;uniqueIndex:idx_redemption_id" json:"redemption_id"`
	CustomerID   string `gorm:"type:varchar(64);not null;index:idx_customer_id" json:"customer_id"`
	Email        string `gorm:"type:varchar(255);not null" json:"email"`
	RewardID     uint64 `gorm:"not null" json:"reward_id"`
	PointsSpent  int    `gorm:"not null" json:"points_spent"`
	CreatedAt    time.Time

	Reward Reward `gorm:"foreignKey:RewardID;references:ID"`
}

func (RewardRedemption) TableName() string {
	return "reward_redemptions"
}
