package dto

// RewardDTO 奖励项
type RewardDTO struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PointsCost  int    `json:"points_cost"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
	InStock     bool   `json:"in_stock"`
}

// RedeemRewardDTO 兑换奖励请求体
type RedeemRewardDTO struct {
	RewardID uint64 `json:"reward_id" binding:"required"`
}

// RedemptionDTO 兑换结果
type RedemptionDTO struct {
	RedemptionID string `json:"redemption_id"`
	RewardID     uint64 `json:"reward_id"`
	RewardName   string `json:"reward_name"`
	PointsSpent  int    `json:"points_spent"`
	Balance      int    `json:"balance"`
	CreatedAt    string `json:"created_at"`
}

// RedemptionHistoryDTO 兑换流水
type RedemptionHistoryDTO struct {
	RedemptionID string `json:"redemption_id"`
	RewardID     uint64 `json:"reward_id"`
	RewardName   string `json:"reward_name"`
	PointsSpent  int    `json:"points_spent"`
	CreatedAt    string `json:"created_at"`
}
