package dto

// PointsBalanceDTO 积分余额
type PointsBalanceDTO struct {
	CustomerID             string `json:"customer_id"`
	LoyaltyTier            string `json:"loyalty_tier"`
	TotalLifetimePoints    int    `json:"total_lifetime_points"`
	CurrentAvailablePoints int    `json:"current_available_points"`
}

// ClaimHistoryDTO 单条积分领取历史
type ClaimHistoryDTO struct {
	PostID    string  `json:"post_id"`
	Score     float64 `json:"score"`
	Points    int     `json:"points"`
	ClaimedAt string  `json:"claimed_at"`
}
