package dto

// PostScoreDTO 帖子打分结果
type PostScoreDTO struct {
	PostID   string  `json:"post_id"`
	UserID   string  `json:"user_id"`
	Score    float64 `json:"score"`
	Message  string  `json:"message,omitempty"`
	ImageURL string  `json:"image_url,omitempty"`
	Details  string  `json:"details,omitempty"`
}

// SocialAccountDTO 已绑定的社交账号
type SocialAccountDTO struct {
	Platform       string `json:"platform"`
	FacebookUserID string `json:"facebook_user_id"`
	Handle         string `json:"handle"`
	DisplayName    string `json:"display_name"`
	IsActive       bool   `json:"is_active"`
	ConnectedAt    string `json:"connected_at"`
}

// ClaimPointsDTO 领取积分请求体
type ClaimPointsDTO struct {
	PostID string `json:"post_id" binding:"required" validate:"min=3,max=128"`
}

// ClaimResultDTO 领取积分结果
type ClaimResultDTO struct {
	PostID  string  `json:"post_id"`
	Score   float64 `json:"score"`
	Points  int     `json:"points"`
	Balance int     `json:"balance"`
}
