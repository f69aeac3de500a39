package kafka

import "time"

// ClaimEvent 积分领取事件，成功落库后投递
type ClaimEvent struct {
	EventID        string    `json:"event_id"`
	PostID         string    `json:"post_id"`
	FacebookUserID string    `json:"facebook_user_id"`
	Email          string    `json:"email"`
	Points         int       `json:"points"`
	Score          float64   `json:"score"`
	ClaimedAt      time.Time `json:"claimed_at"`
}
