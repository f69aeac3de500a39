package model

import (
	"time"
)

// EmailFacebookMapping 邮箱与 Facebook 用户的绑定关系，由绑定流程写入，此服务只读
type EmailFacebookMapping struct {
	ID             uint64 `gorm:"primaryKey"`
	Email          string `gorm:"type:varchar(255);not null;uniqueIndex:idx_email" json:"email"`
	FacebookUserID string `gorm:"type:varchar(64);not null" json:"facebook_user_id"`
	Handle         string `gorm:"type:varchar(100)" json:"handle"`
	DisplayName    string `gorm:"type:varchar(100)" json:"display_name"`
	IsActive       bool   `gorm:"type:tinyint(1);not null;default:1" json:"is_active"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (EmailFacebookMapping) TableName() string {
	return "email_facebook_mapping"
}
