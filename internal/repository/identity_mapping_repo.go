package repository

import (
	"EcoLoyalty/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type IdentityMappingRepo interface {
	GetByEmail(ctx context.Context, email string) (*model.EmailFacebookMapping, error)
}

type IdentityMappingRepoImpl struct {
	db *gorm.DB
}

func NewIdentityMappingRepo(db *gorm.DB) IdentityMappingRepo {
	return &IdentityMappingRepoImpl{
		db: db,
	}
}

// GetByEmail 按邮箱查询绑定关系，未绑定返回 nil
func (s IdentityMappingRepoImpl) GetByEmail(ctx context.Context, email string) (*model.EmailFacebookMapping, error) {
	var mapping model.EmailFacebookMapping
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&mapping).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &mapping, nil
}
