package repository

import (
	"EcoLoyalty/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProcessedPostRepo interface {
	GetExistingPostIDs(ctx context.Context, postIDs []string) ([]string, error)
	CreateIfAbsent(ctx context.Context, record *model.PostLoyaltyPoints) (bool, error)
	GetByPostID(ctx context.Context, postID string) (*model.PostLoyaltyPoints, error)
	ListByFacebookUserID(ctx context.Context, fbUserID string) ([]*model.PostLoyaltyPoints, error)
}

type ProcessedPostRepoImpl struct {
	db *gorm.DB
}

func NewProcessedPostRepo(db *gorm.DB) ProcessedPostRepo {
	return &ProcessedPostRepoImpl{
		db: db,
	}
}

// GetExistingPostIDs 查询已有积分记录的帖子ID子集
func (s ProcessedPostRepoImpl) GetExistingPostIDs(ctx context.Context, postIDs []string) ([]string, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}
	var existing []string
	err := s.db.WithContext(ctx).
		Model(&model.PostLoyaltyPoints{}).
		Where("post_id IN ?", postIDs).
		Pluck("post_id", &existing).Error
	if err != nil {
		return nil, err
	}
	return existing, nil
}

// CreateIfAbsent 幂等写入积分记录，已存在时返回 false
func (s ProcessedPostRepoImpl) CreateIfAbsent(ctx context.Context, record *model.PostLoyaltyPoints) (bool, error) {
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "post_id"}},
			DoNothing: true,
		}).
		Create(record)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s ProcessedPostRepoImpl) GetByPostID(ctx context.Context, postID string) (*model.PostLoyaltyPoints, error) {
	var record model.PostLoyaltyPoints
	err := s.db.WithContext(ctx).Where("post_id = ?", postID).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s ProcessedPostRepoImpl) ListByFacebookUserID(ctx context.Context, fbUserID string) ([]*model.PostLoyaltyPoints, error) {
	var records []*model.PostLoyaltyPoints
	err := s.db.WithContext(ctx).
		Where("facebook_user_id = ?", fbUserID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
