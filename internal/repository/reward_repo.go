package repository

import (
	"EcoLoyalty/internal/model"
	"context"

	"gorm.io/gorm"
)

type RewardRepo interface {
	ListInStock(ctx context.Context) ([]*model.Reward, error)
	GetReward(ctx context.Context, id uint64) (*model.Reward, error)
	CreateRedemption(ctx context.Context, redemption *model.RewardRedemption) error
	ListRedemptionsByEmail(ctx context.Context, email string) ([]*model.RewardRedemption, error)
}

type RewardRepoImpl struct {
	db *gorm.DB
}

func NewRewardRepo(db *gorm.DB) RewardRepo {
	return &RewardRepoImpl{
		db: db,
	}
}

func (s RewardRepoImpl) ListInStock(ctx context.Context) ([]*model.Reward, error) {
	var rewards []*model.Reward
	err := s.db.WithContext(ctx).Where("in_stock = ?", true).Order("points_cost ASC").Find(&rewards).Error
	if err != nil {
		return nil, err
	}
	return rewards, nil
}

func (s RewardRepoImpl) GetReward(ctx context.Context, id uint64) (*model.Reward, error) {
	var reward model.Reward
	err := s.db.WithContext(ctx).First(&reward, id).Error
	if err != nil {
		return nil, err
	}
	return &reward, nil
}

func (s RewardRepoImpl) CreateRedemption(ctx context.Context, redemption *model.RewardRedemption) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(redemption).Error
	})
}

func (s RewardRepoImpl) ListRedemptionsByEmail(ctx context.Context, email string) ([]*model.RewardRedemption, error) {
	var redemptions []*model.RewardRedemption
	err := s.db.WithContext(ctx).
		Preload("Reward").
		Where("email = ?", email).
		Order("created_at DESC").
		Find(&redemptions).Error
	if err != nil {
		return nil, err
	}
	return redemptions, nil
}
