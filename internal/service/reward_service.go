package service

import (
	"EcoLoyalty/internal/api/dto"
	"EcoLoyalty/internal/model"
	"EcoLoyalty/internal/pkg/consts"
	"EcoLoyalty/internal/pkg/customerapi"
	"EcoLoyalty/internal/pkg/redis"
	"EcoLoyalty/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type RewardService interface {
	GetRewards(ctx context.Context) ([]*dto.RewardDTO, error)
	RedeemReward(ctx context.Context, email string, redeemDTO *dto.RedeemRewardDTO) (*dto.RedemptionDTO, error)
	GetRedemptionHistory(ctx context.Context, email string) ([]*dto.RedemptionHistoryDTO, error)
	RefreshRewardCache(ctx context.Context) error
}

type RewardServiceImpl struct {
	rewardRepo  repository.RewardRepo
	customerAPI customerapi.API
}

func NewRewardService(rewardRepo repository.RewardRepo, customerAPI customerapi.API) RewardService {
	return &RewardServiceImpl{
		rewardRepo:  rewardRepo,
		customerAPI: customerAPI,
	}
}

// GetRewards 查询奖励目录，优先读缓存
func (s *RewardServiceImpl) GetRewards(ctx context.Context) ([]*dto.RewardDTO, error) {
	if cached, err := redis.GetValue(ctx, consts.RewardCatalogKey); err == nil && cached != "" {
		var rewards []*dto.RewardDTO
		if err = json.Unmarshal([]byte(cached), &rewards); err == nil {
			return rewards, nil
		}
	}

	rewards, err := s.loadRewards(ctx)
	if err != nil {
		return nil, err
	}

	s.cacheRewards(ctx, rewards)
	return rewards, nil
}

// RedeemReward 兑换奖励: 校验库存与余额后扣减积分并记录流水
func (s *RewardServiceImpl) RedeemReward(ctx context.Context, email string, redeemDTO *dto.RedeemRewardDTO) (*dto.RedemptionDTO, error) {
	reward, err := s.rewardRepo.GetReward(ctx, redeemDTO.RewardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRewardNotFound
		}
		return nil, err
	}
	if !reward.InStock {
		return nil, ErrRewardOutOfStock
	}

	customerID, err := s.customerAPI.GetCustomerIDByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if customerID == "" {
		return nil, ErrCustomerNotFound
	}

	customer, err := s.customerAPI.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer.CurrentAvailablePoints < reward.PointsCost {
		return nil, ErrPointsInsufficient
	}

	balance, err := s.customerAPI.AdjustPoints(ctx, customerID, -reward.PointsCost, "redeem reward "+reward.Name)
	if err != nil {
		return nil, err
	}

	redemption := &model.RewardRedemption{
		RedemptionID: uuid.New().String(),
		CustomerID:   customerID,
		Email:        email,
		RewardID:     reward.ID,
		PointsSpent:  reward.PointsCost,
	}
	if err = s.rewardRepo.CreateRedemption(ctx, redemption); err != nil {
		// 积分已扣但流水未落库，需人工对账
		log.ErrorContext(ctx, "points debited but redemption record failed",
			"customer_id", customerID, "reward_id", reward.ID, "err", err)
		return nil, err
	}

	if err = redis.Delete(ctx, consts.PointsBalanceKey+email); err != nil {
		log.WarnContext(ctx, "failed to invalidate balance cache", "email", email, "err", err)
	}

	return &dto.RedemptionDTO{
		RedemptionID: redemption.RedemptionID,
		RewardID:     reward.ID,
		RewardName:   reward.Name,
		PointsSpent:  reward.PointsCost,
		Balance:      balance.CurrentAvailablePoints,
		CreatedAt:    time.Now().Format(time.RFC3339),
	}, nil
}

// GetRedemptionHistory 查询兑换流水
func (s *RewardServiceImpl) GetRedemptionHistory(ctx context.Context, email string) ([]*dto.RedemptionHistoryDTO, error) {
	redemptions, err := s.rewardRepo.ListRedemptionsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	history := make([]*dto.RedemptionHistoryDTO, 0, len(redemptions))
	for _, redemption := range redemptions {
		history = append(history, &dto.RedemptionHistoryDTO{
			RedemptionID: redemption.RedemptionID,
			RewardID:     redemption.RewardID,
			RewardName:   redemption.Reward.Name,
			PointsSpent:  redemption.PointsSpent,
			CreatedAt:    redemption.CreatedAt.Format(time.RFC3339),
		})
	}
	return history, nil
}

// RefreshRewardCache 重建奖励目录缓存，由定时任务调用
func (s *RewardServiceImpl) RefreshRewardCache(ctx context.Context) error {
	rewards, err := s.loadRewards(ctx)
	if err != nil {
		return err
	}
	s.cacheRewards(ctx, rewards)
	return nil
}

func (s *RewardServiceImpl) loadRewards(ctx context.Context) ([]*dto.RewardDTO, error) {
	rewards, err := s.rewardRepo.ListInStock(ctx)
	if err != nil {
		return nil, err
	}

	rewardDTOs := make([]*dto.RewardDTO, 0, len(rewards))
	for _, reward := range rewards {
		var rewardDTO dto.RewardDTO
		if err = copier.Copy(&rewardDTO, reward); err != nil {
			return nil, err
		}
		rewardDTOs = append(rewardDTOs, &rewardDTO)
	}
	return rewardDTOs, nil
}

func (s *RewardServiceImpl) cacheRewards(ctx context.Context, rewards []*dto.RewardDTO) {
	payload, err := json.Marshal(rewards)
	if err != nil {
		return
	}
	if err = redis.SetWithExpiration(ctx, consts.RewardCatalogKey, payload, 24*time.Hour); err != nil {
		log.WarnContext(ctx, "failed to cache reward catalog", "err", err)
	}
}
