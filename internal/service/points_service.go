package service

import (
	"EcoLoyalty/internal/api/config"
	"EcoLoyalty/internal/api/dto"
	"EcoLoyalty/internal/pkg/consts"
	"EcoLoyalty/internal/pkg/customerapi"
	"EcoLoyalty/internal/pkg/redis"
	"EcoLoyalty/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/goccy/go-json"
)

type PointsService interface {
	GetBalance(ctx context.Context, email string) (*dto.PointsBalanceDTO, error)
	GetClaimHistory(ctx context.Context, email string) ([]*dto.ClaimHistoryDTO, error)
}

type PointsServiceImpl struct {
	identityRepo  repository.IdentityMappingRepo
	processedRepo repository.ProcessedPostRepo
	customerAPI   customerapi.API
	cfg           *config.Config
}

func NewPointsService(
	identityRepo repository.IdentityMappingRepo,
	processedRepo repository.ProcessedPostRepo,
	customerAPI customerapi.API,
	cfg *config.Config,
) PointsService {
	return &PointsServiceImpl{
		identityRepo:  identityRepo,
		processedRepo: processedRepo,
		customerAPI:   customerAPI,
		cfg:           cfg,
	}
}

// GetBalance 查询积分余额，短 TTL 缓存降低客户服务压力
func (s *PointsServiceImpl) GetBalance(ctx context.Context, email string) (*dto.PointsBalanceDTO, error) {
	cacheKey := consts.PointsBalanceKey + email

	if cached, err := redis.GetValue(ctx, cacheKey); err == nil && cached != "" {
		var balanceDTO dto.PointsBalanceDTO
		if err = json.Unmarshal([]byte(cached), &balanceDTO); err == nil {
			return &balanceDTO, nil
		}
		log.WarnContext(ctx, "invalid balance cache, refetching", "email", email)
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

	balanceDTO := &dto.PointsBalanceDTO{
		CustomerID:             customer.CustomerID,
		LoyaltyTier:            customer.LoyaltyTier,
		TotalLifetimePoints:    customer.TotalLifetimePoints,
		CurrentAvailablePoints: customer.CurrentAvailablePoints,
	}

	if payload, err := json.Marshal(balanceDTO); err == nil {
		ttl := time.Duration(s.cfg.Points.BalanceCacheTTL) * time.Second
		if err = redis.SetWithExpiration(ctx, cacheKey, payload, ttl); err != nil {
			log.WarnContext(ctx, "failed to cache balance", "email", email, "err", err)
		}
	}

	return balanceDTO, nil
}

// GetClaimHistory 查询积分领取历史
func (s *PointsServiceImpl) GetClaimHistory(ctx context.Context, email string) ([]*dto.ClaimHistoryDTO, error) {
	mapping, err := s.identityRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if mapping == nil {
		return nil, ErrMappingNotFound
	}

	records, err := s.processedRepo.ListByFacebookUserID(ctx, mapping.FacebookUserID)
	if err != nil {
		return nil, err
	}

	history := make([]*dto.ClaimHistoryDTO, 0, len(records))
	for _, record := range records {
		history = append(history, &dto.ClaimHistoryDTO{
			PostID:    record.PostID,
			Score:     record.Score,
			Points:    record.Points,
			ClaimedAt: record.CreatedAt.Format(time.RFC3339),
		})
	}
	return history, nil
}
