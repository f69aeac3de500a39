package job

import (
	"EcoLoyalty/internal/service"
	"context"
	log "log/slog"
)

// RewardCacheJob 定时重建奖励目录缓存
type RewardCacheJob struct {
	rewardSvc service.RewardService
}

func NewRewardCacheJob(rewardSvc service.RewardService) *RewardCacheJob {
	return &RewardCacheJob{rewardSvc: rewardSvc}
}

func (s *RewardCacheJob) Run() {
	ctx := context.Background()
	log.Info("start reward cache refresh job")

	if err := s.rewardSvc.RefreshRewardCache(ctx); err != nil {
		log.Error("failed to refresh reward cache", "err", err)
		return
	}

	log.Info("reward cache refresh job finished")
}
