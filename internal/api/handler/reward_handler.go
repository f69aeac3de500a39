package handler

import (
	"EcoLoyalty/internal/api/dto"
	"EcoLoyalty/internal/api/middleware"
	"EcoLoyalty/internal/pkg/response"
	"EcoLoyalty/internal/service"

	"github.com/gin-gonic/gin"
)

type RewardHandler struct {
	rewardSvc service.RewardService
}

func NewRewardHandler(rewardSvc service.RewardService) *RewardHandler {
	return &RewardHandler{rewardSvc: rewardSvc}
}

// GetRewards 查询奖励目录
func (s *RewardHandler) GetRewards(c *gin.Context) {
	rewards, err := s.rewardSvc.GetRewards(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, rewards)
}

// GetRedemptions 查询兑换流水
func (s *RewardHandler) GetRedemptions(c *gin.Context) {
	email := c.GetString(middleware.EmailKey)

	history, err := s.rewardSvc.GetRedemptionHistory(c.Request.Context(), email)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, history)
}

// Redeem 兑换奖励
func (s *RewardHandler) Redeem(c *gin.Context) {
	email := c.GetString(middleware.EmailKey)

	var redeemDTO dto.RedeemRewardDTO
	if err := c.ShouldBindJSON(&redeemDTO); err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.rewardSvc.RedeemReward(c.Request.Context(), email, &redeemDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
