package handler

import (
	"EcoLoyalty/internal/api/middleware"
	"EcoLoyalty/internal/pkg/response"
	"EcoLoyalty/internal/service"

	"github.com/gin-gonic/gin"
)

type PointsHandler struct {
	pointsSvc service.PointsService
}

func NewPointsHandler(pointsSvc service.PointsService) *PointsHandler {
	return &PointsHandler{pointsSvc: pointsSvc}
}

// GetBalance 查询积分余额
func (s *PointsHandler) GetBalance(c *gin.Context) {
	email := c.GetString(middleware.EmailKey)

	balance, err := s.pointsSvc.GetBalance(c.Request.Context(), email)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, balance)
}

// GetClaimHistory 查询积分领取历史
func (s *PointsHandler) GetClaimHistory(c *gin.Context) {
	email := c.GetString(middleware.EmailKey)

	history, err := s.pointsSvc.GetClaimHistory(c.Request.Context(), email)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, history)
}
