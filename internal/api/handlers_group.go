package api

import "EcoLoyalty/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	SocialMediaHandler *handler.SocialMediaHandler
	PointsHandler      *handler.PointsHandler
	RewardHandler      *handler.RewardHandler
}
