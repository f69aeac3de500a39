package wire

import (
	"EcoLoyalty/internal/api"
	"EcoLoyalty/internal/api/config"
	"EcoLoyalty/internal/api/handler"
	"EcoLoyalty/internal/job"
	"EcoLoyalty/internal/pkg/cron"
	"EcoLoyalty/internal/pkg/customerapi"
	"EcoLoyalty/internal/pkg/facebook"
	"EcoLoyalty/internal/pkg/kafka"
	"EcoLoyalty/internal/pkg/scoreapi"
	"EcoLoyalty/internal/repository"
	"EcoLoyalty/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router   *gin.Engine
	DB       *gorm.DB
	Producer kafka.ClaimEventProducer
	CronMgr  *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	identityRepo := repository.NewIdentityMappingRepo(db)
	processedRepo := repository.NewProcessedPostRepo(db)
	rewardRepo := repository.NewRewardRepo(db)

	fbClient := facebook.NewClient(&cfg.Facebook)
	scoreClient := scoreapi.NewClient(&cfg.ScoreAPI)
	customerClient := customerapi.NewClient(&cfg.CustomerAPI)

	producer, err := kafka.NewProducer(cfg)
	if err != nil {
		return nil, err
	}

	socialMediaService := service.NewSocialMediaService(
		identityRepo, processedRepo, fbClient, scoreClient, customerClient, producer, cfg)
	pointsService := service.NewPointsService(identityRepo, processedRepo, customerClient, cfg)
	rewardService := service.NewRewardService(rewardRepo, customerClient)

	handlers := &api.HandlersGroup{
		SocialMediaHandler: handler.NewSocialMediaHandler(socialMediaService),
		PointsHandler:      handler.NewPointsHandler(pointsService),
		RewardHandler:      handler.NewRewardHandler(rewardService),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(job.NewRewardCacheJob(rewardService))

	return &ApplicationContainer{
		Router:   router,
		DB:       db,
		Producer: producer,
		CronMgr:  cronMgr,
	}, nil
}
