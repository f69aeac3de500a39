package api

import (
	"EcoLoyalty/internal/api/middleware"
	"EcoLoyalty/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		socialGroup := apiGroup.Group("/social-media")
		{
			socialGroup.Use(middleware.IdentityMiddleware())
			{
				socialGroup.GET("/posts", group.SocialMediaHandler.GetEligiblePosts)
				socialGroup.GET("/accounts", group.SocialMediaHandler.GetAccounts)
				socialGroup.POST("/claim", group.SocialMediaHandler.ClaimPoints)
			}
		}

		pointsGroup := apiGroup.Group("/points")
		{
			pointsGroup.Use(middleware.IdentityMiddleware())
			{
				pointsGroup.GET("/balance", group.PointsHandler.GetBalance)
				pointsGroup.GET("/history", group.PointsHandler.GetClaimHistory)
			}
		}

		rewardGroup := apiGroup.Group("/rewards")
		{
			rewardGroup.GET("", group.RewardHandler.GetRewards)

			authGroup := rewardGroup.Group("")
			authGroup.Use(middleware.IdentityMiddleware())
			{
				authGroup.POST("/redeem", group.RewardHandler.Redeem)
				authGroup.GET("/redemptions", group.RewardHandler.GetRedemptions)
			}
		}
	}

	return r
}
