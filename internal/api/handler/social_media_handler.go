package handler

import (
	"EcoLoyalty/internal/api/dto"
	"EcoLoyalty/internal/api/middleware"
	"EcoLoyalty/internal/pkg/response"
	"EcoLoyalty/internal/pkg/util"
	"EcoLoyalty/internal/service"

	"github.com/gin-gonic/gin"
)

type SocialMediaHandler struct {
	socialMediaSvc service.SocialMediaService
}

func NewSocialMediaHandler(socialMediaSvc service.SocialMediaService) *SocialMediaHandler {
	return &SocialMediaHandler{socialMediaSvc: socialMediaSvc}
}

// GetEligiblePosts 查询可领积分的帖子及其分数
func (s *SocialMediaHandler) GetEligiblePosts(c *gin.Context) {
	email := c.GetString(middleware.EmailKey)

	scores, err := s.socialMediaSvc.GetEligiblePostScores(c.Request.Context(), email)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, scores)
}

// GetAccounts 查询已绑定的社交账号
func (s *SocialMediaHandler) GetAccounts(c *gin.Context) {
	email := c.GetString(middleware.EmailKey)

	account, err := s.socialMediaSvc.GetConnectedAccount(c.Request.Context(), email)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, []*dto.SocialAccountDTO{account})
}

// ClaimPoints 领取帖子积分
func (s *SocialMediaHandler) ClaimPoints(c *gin.Context) {
	email := c.GetString(middleware.EmailKey)

	var claimDTO dto.ClaimPointsDTO
	if err := c.ShouldBindJSON(&claimDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&claimDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	result, err := s.socialMediaSvc.ClaimPostPoints(c.Request.Context(), email, &claimDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
