package service

import (
	"EcoLoyalty/internal/api/config"
	"EcoLoyalty/internal/api/dto"
	"EcoLoyalty/internal/model"
	"EcoLoyalty/internal/pkg/consts"
	"EcoLoyalty/internal/pkg/facebook"
	"EcoLoyalty/internal/pkg/kafka"
	"EcoLoyalty/internal/pkg/redis"
	"EcoLoyalty/internal/pkg/scoreapi"
	"EcoLoyalty/internal/repository"
	"context"
	log "log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"EcoLoyalty/internal/pkg/customerapi"

	"github.com/google/uuid"
)

type SocialMediaService interface {
	GetEligiblePostScores(ctx context.Context, email string) ([]*dto.PostScoreDTO, error)
	GetConnectedAccount(ctx context.Context, email string) (*dto.SocialAccountDTO, error)
	ClaimPostPoints(ctx context.Context, email string, claimDTO *dto.ClaimPointsDTO) (*dto.ClaimResultDTO, error)
}

type SocialMediaServiceImpl struct {
	identityRepo  repository.IdentityMappingRepo
	processedRepo repository.ProcessedPostRepo
	fbClient      facebook.API
	scoreClient   scoreapi.API
	customerAPI   customerapi.API
	producer      kafka.ClaimEventProducer
	cfg           *config.Config
}

func NewSocialMediaService(
	identityRepo repository.IdentityMappingRepo,
	processedRepo repository.ProcessedPostRepo,
	fbClient facebook.API,
	scoreClient scoreapi.API,
	customerAPI customerapi.API,
	producer kafka.ClaimEventProducer,
	cfg *config.Config,
) SocialMediaService {
	return &SocialMediaServiceImpl{
		identityRepo:  identityRepo,
		processedRepo: processedRepo,
		fbClient:      fbClient,
		scoreClient:   scoreClient,
		customerAPI:   customerAPI,
		producer:      producer,
		cfg:           cfg,
	}
}

// candidatePost 过滤后的候选帖子
type candidatePost struct {
	PostID     string
	UserID     string
	Message    string
	TaggedTime string
}

// enrichedPost 带详情的帖子
type enrichedPost struct {
	PostID   string
	UserID   string
	Metadata *facebook.PostMetadata
}

// GetEligiblePostScores 拉取可领积分的帖子并逐条打分
// 流程: 解析身份 -> 拉取标记帖 -> 过滤已处理 -> 并发拉详情 -> 顺序打分
func (s *SocialMediaServiceImpl) GetEligiblePostScores(ctx context.Context, email string) ([]*dto.PostScoreDTO, error) {
	mapping, err := s.identityRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if mapping == nil {
		return nil, ErrMappingNotFound
	}

	rawPosts, err := s.fbClient.GetTaggedPosts(ctx, s.cfg.Facebook.PageID)
	if err != nil {
		return nil, err
	}
	candidates := extractTaggedPosts(rawPosts, s.filterTarget(mapping.FacebookUserID))

	newPosts, err := s.filterNewPosts(ctx, candidates)
	if err != nil {
		return nil, err
	}
	if len(newPosts) == 0 {
		return []*dto.PostScoreDTO{}, nil
	}

	enriched := s.enrichPosts(ctx, newPosts)

	return s.scorePosts(ctx, enriched), nil
}

// GetConnectedAccount 查询当前用户绑定的社交账号
func (s *SocialMediaServiceImpl) GetConnectedAccount(ctx context.Context, email string) (*dto.SocialAccountDTO, error) {
	mapping, err := s.identityRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if mapping == nil {
		return nil, ErrMappingNotFound
	}
	return &dto.SocialAccountDTO{
		Platform:       consts.PlatformFacebook,
		FacebookUserID: mapping.FacebookUserID,
		Handle:         mapping.Handle,
		DisplayName:    mapping.DisplayName,
		IsActive:       mapping.IsActive,
		ConnectedAt:    mapping.CreatedAt.Format(time.RFC3339),
	}, nil
}

// ClaimPostPoints 领取单条帖子的积分
// 重新打分后以 post_id 幂等落库，首次落库才发放积分并投递事件
func (s *SocialMediaServiceImpl) ClaimPostPoints(ctx context.Context, email string, claimDTO *dto.ClaimPointsDTO) (*dto.ClaimResultDTO, error) {
	mapping, err := s.identityRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if mapping == nil {
		return nil, ErrMappingNotFound
	}

	postID := claimDTO.PostID
	if !postBelongsTo(postID, s.filterTarget(mapping.FacebookUserID)) {
		return nil, ErrPostNotEligible
	}

	existing, err := s.processedRepo.GetExistingPostIDs(ctx, []string{postID})
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, ErrPostAlreadyClaimed
	}

	customerID, err := s.customerAPI.GetCustomerIDByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if customerID == "" {
		return nil, ErrCustomerNotFound
	}

	meta, err := s.fbClient.GetPostMetadata(ctx, postID)
	if err != nil {
		return nil, err
	}

	scoreResp, err := s.scoreClient.Analyze(ctx, buildContentData(meta, s.cfg.Facebook.CampaignTopic))
	if err != nil {
		return nil, err
	}
	points := int(math.Round(scoreResp.RelevanceScore * s.cfg.Points.Multiplier))

	lockKey := consts.ClaimLockKey + postID
	lockValue := uuid.New().String()
	locked, err := redis.TryLock(ctx, lockKey, lockValue, 30*time.Second, 1)
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, ErrClaimInProgress
	}
	defer redis.UnLock(ctx, lockKey, lockValue)

	created, err := s.processedRepo.CreateIfAbsent(ctx, &model.PostLoyaltyPoints{
		PostID:         postID,
		FacebookUserID: mapping.FacebookUserID,
		Email:          email,
		Score:          scoreResp.RelevanceScore,
		Points:         points,
	})
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, ErrPostAlreadyClaimed
	}

	balance, err := s.customerAPI.AdjustPoints(ctx, customerID, points, "social media post "+postID)
	if err != nil {
		// 记录已落库，积分发放失败需人工对账
		log.ErrorContext(ctx, "claim committed but points credit failed",
			"post_id", postID, "customer_id", customerID, "err", err)
		return nil, err
	}

	// 余额缓存失效
	if err = redis.Delete(ctx, consts.PointsBalanceKey+email); err != nil {
		log.WarnContext(ctx, "failed to invalidate balance cache", "email", email, "err", err)
	}

	if s.producer != nil {
		evt := &kafka.ClaimEvent{
			EventID:        uuid.New().String(),
			PostID:         postID,
			FacebookUserID: mapping.FacebookUserID,
			Email:          email,
			Points:         points,
			Score:          scoreResp.RelevanceScore,
			ClaimedAt:      time.Now(),
		}
		if err = s.producer.PublishClaim(ctx, evt); err != nil {
			log.WarnContext(ctx, "failed to publish claim event", "post_id", postID, "err", err)
		}
	}

	return &dto.ClaimResultDTO{
		PostID:  postID,
		Score:   scoreResp.RelevanceScore,
		Points:  points,
		Balance: balance.CurrentAvailablePoints,
	}, nil
}

// filterTarget 返回标签过滤的比较目标
func (s *SocialMediaServiceImpl) filterTarget(fbUserID string) string {
	if s.cfg.Facebook.TagFilter == consts.TagFilterPage {
		return s.cfg.Facebook.PageID
	}
	return fbUserID
}

// extractTaggedPosts 过滤标记帖并抽取候选信息
// 复合ID形如 <owner>_<tagged>，首段与目标一致才保留，次段记为候选的用户ID
func extractTaggedPosts(rawPosts []facebook.TaggedPost, target string) []candidatePost {
	var candidates []candidatePost
	for _, post := range rawPosts {
		parts := strings.Split(post.ID, "_")
		if len(parts) < 2 || parts[0] != target {
			continue
		}
		candidates = append(candidates, candidatePost{
			PostID:     post.ID,
			UserID:     parts[1],
			Message:    post.Message,
			TaggedTime: post.TaggedTime,
		})
	}
	return candidates
}

// postBelongsTo 校验复合ID首段是否为目标身份
func postBelongsTo(postID string, target string) bool {
	parts := strings.Split(postID, "_")
	return len(parts) >= 2 && parts[0] == target
}

// filterNewPosts 过滤掉已有积分记录的帖子，保持输入顺序
func (s *SocialMediaServiceImpl) filterNewPosts(ctx context.Context, candidates []candidatePost) ([]candidatePost, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	postIDs := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		postIDs = append(postIDs, candidate.PostID)
	}

	existing, err := s.processedRepo.GetExistingPostIDs(ctx, postIDs)
	if err != nil {
		return nil, err
	}

	existingSet := make(map[string]struct{}, len(existing))
	for _, id := range existing {
		existingSet[id] = struct{}{}
	}

	var newPosts []candidatePost
	for _, candidate := range candidates {
		if _, ok := existingSet[candidate.PostID]; !ok {
			newPosts = append(newPosts, candidate)
		}
	}
	return newPosts, nil
}

// enrichPosts 并发拉取帖子详情，等待全部完成后只保留成功的
// 单条失败仅记录日志，不中断批次
func (s *SocialMediaServiceImpl) enrichPosts(ctx context.Context, posts []candidatePost) []enrichedPost {
	if len(posts) == 0 {
		return nil
	}

	results := make(chan enrichedPost, len(posts))
	var wg sync.WaitGroup

	for _, post := range posts {
		wg.Add(1)
		go func(post candidatePost) {
			defer wg.Done()
			meta, err := s.fbClient.GetPostMetadata(ctx, post.PostID)
			if err != nil {
				log.WarnContext(ctx, "failed to fetch post metadata, dropping post",
					"post_id", post.PostID, "err", err)
				return
			}
			results <- enrichedPost{
				PostID:   post.PostID,
				UserID:   post.UserID,
				Metadata: meta,
			}
		}(post)
	}

	wg.Wait()
	close(results)

	enriched := make([]enrichedPost, 0, len(posts))
	for result := range results {
		enriched = append(enriched, result)
	}
	return enriched
}

// scorePosts 逐条提交打分，打分服务限速敏感，不做并发
// 单条失败计 0 分保留在结果中
func (s *SocialMediaServiceImpl) scorePosts(ctx context.Context, posts []enrichedPost) []*dto.PostScoreDTO {
	results := make([]*dto.PostScoreDTO, 0, len(posts))

	for _, post := range posts {
		contentData := buildContentData(post.Metadata, s.cfg.Facebook.CampaignTopic)

		scoreResp, err := s.scoreClient.Analyze(ctx, contentData)
		if err != nil {
			log.ErrorContext(ctx, "failed to score post",
				"post_id", post.PostID, "err", err)
			results = append(results, &dto.PostScoreDTO{
				PostID:  post.PostID,
				UserID:  post.UserID,
				Score:   0,
				Details: "failed to score post",
			})
			continue
		}

		imageURL := ""
		if len(contentData.Content.ImageURLs) > 0 {
			imageURL = contentData.Content.ImageURLs[0]
		}

		results = append(results, &dto.PostScoreDTO{
			PostID:   post.PostID,
			UserID:   post.UserID,
			Score:    scoreResp.RelevanceScore,
			Message:  contentData.Content.Caption,
			ImageURL: imageURL,
		})
	}

	return results
}
